package wfcimage

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, path string, rows [][]uint32) {
	t.Helper()
	h := len(rows)
	w := len(rows[0])
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y, row := range rows {
		for x, px := range row {
			img.Set(x, y, color.RGBA{R: byte(px >> 16), G: byte(px >> 8), B: byte(px), A: 0xFF})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}
