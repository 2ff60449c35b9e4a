package wfcimage

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"os"

	"github.com/MyUsernamee/go-wfc/wfc"
)

// LoadExemplar decodes a PNG or GIF file into the packed-0xRRGGBB grid the
// wfc core operates on. Alpha is dropped; fully transparent exemplars are
// not supported.
func LoadExemplar(path string) (wfc.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wfcimage: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("wfcimage: decode %s: %w", path, err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	g := make(wfc.Grid, h)
	for y := 0; y < h; y++ {
		row := make([]uint32, w)
		for x := 0; x < w; x++ {
			r, gr, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x] = (uint32(r>>8) << 16) | (uint32(gr>>8) << 8) | uint32(bl>>8)
		}
		g[y] = row
	}
	return g, nil
}
