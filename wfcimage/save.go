package wfcimage

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/MyUsernamee/go-wfc/wfc"
)

// SaveOutput writes a solved wfc.Result to path as a PNG. scale upsamples
// the image by nearest-neighbor so single-pixel patterns stay legible;
// pass 1 for a 1:1 dump.
func SaveOutput(path string, result *wfc.Result, scale int) error {
	if scale < 1 {
		scale = 1
	}

	src := image.NewRGBA(image.Rect(0, 0, result.Width, result.Height))
	for y := 0; y < result.Height; y++ {
		for x := 0; x < result.Width; x++ {
			px := result.Pixels[y][x]
			src.Set(x, y, color.RGBA{R: px[0], G: px[1], B: px[2], A: 0xFF})
		}
	}

	out := src.Bounds().Dx() * scale
	outH := src.Bounds().Dy() * scale
	dst := image.NewRGBA(image.Rect(0, 0, out, outH))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wfcimage: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return fmt.Errorf("wfcimage: encode %s: %w", path, err)
	}
	return nil
}
