//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// WritePNG encodes the visible panel area as PNG, magnified by scale with
// nearest-neighbour sampling so pixels stay square.
func WritePNG(w io.Writer, p *Panel, scale int) error {
	if scale <= 0 {
		scale = 1
	}
	src := p.Image()
	var img image.Image = src
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, ScreenSize*scale, ScreenSize*scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		img = dst
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return nil
}
