package gfx

import "ili9163/hal"

// Text cell metrics of the built-in font.
const (
	CellWidth  = 6
	CellHeight = 8
)

// TextX returns the pixel x coordinate of text column col.
func TextX(col int) int16 { return int16(col * CellWidth) }

// TextY returns the pixel y coordinate of text row row.
func TextY(row int) int16 { return int16(row * CellHeight) }

// TextGrid returns the number of whole text cells that fit on screen in orientation o.
//
// The panel is square, so every orientation yields the same grid; the controller's
// address offset for rotated orientations is handled by the driver.
func TextGrid(o hal.Orientation) (cols, rows int) {
	w, h := Width, Height
	if o.Swapped() {
		w, h = h, w
	}
	return w / CellWidth, h / CellHeight
}
