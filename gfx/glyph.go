package gfx

// Font is a read-only table of fixed-size bitmap glyphs.
type Font interface {
	// CellSize is the pen advance and line height in pixels.
	CellSize() (w, h int16)
	// Glyph returns the glyph columns for code, left to right, bit 0 at the top.
	Glyph(code rune) (columns []byte, ok bool)
}

// PutChar draws the cell for code with its top-left corner at (x, y). Set bits are
// plotted in fg and clear bits in bg; each bit becomes a scale×scale block. Codes the
// font does not know draw as a blank cell.
func (d *Display) PutChar(code rune, x, y int16, fg, bg Color, scale int) {
	d.putChar(code, int(x), int(y), fg, bg, scale)
}

// PutString draws s left to right, one cell per character, without wrapping.
func (d *Display) PutString(s string, x, y int16, fg, bg Color, scale int) {
	if scale <= 0 {
		scale = 1
	}
	w, _ := d.font.CellSize()
	px := int(x)
	for _, r := range s {
		if px >= Width {
			return
		}
		d.putChar(r, px, int(y), fg, bg, scale)
		px += int(w) * scale
	}
}

func (d *Display) putChar(code rune, x, y int, fg, bg Color, scale int) {
	if scale <= 0 {
		scale = 1
	}
	cw, ch := d.font.CellSize()
	if x >= Width || y >= Height || x+int(cw)*scale <= 0 || y+int(ch)*scale <= 0 {
		return
	}
	cols, ok := d.font.Glyph(code)
	if !ok {
		cols = nil
	}

	for row := 0; row < int(ch); row++ {
		y0, y1 := clampRun(y+row*scale, scale, Height)
		if y0 >= y1 {
			continue
		}
		for col := 0; col < int(cw); col++ {
			x0, x1 := clampRun(x+col*scale, scale, Width)
			if x0 >= x1 {
				continue
			}
			c := bg
			if row < 8 && col < len(cols) && cols[col]&(1<<row) != 0 {
				c = fg
			}
			for py := y0; py < y1; py++ {
				for px := x0; px < x1; px++ {
					d.plot(px, py, c)
				}
			}
		}
	}
}

// clampRun returns the part of [start, start+n) inside [0, limit).
func clampRun(start, n, limit int) (lo, hi int) {
	lo, hi = max(start, 0), min(start+n, limit)
	return lo, hi
}
