// Package font5x8 is the built-in 5×8 ASCII glyph table drawn in a 6×8 cell.
package font5x8

import "tinygo.org/x/tinyfont"

const (
	first = 0x20
	last  = 0x7E

	glyphWidth = 5
	cellWidth  = 6
	cellHeight = 8
)

// Font is the shared table. It serves gfx.Display directly and implements
// tinyfont.Fonter for tinyfont.
var Font = &font5x8{}

// Tiny is the same table as a concrete tinyfont.Font, for APIs that take one
// (tinyterm). Unknown runes draw as an empty cell.
var Tiny = newTinyFont()

type font5x8 struct{}

// CellSize returns the 6×8 pen cell; the sixth column is spacing.
func (f *font5x8) CellSize() (w, h int16) { return cellWidth, cellHeight }

// Glyph returns the five columns of code, bit 0 at the top.
func (f *font5x8) Glyph(code rune) ([]byte, bool) {
	if code < first || code > last {
		return nil, false
	}
	i := int(code-first) * glyphWidth
	return glyphData[i : i+glyphWidth], true
}

func (f *font5x8) GetYAdvance() uint8 { return cellHeight }

// GetGlyph returns the glyph for r, or '?' when the table has none.
func (f *font5x8) GetGlyph(r rune) tinyfont.Glypher {
	if r < first || r > last {
		r = '?'
	}
	return &Tiny.Glyphs[r-first]
}

func newTinyFont() *tinyfont.Font {
	f := &tinyfont.Font{
		BBox:     [4]int8{cellWidth, cellHeight, 0, -(cellHeight - 1)},
		YAdvance: cellHeight,
	}
	for r := rune(first); r <= last; r++ {
		cols, _ := Font.Glyph(r)
		f.Glyphs = append(f.Glyphs, tinyfont.Glyph{
			Rune:     r,
			Width:    glyphWidth,
			Height:   cellHeight,
			XAdvance: cellWidth,
			YOffset:  -(cellHeight - 1),
			Bitmaps:  rowMajor(cols),
		})
	}
	return f
}

// rowMajor repacks column bytes (bit 0 at the top) into the MSB-first, row by row
// bit stream of a tinyfont.Glyph.
func rowMajor(cols []byte) []byte {
	out := make([]byte, (len(cols)*cellHeight+7)/8)
	bit := 0
	for row := 0; row < cellHeight; row++ {
		for _, c := range cols {
			if c&(1<<row) != 0 {
				out[bit/8] |= 0x80 >> (bit % 8)
			}
			bit++
		}
	}
	return out
}
