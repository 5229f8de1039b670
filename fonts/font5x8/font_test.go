package font5x8

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

func TestGlyphRange(t *testing.T) {
	if len(glyphData) != (last-first+1)*glyphWidth {
		t.Fatalf("glyph table has %d bytes", len(glyphData))
	}
	for _, r := range []rune{0x1F, 0x7F, 'é', -1} {
		if _, ok := Font.Glyph(r); ok {
			t.Fatalf("%q should be unknown", r)
		}
	}
	cols, ok := Font.Glyph(' ')
	if !ok || len(cols) != glyphWidth {
		t.Fatalf("space: %v %v", cols, ok)
	}
	for _, c := range cols {
		if c != 0 {
			t.Fatalf("space is not blank")
		}
	}
	if cols, _ := Font.Glyph('|'); cols[2] == 0 {
		t.Fatalf("bar has an empty centre column")
	}
}

type pixels map[[2]int16]bool

func (p pixels) Size() (x, y int16)                { return 128, 128 }
func (p pixels) SetPixel(x, y int16, c color.RGBA) { p[[2]int16{x, y}] = true }
func (p pixels) Display() error                    { return nil }

func TestTinyfontBaseline(t *testing.T) {
	p := pixels{}
	tinyfont.DrawChar(p, Font, 10, 20, '_', color.RGBA{A: 255})
	cols, _ := Font.Glyph('_')
	for col, bits := range cols {
		for row := 0; row < cellHeight; row++ {
			want := bits&(1<<row) != 0
			got := p[[2]int16{10 + int16(col), 20 - int16(cellHeight-1-row)}]
			if got != want {
				t.Fatalf("col %d row %d: lit=%v want %v", col, row, got, want)
			}
		}
	}

	_, w := tinyfont.LineWidth(Font, "abc")
	if w != 3*cellWidth {
		t.Fatalf("line width %d, want %d", w, 3*cellWidth)
	}
}

func TestConcreteFontMatchesColumns(t *testing.T) {
	if len(Tiny.Glyphs) != last-first+1 {
		t.Fatalf("concrete font has %d glyphs", len(Tiny.Glyphs))
	}
	for r := rune(first); r <= last; r++ {
		p := pixels{}
		tinyfont.DrawChar(p, Tiny, 0, 7, r, color.RGBA{A: 255})
		cols, _ := Font.Glyph(r)
		n := 0
		for col, bits := range cols {
			for row := 0; row < cellHeight; row++ {
				if bits&(1<<row) == 0 {
					continue
				}
				n++
				if !p[[2]int16{int16(col), int16(row)}] {
					t.Fatalf("%q: col %d row %d not drawn", r, col, row)
				}
			}
		}
		if len(p) != n {
			t.Fatalf("%q: drew %d pixels, want %d", r, len(p), n)
		}
	}

	_, w := tinyfont.LineWidth(Tiny, "0")
	if w != cellWidth {
		t.Fatalf("advance %d, want %d", w, cellWidth)
	}
}

func TestUnknownRuneDrawsQuestionMark(t *testing.T) {
	got, want := pixels{}, pixels{}
	tinyfont.DrawChar(got, Font, 0, 7, 'é', color.RGBA{A: 255})
	tinyfont.DrawChar(want, Font, 0, 7, '?', color.RGBA{A: 255})
	if len(got) == 0 || len(got) != len(want) {
		t.Fatalf("unknown rune drew %d pixels, '?' draws %d", len(got), len(want))
	}
	for p := range want {
		if !got[p] {
			t.Fatalf("pixel %v missing", p)
		}
	}
}
