package gfx

import "testing"

// barFont knows only 'I': a single lit column with the top and bottom pixels set.
type barFont struct{}

func (barFont) CellSize() (w, h int16) { return 4, 8 }

func (barFont) Glyph(code rune) ([]byte, bool) {
	if code != 'I' {
		return nil, false
	}
	return []byte{0x81}, true
}

func TestPutCharBits(t *testing.T) {
	r := newRecorder()
	d := New(r, WithFont(barFont{}))
	d.PutChar('I', 10, 20, White, Blue, 1)
	if len(r.writes) != 4*8 {
		t.Fatalf("got %d writes, want the whole 4x8 cell", len(r.writes))
	}
	for y := int16(0); y < 8; y++ {
		for x := int16(0); x < 4; x++ {
			want := uint16(Blue)
			if x == 0 && (y == 0 || y == 7) {
				want = uint16(White)
			}
			if got := r.px[xy{10 + x, 20 + y}]; got != want {
				t.Fatalf("(%d,%d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

func TestPutCharUnknownIsBlank(t *testing.T) {
	d, r := newDisplay()
	d.PutChar('\x01', 0, 0, White, Red, 1)
	d.PutChar('é', 6, 0, White, Red, 1)
	if len(r.px) != 2*6*8 {
		t.Fatalf("got %d pixels, want two blank cells", len(r.px))
	}
	for _, c := range r.px {
		if c != uint16(Red) {
			t.Fatalf("unknown code drew foreground")
		}
	}
}

func TestPutCharScale(t *testing.T) {
	r := newRecorder()
	d := New(r, WithFont(barFont{}))
	d.PutChar('I', 0, 0, White, Black, 3)
	if len(r.px) != 12*24 {
		t.Fatalf("got %d pixels, want 12x24", len(r.px))
	}
	for y := int16(0); y < 3; y++ {
		for x := int16(0); x < 3; x++ {
			if r.px[xy{x, y}] != uint16(White) {
				t.Fatalf("scaled top-left block not lit at (%d,%d)", x, y)
			}
		}
	}
	if r.px[xy{3, 0}] != uint16(Black) {
		t.Fatalf("second column lit")
	}

	for _, scale := range []int{0, -4} {
		r1, r2 := newRecorder(), newRecorder()
		New(r1).PutChar('g', 5, 5, White, Black, 1)
		New(r2).PutChar('g', 5, 5, White, Black, scale)
		sameSet(t, "non-positive scale", r2.px, r1.px)
	}
}

func TestPutCharHugeScaleClips(t *testing.T) {
	r := newRecorder()
	d := New(r, WithFont(barFont{}))
	d.PutChar('I', 0, 0, White, Black, 1<<15)
	if len(r.writes) != Width*Height {
		t.Fatalf("got %d writes, want one per screen pixel", len(r.writes))
	}
	for p, c := range r.px {
		if c != uint16(White) {
			t.Fatalf("(%d,%d) not covered by the top-left block", p.x, p.y)
		}
	}

	r.reset()
	d.PutChar('I', -300, 40, White, Black, 20)
	d.PutChar('I', 10, 200, White, Black, 1<<14)
	if len(r.writes) != 0 {
		t.Fatalf("off-screen cells wrote %d pixels", len(r.writes))
	}

	// Only the first column block of the first cell reaches the screen.
	d.PutString("II", 127, 0, White, Black, 1<<15)
	checkOnScreen(t, r)
	if len(r.writes) != Height {
		t.Fatalf("got %d writes, want column 127 only", len(r.writes))
	}
	for _, w := range r.writes {
		if w.x != 127 {
			t.Fatalf("write at (%d,%d)", w.x, w.y)
		}
	}
}

func TestPutStringAdvance(t *testing.T) {
	d, r := newDisplay()
	d.PutString("AB", 10, 10, White, Black, 2)

	want := newRecorder()
	ref := New(want)
	ref.PutChar('A', 10, 10, White, Black, 2)
	ref.PutChar('B', 10+CellWidth*2, 10, White, Black, 2)
	sameSet(t, "string", r.px, want.px)
	for p, c := range want.px {
		if r.px[p] != c {
			t.Fatalf("(%d,%d) differs", p.x, p.y)
		}
	}
}

func TestPutCharClipped(t *testing.T) {
	d, r := newDisplay()
	d.PutString("clip", 120, 124, White, Black, 1)
	checkOnScreen(t, r)
	if len(r.px) != 8*4 {
		t.Fatalf("got %d pixels, want the visible 8x4 corner", len(r.px))
	}
}

func TestTextCoordinates(t *testing.T) {
	if TextX(0) != 0 || TextX(3) != 18 || TextX(20) != 120 {
		t.Fatalf("TextX: %d %d %d", TextX(0), TextX(3), TextX(20))
	}
	if TextY(0) != 0 || TextY(2) != 16 || TextY(15) != 120 {
		t.Fatalf("TextY: %d %d %d", TextY(0), TextY(2), TextY(15))
	}
}
