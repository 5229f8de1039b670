package gfx

import "testing"

type xy struct{ x, y int16 }

// recorder is a FrameSink that keeps every write in order.
type recorder struct {
	writes []write
	px     map[xy]uint16
}

type write struct {
	x, y int16
	c    uint16
}

func newRecorder() *recorder { return &recorder{px: make(map[xy]uint16)} }

func (r *recorder) SetPixel(x, y int16, c uint16) {
	r.writes = append(r.writes, write{x, y, c})
	r.px[xy{x, y}] = c
}

func (r *recorder) has(x, y int16) bool {
	_, ok := r.px[xy{x, y}]
	return ok
}

func (r *recorder) reset() {
	r.writes = r.writes[:0]
	r.px = make(map[xy]uint16)
}

// spanRecorder also implements hal.SpanFiller.
type spanRecorder struct {
	*recorder
	spans int
}

func (s *spanRecorder) FillSpan(x0, x1, y int16, c uint16) {
	s.spans++
	for x := x0; x <= x1; x++ {
		s.SetPixel(x, y, c)
	}
}

func newDisplay() (*Display, *recorder) {
	r := newRecorder()
	return New(r), r
}

func sameSet(t *testing.T, what string, got, want map[xy]uint16) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d pixels, want %d", what, len(got), len(want))
	}
	for p := range want {
		if _, ok := got[p]; !ok {
			t.Fatalf("%s: missing pixel (%d,%d)", what, p.x, p.y)
		}
	}
}

func checkOnScreen(t *testing.T, r *recorder) {
	t.Helper()
	for _, w := range r.writes {
		if w.x < 0 || w.y < 0 || w.x >= Width || w.y >= Height {
			t.Fatalf("write outside the screen: (%d,%d)", w.x, w.y)
		}
	}
}
