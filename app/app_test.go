package app

import (
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	"ili9163/fonts/font5x8"
	"ili9163/gfx"
	"ili9163/hal"
)

type memLogger struct{ lines []string }

func (l *memLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *memLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *memLogger) has(sub string) bool {
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type keyboard struct{ ch chan hal.KeyEvent }

func (k keyboard) Events() <-chan hal.KeyEvent { return k.ch }

type testHAL struct {
	log   *memLogger
	panel *hal.Panel
	lcd   *hal.ILI9163
	kbd   keyboard
}

func newTestHAL() *testHAL {
	log := &memLogger{}
	panel := hal.NewPanel()
	lcd := hal.NewILI9163(panel, log)
	lcd.Sleep = func(time.Duration) {}
	return &testHAL{log: log, panel: panel, lcd: lcd, kbd: keyboard{ch: make(chan hal.KeyEvent, 8)}}
}

func (h *testHAL) Logger() hal.Logger     { return h.log }
func (h *testHAL) LCD() hal.Device        { return h.lcd }
func (h *testHAL) Keyboard() hal.Keyboard { return h.kbd }

func (h *testHAL) press(code hal.KeyCode) {
	h.kbd.ch <- hal.KeyEvent{Code: code, Press: true}
	h.kbd.ch <- hal.KeyEvent{Code: code, Press: false}
}

func litCount(img *image.RGBA) int {
	n := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			n++
		}
	}
	return n
}

func TestNewDrawsEveryPage(t *testing.T) {
	for i, name := range PageNames() {
		h := newTestHAL()
		step, err := New(h, Config{Page: i})
		if err != nil {
			t.Fatalf("%s: New: %v", name, err)
		}
		if err := step(); err != nil {
			t.Fatalf("%s: step: %v", name, err)
		}
		if !h.panel.On() {
			t.Fatalf("%s: panel not switched on", name)
		}
		if litCount(h.panel.Image()) == 0 {
			t.Fatalf("%s: nothing drawn", name)
		}
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(newTestHAL(), Config{Page: len(PageNames())}); !errors.Is(err, ErrUnknownPage) {
		t.Fatalf("page out of range: %v", err)
	}
	if _, err := New(newTestHAL(), Config{Orientation: 3}); !errors.Is(err, hal.ErrBadOrientation) {
		t.Fatalf("bad orientation: %v", err)
	}
	if _, err := PageIndex("nope"); !errors.Is(err, ErrUnknownPage) {
		t.Fatalf("PageIndex: %v", err)
	}
	if i, err := PageIndex("WIRE3D"); err != nil || PageNames()[i] != "wire3d" {
		t.Fatalf("PageIndex(WIRE3D) = %d, %v", i, err)
	}
}

type quietHAL struct{ *testHAL }

func (quietHAL) Logger() hal.Logger { return nil }

func TestNewWithoutLogger(t *testing.T) {
	h := newTestHAL()
	a, err := newApplication(quietHAL{h}, Config{Console: true})
	if err != nil {
		t.Fatalf("newApplication: %v", err)
	}
	if len(a.console.lines) == 0 {
		t.Fatalf("console did not receive the start-up lines")
	}
	if err := a.guard(func() error { panic("boom") })(); err == nil {
		t.Fatalf("panic not reported")
	}
}

func TestKeysSwitchPages(t *testing.T) {
	h := newTestHAL()
	a, err := newApplication(h, Config{})
	if err != nil {
		t.Fatalf("newApplication: %v", err)
	}
	a.step()

	h.press(hal.KeyRight)
	a.step()
	if a.cur != 1 || !h.log.has("page: polygons") {
		t.Fatalf("right: page %d, log %v", a.cur, h.log.lines)
	}
	h.press(hal.KeyLeft)
	h.press(hal.KeyLeft)
	a.step()
	if a.cur != len(a.pages)-1 {
		t.Fatalf("left wrap: page %d", a.cur)
	}
}

func TestConsoleToggle(t *testing.T) {
	h := newTestHAL()
	a, err := newApplication(h, Config{})
	if err != nil {
		t.Fatalf("newApplication: %v", err)
	}
	a.step()

	h.press(hal.KeyEnter)
	a.step()
	if !a.console.visible() {
		t.Fatalf("console not shown")
	}
	if litCount(h.panel.Image()) == 0 {
		t.Fatalf("console shows no text")
	}

	h.press(hal.KeyEnter)
	a.step()
	if a.console.visible() {
		t.Fatalf("console still shown")
	}
	if a.dirty {
		t.Fatalf("page not redrawn after the console closed")
	}
}

func TestConsoleKeepsLastLines(t *testing.T) {
	c := newConsole(gfx.New(hal.NewILI9163(hal.NewPanel(), nil)))
	c.WriteLineString(strings.Repeat("x", 2*consoleCols+3))
	if len(c.lines) != 3 || len(c.lines[2]) != 3 {
		t.Fatalf("wrap: %q", c.lines)
	}
	for i := 0; i < 2*consoleLines; i++ {
		c.WriteLineString(string(rune('a' + i%26)))
	}
	if len(c.lines) != consoleLines {
		t.Fatalf("kept %d lines", len(c.lines))
	}
	if c.lines[consoleLines-1] != string(rune('a'+(2*consoleLines-1)%26)) {
		t.Fatalf("last line %q", c.lines[consoleLines-1])
	}
}

func TestConsoleDrawsGlyphs(t *testing.T) {
	h := newTestHAL()
	if err := h.lcd.Initialise(hal.Orientation0); err != nil {
		t.Fatalf("Initialise: %v", err)
	}
	c := newConsole(gfx.New(h.lcd))
	c.WriteLineString("I")
	c.show()

	// The terminal writes its first line at memory row 16 and scrolls it to the
	// second-to-last text row; hiding the console resets the scroll.
	check := func(top int) {
		t.Helper()
		cols, _ := font5x8.Font.Glyph('I')
		for col := 0; col < gfx.CellWidth; col++ {
			for row := 0; row < gfx.CellHeight; row++ {
				want := col < len(cols) && cols[col]&(1<<row) != 0
				got := h.panel.Pixel(col, top+row) != 0
				if got != want {
					t.Fatalf("top %d: col %d row %d lit=%v, want %v", top, col, row, got, want)
				}
			}
		}
	}
	check(gfx.Height - 2*gfx.CellHeight)
	c.hide()
	check(2 * gfx.CellHeight)
}

func TestWirePageErasesPreviousFrame(t *testing.T) {
	panel := hal.NewPanel()
	lcd := hal.NewILI9163(panel, nil)
	lcd.Sleep = func(time.Duration) {}
	if err := lcd.Initialise(hal.Orientation0); err != nil {
		t.Fatalf("Initialise: %v", err)
	}
	d := gfx.New(lcd)
	p := newWirePage()
	p.draw(d)
	for i := 0; i < 90; i++ {
		p.step(d)
	}

	ref := hal.NewPanel()
	refLCD := hal.NewILI9163(ref, nil)
	refLCD.Sleep = func(time.Duration) {}
	if err := refLCD.Initialise(hal.Orientation0); err != nil {
		t.Fatalf("Initialise: %v", err)
	}
	p2 := &wirePage{cam: p.cam}
	p2.draw(gfx.New(refLCD))

	got, want := panel.Image(), ref.Image()
	for i := range want.Pix {
		if got.Pix[i] != want.Pix[i] {
			px := i / 4
			t.Fatalf("pixel (%d,%d) differs from a fresh frame", px%hal.ScreenSize, px/hal.ScreenSize)
		}
	}
}

func TestWireCameraMoves(t *testing.T) {
	p := newWirePage()
	start := p.cam
	for i := 0; i < 30; i++ {
		p.advance(tickSeconds)
	}
	if p.cam == start {
		t.Fatalf("camera did not move")
	}
	// The camera always looks at the origin.
	if pr := gfx.ProjectPoint(gfx.Point3{}, p.cam); !pr.Visible || pr.X != gfx.CenterX {
		t.Fatalf("origin projects to %+v", pr)
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	h := newTestHAL()
	a, err := newApplication(h, Config{})
	if err != nil {
		t.Fatalf("newApplication: %v", err)
	}
	step := a.guard(func() error { panic("boom") })
	err = step()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("got %v", err)
	}
	if !h.log.has("boom") {
		t.Fatalf("panic not logged")
	}
	if c := h.panel.Pixel(127, 127); c != uint16(gfx.White) {
		t.Fatalf("panic screen not painted: %#04x", c)
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		in         string
		n          int16
		head, tail string
	}{
		{"hello", 3, "hel", "lo"},
		{"hi", 5, "hi", ""},
		{"ééé", 2, "éé", "é"},
		{"", 4, "", ""},
		{"abc", 0, "", "abc"},
	}
	for _, tc := range tests {
		head, tail := takeRunes(tc.in, tc.n)
		if head != tc.head || tail != tc.tail {
			t.Fatalf("takeRunes(%q, %d) = %q, %q", tc.in, tc.n, head, tail)
		}
	}
}
