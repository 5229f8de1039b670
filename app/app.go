// Package app is the demo application: a set of pages that exercise every
// drawing operation on the LCD, plus an on-screen log console.
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ili9163/gfx"
	"ili9163/hal"
	"ili9163/internal/buildinfo"
)

var (
	ErrNoLCD       = errors.New("app: no lcd")
	ErrUnknownPage = errors.New("app: unknown page")
)

// Config selects the start-up state of the demo.
type Config struct {
	Orientation hal.Orientation
	// Page is the index of the first page shown (see PageNames).
	Page int
	// Console starts with the log console on screen instead of a page.
	Console bool
}

// page is one screen of the demo. draw paints it from scratch; step advances
// its animation by one tick.
type page interface {
	name() string
	draw(d *gfx.Display)
	step(d *gfx.Display)
}

func newPages() []page {
	return []page{
		shapesPage{},
		polygonsPage{},
		textPage{},
		newWirePage(),
	}
}

// PageNames lists the demo pages in the order Left/Right cycles through them.
func PageNames() []string {
	pages := newPages()
	names := make([]string, len(pages))
	for i, p := range pages {
		names[i] = p.name()
	}
	return names
}

// PageIndex returns the index of the page called name.
func PageIndex(name string) (int, error) {
	for i, n := range PageNames() {
		if strings.EqualFold(n, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPage, name)
}

type application struct {
	h       hal.HAL
	log     hal.Logger
	d       *gfx.Display
	pages   []page
	cur     int
	console *console
	dirty   bool
}

// New brings up the LCD and returns the per-tick step function of the demo.
func New(h hal.HAL, cfg Config) (func() error, error) {
	a, err := newApplication(h, cfg)
	if err != nil {
		return nil, err
	}
	return a.guard(a.step), nil
}

// Run starts the demo and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL, cfg Config) {
	log := hal.LoggerOf(h)
	step, err := New(h, cfg)
	if err != nil {
		log.WriteLineString(err.Error())
		select {}
	}
	t := time.NewTicker(time.Second / 60)
	defer t.Stop()
	for range t.C {
		if err := step(); err != nil {
			log.WriteLineString(err.Error())
			select {}
		}
	}
}

func newApplication(h hal.HAL, cfg Config) (*application, error) {
	lcd := h.LCD()
	if lcd == nil {
		return nil, ErrNoLCD
	}
	pages := newPages()
	if cfg.Page < 0 || cfg.Page >= len(pages) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPage, cfg.Page)
	}
	bootDiagStart(h)
	bootStep(nil, "lcd init")
	if err := lcd.Initialise(cfg.Orientation); err != nil {
		return nil, fmt.Errorf("app: lcd init: %w", err)
	}

	d := gfx.New(lcd)
	bootStep(d, "lcd up")
	con := newConsole(d)
	a := &application{
		h:       h,
		log:     teeLogger{hal.LoggerOf(h), con},
		d:       d,
		pages:   pages,
		cur:     cfg.Page,
		console: con,
		dirty:   true,
	}

	cols, rows := gfx.TextGrid(cfg.Orientation)
	a.log.WriteLineString("ili9163 demo " + buildinfo.Long())
	a.log.WriteLineString(fmt.Sprintf("lcd: %s, text %dx%d", cfg.Orientation, cols, rows))
	if cfg.Console {
		a.console.show()
		a.dirty = false
	}
	return a, nil
}

func (a *application) step() error {
	if kbd := a.h.Keyboard(); kbd != nil {
		if ch := kbd.Events(); ch != nil {
		drain:
			for {
				select {
				case ev := <-ch:
					a.handleKey(ev)
				default:
					break drain
				}
			}
		}
	}

	if a.console.visible() {
		return nil
	}
	p := a.pages[a.cur]
	if a.dirty {
		a.dirty = false
		p.draw(a.d)
		return nil
	}
	p.step(a.d)
	return nil
}

func (a *application) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyLeft:
		a.show((a.cur + len(a.pages) - 1) % len(a.pages))
	case hal.KeyRight:
		a.show((a.cur + 1) % len(a.pages))
	case hal.KeyEnter:
		if a.console.visible() {
			a.console.hide()
			a.dirty = true
			return
		}
		a.console.show()
	}
}

func (a *application) show(i int) {
	if a.console.visible() {
		a.console.hide()
	}
	a.cur = i
	a.dirty = true
	a.log.WriteLineString("page: " + a.pages[i].name())
}
