//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"runtime"
	"time"
)

type tinyGoHostHAL struct {
	logger Logger
	panel  *Panel
	lcd    *ILI9163
	kbd    *tinyGoHostKeyboard
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
// The LCD is an emulated panel.
func New() HAL {
	l := &tinyGoHostLogger{}
	panel := NewPanel()
	lcd := NewILI9163(panel, l)
	lcd.Sleep = func(time.Duration) {}
	l.WriteLineString(fmt.Sprintf("hal: emulated panel (tinygo/%s)", runtime.GOOS))
	return &tinyGoHostHAL{
		logger: l,
		panel:  panel,
		lcd:    lcd,
		kbd:    &tinyGoHostKeyboard{ch: make(chan KeyEvent)},
	}
}

func (h *tinyGoHostHAL) Logger() Logger     { return h.logger }
func (h *tinyGoHostHAL) LCD() Device        { return h.lcd }
func (h *tinyGoHostHAL) Keyboard() Keyboard { return h.kbd }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostKeyboard struct {
	ch chan KeyEvent
}

func (k *tinyGoHostKeyboard) Events() <-chan KeyEvent { return k.ch }
