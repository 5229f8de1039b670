//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

type hostHAL struct {
	logger Logger
	panel  *Panel
	lcd    *ILI9163
	kbd    *hostKeyboard
}

// New returns a host HAL whose LCD is an emulated ILI9163 panel.
func New() HAL {
	return newHostHAL()
}

func newHostHAL() *hostHAL {
	logger := &hostLogger{w: os.Stdout}
	panel := NewPanel()
	lcd := NewILI9163(panel, logger)
	// The emulated panel needs no settling time.
	lcd.Sleep = func(time.Duration) {}
	return &hostHAL{
		logger: logger,
		panel:  panel,
		lcd:    lcd,
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) LCD() Device        { return h.lcd }
func (h *hostHAL) Keyboard() Keyboard { return h.kbd }

// Panel returns the emulated controller behind the LCD.
func (h *hostHAL) Panel() *Panel { return h.panel }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
