//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	if l == nil {
		return
	}
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	if l == nil {
		return
	}
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type button struct {
	pin  machine.Pin
	code KeyCode
	down bool
}

// buttonKeyboard polls active-low push buttons and reports edges.
type buttonKeyboard struct {
	ch      chan KeyEvent
	buttons []button
}

func newButtonKeyboard(buttons []button) *buttonKeyboard {
	in := machine.PinConfig{Mode: machine.PinInputPullup}
	for _, b := range buttons {
		b.pin.Configure(in)
	}
	k := &buttonKeyboard{ch: make(chan KeyEvent, 16), buttons: buttons}
	go k.run()
	return k
}

func (k *buttonKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *buttonKeyboard) run() {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		for i := range k.buttons {
			b := &k.buttons[i]
			down := !b.pin.Get()
			if down == b.down {
				continue
			}
			b.down = down
			select {
			case k.ch <- KeyEvent{Code: b.code, Press: down}:
			default:
			}
		}
	}
}
