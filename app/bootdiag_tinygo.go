//go:build tinygo && bootdebug

package app

import (
	"machine"
	"sync"
	"time"

	"ili9163/gfx"
	"ili9163/hal"
)

var (
	bootDiagMu   sync.Mutex
	bootDiagStep string
)

// bootStep records the current bring-up step and, once the LCD is up, shows it there.
func bootStep(d *gfx.Display, msg string) {
	bootDiagMu.Lock()
	bootDiagStep = msg
	bootDiagMu.Unlock()

	if d == nil {
		return
	}
	d.FilledRectangle(0, gfx.TextY(15), gfx.Width-1, gfx.Height-1, gfx.Black)
	d.PutString(msg, 0, gfx.TextY(15), gfx.Yellow, gfx.Black, 1)
}

// bootDiagStart repeats the current step on the logger and USB CDC until the
// device is reset, so a hang during bring-up can be located without a debugger.
func bootDiagStart(h hal.HAL) {
	l := hal.LoggerOf(h)

	go func() {
		for {
			bootDiagMu.Lock()
			step := bootDiagStep
			bootDiagMu.Unlock()

			if step == "" {
				step = "<empty>"
			}
			line := "bootdiag: " + step

			l.WriteLineString(line)

			// Also stream to USB CDC when it becomes available.
			if usb := machine.USBCDC; usb != nil {
				_, _ = usb.Write([]byte(line + "\r\n"))
			}

			time.Sleep(250 * time.Millisecond)
		}
	}()
}
