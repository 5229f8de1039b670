//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger Logger
	lcd    *ILI9163
	kbd    Keyboard
}

// New returns a Pico HAL driving the panel over GPIO.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// LCD: D0..D7 on GP6..GP13, WR GP14, RS GP15, RD GP16, CS GP17, RESET GP18.
// Buttons (to ground): Left GP19, Right GP20, Enter GP21.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	bus := NewParallelBus(
		[8]machine.Pin{
			machine.GP6, machine.GP7, machine.GP8, machine.GP9,
			machine.GP10, machine.GP11, machine.GP12, machine.GP13,
		},
		machine.GP14, machine.GP15, machine.GP16, machine.GP17, machine.GP18,
	)

	return &tinyGoHAL{
		logger: logger,
		lcd:    NewILI9163(bus, logger),
		kbd: newButtonKeyboard([]button{
			{pin: machine.GP19, code: KeyLeft},
			{pin: machine.GP20, code: KeyRight},
			{pin: machine.GP21, code: KeyEnter},
		}),
	}
}

func (h *tinyGoHAL) Logger() Logger     { return h.logger }
func (h *tinyGoHAL) LCD() Device        { return h.lcd }
func (h *tinyGoHAL) Keyboard() Keyboard { return h.kbd }
