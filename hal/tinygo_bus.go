//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

// ParallelBus bit-bangs the controller's 8080-style 8-bit parallel interface.
type ParallelBus struct {
	data [8]machine.Pin
	wr   machine.Pin
	rs   machine.Pin
	rd   machine.Pin
	cs   machine.Pin
	rst  machine.Pin
}

// NewParallelBus configures the pins as outputs and leaves the bus idle
// (strobes and chip select high).
func NewParallelBus(data [8]machine.Pin, wr, rs, rd, cs, rst machine.Pin) *ParallelBus {
	b := &ParallelBus{data: data, wr: wr, rs: rs, rd: rd, cs: cs, rst: rst}
	out := machine.PinConfig{Mode: machine.PinOutput}
	for _, p := range b.data {
		p.Configure(out)
		p.Low()
	}
	for _, p := range []machine.Pin{b.wr, b.rs, b.rd, b.cs, b.rst} {
		p.Configure(out)
		p.High()
	}
	return b
}

// Reset pulses the reset line and waits for the controller to come back.
func (b *ParallelBus) Reset() {
	b.rst.Low()
	time.Sleep(50 * time.Millisecond)
	b.rst.High()
	time.Sleep(120 * time.Millisecond)
}

func (b *ParallelBus) WriteCommand(v byte) {
	b.rs.Low()
	b.write(v)
}

func (b *ParallelBus) WriteData(v byte) {
	b.rs.High()
	b.write(v)
}

func (b *ParallelBus) write(v byte) {
	b.cs.Low()
	for i, p := range b.data {
		p.Set(v&(1<<i) != 0)
	}
	b.wr.Low()
	b.wr.High()
	b.cs.High()
}
