package hal

import (
	"errors"
	"fmt"
	"time"
)

// Panel geometry. The controller's memory is 128 columns by 160 rows; the glass
// shows a 128×128 window of it.
const (
	ScreenSize = 128
	GRAMCols   = 128
	GRAMRows   = 160
)

var (
	ErrNilBus         = errors.New("lcd: nil bus")
	ErrBadOrientation = errors.New("lcd: bad orientation")
)

type initStep struct {
	cmd    Command
	params []byte
	delay  time.Duration
}

// initSequence runs after the hardware reset, before the address mode and window are set.
var initSequence = []initStep{
	{cmd: CmdExitSleepMode, delay: 5 * time.Millisecond},
	{cmd: CmdSetPixelFormat, params: []byte{0x05}}, // 16 bpp
	{cmd: CmdSetGammaCurve, params: []byte{0x04}},
	{cmd: CmdGamRSel, params: []byte{0x01}},
	{cmd: CmdPositiveGammaCorrect, params: []byte{
		0x3F, 0x25, 0x1C, 0x1E, 0x20, 0x12, 0x2A, 0x90,
		0x24, 0x11, 0x00, 0x00, 0x00, 0x00, 0x00,
	}},
	{cmd: CmdNegativeGammaCorrect, params: []byte{
		0x20, 0x20, 0x20, 0x20, 0x05, 0x00, 0x15, 0xA7,
		0x3D, 0x18, 0x25, 0x2A, 0x2B, 0x2B, 0x3A,
	}},
	{cmd: CmdFrameRateControl1, params: []byte{0x08, 0x08}},
	{cmd: CmdDisplayInversion, params: []byte{0x07}},
	{cmd: CmdPowerControl1, params: []byte{0x0A, 0x02}},
	{cmd: CmdPowerControl2, params: []byte{0x02}},
	{cmd: CmdVCOMControl1, params: []byte{0x50, 0x5B}},
	{cmd: CmdVCOMOffsetControl, params: []byte{0x40}},
}

// ILI9163 drives a 128×128 ILI9163 panel over a Bus.
//
// It is not safe for concurrent use.
type ILI9163 struct {
	bus Bus
	log Logger

	orient Orientation
	colOff uint16
	rowOff uint16

	// Sleep waits between bring-up steps. Nil means time.Sleep.
	Sleep func(time.Duration)
}

// NewILI9163 returns a driver for the controller behind bus. log may be nil.
func NewILI9163(bus Bus, log Logger) *ILI9163 {
	return &ILI9163{bus: bus, log: log}
}

// Orientation returns the orientation set by the last Initialise or SetOrientation.
func (d *ILI9163) Orientation() Orientation { return d.orient }

func (d *ILI9163) Reset() {
	if d.bus == nil {
		return
	}
	d.bus.Reset()
}

func (d *ILI9163) WriteCommand(cmd Command) { d.bus.WriteCommand(byte(cmd)) }

func (d *ILI9163) WriteParameter(p byte) { d.bus.WriteData(p) }

func (d *ILI9163) WriteData(b1, b2 byte) {
	d.bus.WriteData(b1)
	d.bus.WriteData(b2)
}

func (d *ILI9163) cmd(cmd Command, params ...byte) {
	d.WriteCommand(cmd)
	for _, p := range params {
		d.WriteParameter(p)
	}
}

func (d *ILI9163) sleep(t time.Duration) {
	if d.Sleep != nil {
		d.Sleep(t)
		return
	}
	time.Sleep(t)
}

func (d *ILI9163) logf(format string, args ...any) {
	if d.log == nil {
		return
	}
	d.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Initialise resets the controller and brings it up in orientation o with the
// display switched on.
func (d *ILI9163) Initialise(o Orientation) error {
	if d.bus == nil {
		return ErrNilBus
	}
	if !o.Valid() {
		return fmt.Errorf("%w: %d", ErrBadOrientation, uint8(o))
	}

	d.Reset()
	for _, s := range initSequence {
		d.cmd(s.cmd, s.params...)
		if s.delay > 0 {
			d.sleep(s.delay)
		}
	}
	d.applyOrientation(o)
	d.setWindow(0, 0, ScreenSize-1, ScreenSize-1)
	d.cmd(CmdSetDisplayOn)

	d.logf("lcd: ili9163 ready (%s)", o)
	return nil
}

// SetOrientation switches the address mode without a full re-initialisation.
// Memory contents are not redrawn.
func (d *ILI9163) SetOrientation(o Orientation) error {
	if d.bus == nil {
		return ErrNilBus
	}
	if !o.Valid() {
		return fmt.Errorf("%w: %d", ErrBadOrientation, uint8(o))
	}
	d.applyOrientation(o)
	d.logf("lcd: orientation %s", o)
	return nil
}

func (d *ILI9163) applyOrientation(o Orientation) {
	d.orient = o
	d.colOff, d.rowOff = o.Offset()
	d.cmd(CmdSetAddressMode, byte(o))
}

func (d *ILI9163) setWindow(x0, y0, x1, y1 uint16) {
	x0 += d.colOff
	x1 += d.colOff
	y0 += d.rowOff
	y1 += d.rowOff
	d.cmd(CmdSetColumnAddress, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1))
	d.cmd(CmdSetPageAddress, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
}

// SetPixel writes one pixel. Coordinates outside the screen are ignored.
func (d *ILI9163) SetPixel(x, y int16, c uint16) {
	if x < 0 || y < 0 || x >= ScreenSize || y >= ScreenSize {
		return
	}
	d.setWindow(uint16(x), uint16(y), uint16(x), uint16(y))
	d.WriteCommand(CmdWriteMemoryStart)
	d.WriteData(byte(c>>8), byte(c))
}

// FillSpan streams pixels x0..x1 of row y through a one-row window.
func (d *ILI9163) FillSpan(x0, x1, y int16, c uint16) {
	if y < 0 || y >= ScreenSize {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, 0)
	x1 = min(x1, ScreenSize-1)
	if x0 > x1 {
		return
	}
	d.setWindow(uint16(x0), uint16(y), uint16(x1), uint16(y))
	d.WriteCommand(CmdWriteMemoryStart)
	hi, lo := byte(c>>8), byte(c)
	for x := x0; x <= x1; x++ {
		d.WriteData(hi, lo)
	}
}

// Clear fills the whole screen with c in a single memory write.
func (d *ILI9163) Clear(c uint16) {
	d.setWindow(0, 0, ScreenSize-1, ScreenSize-1)
	d.WriteCommand(CmdWriteMemoryStart)
	hi, lo := byte(c>>8), byte(c)
	for i := 0; i < ScreenSize*ScreenSize; i++ {
		d.WriteData(hi, lo)
	}
}

// SetScroll scrolls the screen so row line is shown at the top. The controller only
// scrolls along its rows, so this is a no-op in the row/column exchanged orientations.
func (d *ILI9163) SetScroll(line int16) {
	if d.orient.Swapped() {
		return
	}
	start := uint16(((int(line) % ScreenSize) + ScreenSize) % ScreenSize)
	if d.orient&modeMY != 0 {
		start = (ScreenSize - start) % ScreenSize
	}
	const bottom = GRAMRows - ScreenSize
	d.cmd(CmdSetScrollArea, 0, 0, 0, ScreenSize, 0, bottom)
	d.cmd(CmdSetScrollStart, byte(start>>8), byte(start))
}

// Standby switches the display off and puts the controller to sleep.
func (d *ILI9163) Standby() {
	d.cmd(CmdSetDisplayOff)
	d.cmd(CmdEnterSleepMode)
}

// Wake leaves sleep mode and switches the display on.
func (d *ILI9163) Wake() {
	d.cmd(CmdExitSleepMode)
	d.sleep(5 * time.Millisecond)
	d.cmd(CmdSetDisplayOn)
}
