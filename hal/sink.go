package hal

// FrameSink is the single point where drawing reaches the panel.
//
// x and y are screen coordinates in 0..127 under the active orientation; c is a
// 16-bit device color word.
type FrameSink interface {
	SetPixel(x, y int16, c uint16)
}

// SpanFiller is implemented by sinks that can stream a horizontal run x0..x1
// (inclusive) of one color faster than pixel by pixel. Callers clip first.
type SpanFiller interface {
	FillSpan(x0, x1, y int16, c uint16)
}

// Scroller is implemented by sinks with hardware vertical scrolling.
type Scroller interface {
	SetScroll(line int16)
}

// Rotator is implemented by sinks that can change orientation after bring-up.
type Rotator interface {
	SetOrientation(o Orientation) error
}

// Device is a panel controller: a FrameSink plus the register-level bring-up calls.
// The bring-up calls are used by initialisation code, never by drawing code.
type Device interface {
	FrameSink
	Reset()
	Initialise(o Orientation) error
	WriteCommand(cmd Command)
	WriteParameter(p byte)
	WriteData(b1, b2 byte)
}

// Bus is the physical 8-bit command/data interface to a controller.
//
// WriteCommand strobes a byte with the register-select line low, WriteData with it
// high. Reset pulses the reset line and waits for the controller to come back.
type Bus interface {
	Reset()
	WriteCommand(b byte)
	WriteData(b byte)
}
