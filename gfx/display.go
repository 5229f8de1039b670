package gfx

import (
	"image/color"

	"ili9163/fonts/font5x8"
	"ili9163/hal"

	"tinygo.org/x/drivers"
)

// Screen size in pixels under every orientation.
const (
	Width  = 128
	Height = 128
)

// Display is an immediate-mode drawing surface over a FrameSink.
//
// Every call runs to completion and writes pixels through the sink in the order they are
// generated. Display keeps no drawing state between calls and does no locking: callers
// on more than one goroutine must serialize their calls.
type Display struct {
	sink  hal.FrameSink
	spans hal.SpanFiller
	font  Font
}

// Option configures a Display.
type Option func(*Display)

// WithFont selects the glyph table used by PutChar and PutString.
func WithFont(f Font) Option {
	return func(d *Display) {
		if f != nil {
			d.font = f
		}
	}
}

// New returns a Display drawing into sink.
func New(sink hal.FrameSink, opts ...Option) *Display {
	d := &Display{sink: sink, font: font5x8.Font}
	if sf, ok := sink.(hal.SpanFiller); ok {
		d.spans = sf
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Sink returns the underlying FrameSink.
func (d *Display) Sink() hal.FrameSink { return d.sink }

// Font returns the active glyph table.
func (d *Display) Font() Font { return d.font }

// Clear fills the whole screen with c.
func (d *Display) Clear(c Color) {
	for y := 0; y < Height; y++ {
		d.span(0, Width-1, y, c)
	}
}

// The methods below let tinyfont and tinyterm render onto a Display.

func (d *Display) Size() (x, y int16) { return Width, Height }

func (d *Display) SetPixel(x, y int16, c color.RGBA) { d.Plot(x, y, FromRGBA(c)) }

// Display is a no-op: all drawing is already on the device.
func (d *Display) Display() error { return nil }

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	d.FilledRectangle(x, y, x+width-1, y+height-1, FromRGBA(c))
	return nil
}

func (d *Display) SetScroll(line int16) {
	if s, ok := d.sink.(hal.Scroller); ok {
		s.SetScroll(line)
	}
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	r, ok := d.sink.(hal.Rotator)
	if !ok {
		return hal.ErrNotImplemented
	}
	return r.SetOrientation(hal.OrientationFromRotation(rotation))
}
