package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Discard is a Logger that drops every line.
var Discard Logger = discardLogger{}

type discardLogger struct{}

func (discardLogger) WriteLineString(string) {}
func (discardLogger) WriteLineBytes([]byte)  {}

// LoggerOf returns h's logger, or Discard when h has none.
func LoggerOf(h HAL) Logger {
	if l := h.Logger(); l != nil {
		return l
	}
	return Discard
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// HAL provides the only contact point between the application and the board.
//
// Logger returns nil when the board has no log output. It never returns a nil
// pointer wrapped in the interface; the loggers in this package also tolerate a
// nil receiver.
type HAL interface {
	Logger() Logger
	LCD() Device
	Keyboard() Keyboard
}
