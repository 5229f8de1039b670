package hal

import (
	"fmt"

	"tinygo.org/x/drivers"
)

// Orientation selects where the ribbon cable sits. Its value is the controller's
// address-mode byte (row/column order and exchange bits).
type Orientation uint8

const (
	Orientation0 Orientation = 0   // ribbon at top
	Orientation1 Orientation = 96  // ribbon at left
	Orientation2 Orientation = 160 // ribbon at right
	Orientation3 Orientation = 192 // ribbon at bottom
)

// Address-mode bits.
const (
	modeMY = 0x80 // row address order
	modeMX = 0x40 // column address order
	modeMV = 0x20 // row/column exchange
)

// Valid reports whether o is one of the four supported orientations.
func (o Orientation) Valid() bool {
	switch o {
	case Orientation0, Orientation1, Orientation2, Orientation3:
		return true
	}
	return false
}

// Swapped reports whether screen x runs along the controller's rows.
func (o Orientation) Swapped() bool { return o&modeMV != 0 }

// Offset returns the column and page address offsets that place the 128-line screen
// inside the controller's 160-line memory when that axis is mirrored.
func (o Orientation) Offset() (col, row uint16) {
	if o&modeMY == 0 {
		return 0, 0
	}
	if o.Swapped() {
		return GRAMRows - ScreenSize, 0
	}
	return 0, GRAMRows - ScreenSize
}

// Rotation returns the drivers rotation matching o.
func (o Orientation) Rotation() drivers.Rotation {
	switch o {
	case Orientation1:
		return drivers.Rotation90
	case Orientation3:
		return drivers.Rotation180
	case Orientation2:
		return drivers.Rotation270
	}
	return drivers.Rotation0
}

// OrientationFromRotation maps a drivers rotation onto the panel's orientations.
func OrientationFromRotation(r drivers.Rotation) Orientation {
	switch r % 4 {
	case drivers.Rotation90:
		return Orientation1
	case drivers.Rotation180:
		return Orientation3
	case drivers.Rotation270:
		return Orientation2
	}
	return Orientation0
}

func (o Orientation) String() string {
	switch o {
	case Orientation0:
		return "ribbon-top"
	case Orientation1:
		return "ribbon-left"
	case Orientation2:
		return "ribbon-right"
	case Orientation3:
		return "ribbon-bottom"
	}
	return fmt.Sprintf("orientation(%d)", uint8(o))
}

// ParseOrientation accepts 0..3 or a ribbon name as printed by String.
func ParseOrientation(s string) (Orientation, error) {
	for _, o := range []Orientation{Orientation0, Orientation1, Orientation2, Orientation3} {
		if s == o.String() {
			return o, nil
		}
	}
	switch s {
	case "0":
		return Orientation0, nil
	case "1":
		return Orientation1, nil
	case "2":
		return Orientation2, nil
	case "3":
		return Orientation3, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadOrientation, s)
}
