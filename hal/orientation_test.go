package hal

import (
	"errors"
	"testing"

	"tinygo.org/x/drivers"
)

func TestOrientationOffsets(t *testing.T) {
	tests := []struct {
		o        Orientation
		col, row uint16
		swapped  bool
	}{
		{Orientation0, 0, 0, false},
		{Orientation1, 0, 0, true},
		{Orientation2, 32, 0, true},
		{Orientation3, 0, 32, false},
	}
	for _, tc := range tests {
		col, row := tc.o.Offset()
		if col != tc.col || row != tc.row {
			t.Fatalf("%s: offset (%d,%d), want (%d,%d)", tc.o, col, row, tc.col, tc.row)
		}
		if tc.o.Swapped() != tc.swapped {
			t.Fatalf("%s: swapped=%v", tc.o, tc.o.Swapped())
		}
	}
}

func TestOrientationRotation(t *testing.T) {
	for _, o := range []Orientation{Orientation0, Orientation1, Orientation2, Orientation3} {
		if got := OrientationFromRotation(o.Rotation()); got != o {
			t.Fatalf("%s -> %d -> %s", o, o.Rotation(), got)
		}
	}
	if OrientationFromRotation(drivers.Rotation180) != Orientation3 {
		t.Fatalf("Rotation180 should put the ribbon at the bottom")
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in   string
		want Orientation
	}{
		{"0", Orientation0},
		{"1", Orientation1},
		{"2", Orientation2},
		{"3", Orientation3},
		{"ribbon-left", Orientation1},
		{"ribbon-bottom", Orientation3},
	}
	for _, tc := range tests {
		got, err := ParseOrientation(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("ParseOrientation(%q) = %v, %v", tc.in, got, err)
		}
	}
	for _, in := range []string{"", "4", "96", "up"} {
		if _, err := ParseOrientation(in); !errors.Is(err, ErrBadOrientation) {
			t.Fatalf("ParseOrientation(%q): %v", in, err)
		}
	}
	if Orientation(5).Valid() {
		t.Fatalf("5 should not be valid")
	}
}

func TestCommandString(t *testing.T) {
	if s := CmdSetAddressMode.String(); s != "SET_ADDRESS_MODE" {
		t.Fatalf("got %q", s)
	}
	if s := CmdGamRSel.String(); s != "GAM_R_SEL" {
		t.Fatalf("got %q", s)
	}
	if Command(0xFF).Known() {
		t.Fatalf("0xFF is not a controller command")
	}
	if s := Command(0xFF).String(); s != "CMD_FF" {
		t.Fatalf("got %q", s)
	}
}
