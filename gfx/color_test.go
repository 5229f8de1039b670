package gfx

import (
	"image/color"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    Color
	}{
		{0, 0, 0, 0x0000},
		{31, 63, 31, 0xFFFF},
		{31, 0, 0, 0xF800},
		{0, 63, 0, 0x07E0},
		{0, 0, 31, 0x001F},
		{0xFF, 0xFF, 0xFF, 0xFFFF},
		{32, 64, 32, 0x0000},
		{33, 65, 34, 0x0822},
	}
	for _, tc := range tests {
		if got := Encode(tc.r, tc.g, tc.b); got != tc.want {
			t.Fatalf("Encode(%d,%d,%d) = %#04x, want %#04x", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestChannelsInvertEncode(t *testing.T) {
	for r := uint8(0); r < 32; r += 3 {
		for g := uint8(0); g < 64; g += 5 {
			for b := uint8(0); b < 32; b += 7 {
				gr, gg, gb := Encode(r, g, b).Channels()
				if gr != r || gg != g || gb != b {
					t.Fatalf("(%d,%d,%d) came back as (%d,%d,%d)", r, g, b, gr, gg, gb)
				}
			}
		}
	}
}

func TestEncode555(t *testing.T) {
	tests := []struct {
		g     uint8
		wantG uint8
	}{
		{0, 0},
		{0x0F, 0x1E},
		{0x10, 0x21},
		{0x1F, 0x3F},
	}
	for _, tc := range tests {
		_, g, _ := Encode555(0, tc.g, 0).Channels()
		if g != tc.wantG {
			t.Fatalf("green %#x widened to %#x, want %#x", tc.g, g, tc.wantG)
		}
	}
	if Encode555(31, 31, 31) != White {
		t.Fatalf("full 555 white is %#04x", Encode555(31, 31, 31))
	}
}

func TestRGBABridge(t *testing.T) {
	if c := White.RGBA(); c != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("White.RGBA() = %v", c)
	}
	for _, c := range []Color{Black, White, Red, Green, Blue, Yellow, Cyan, Magenta, 0x1234} {
		if got := FromRGBA(c.RGBA()); got != c {
			t.Fatalf("%#04x came back as %#04x", c, got)
		}
	}
}
