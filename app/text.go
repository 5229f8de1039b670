package app

import (
	"ili9163/fonts/font5x8"
	"ili9163/gfx"

	"tinygo.org/x/tinyfont"
)

// textPage shows the character grid, scaled glyphs and a tinyfont heading.
type textPage struct{}

func (textPage) name() string { return "text" }

func (textPage) draw(d *gfx.Display) {
	d.Clear(gfx.Black)

	// tinyfont draws relative to the baseline.
	tinyfont.WriteLine(d, font5x8.Font, gfx.TextX(0), gfx.TextY(1)-1, "ILI9163 128x128", gfx.Yellow.RGBA())

	// Printable ASCII on the grid, 21 cells per row.
	row := 2
	col := 0
	for r := rune(0x20); r < 0x7F; r++ {
		d.PutChar(r, gfx.TextX(col), gfx.TextY(row), gfx.White, gfx.Black, 1)
		col++
		if col == consoleCols {
			col = 0
			row++
		}
	}

	d.PutString("x2", gfx.TextX(0), gfx.TextY(8), gfx.Cyan, gfx.Blue, 2)
	d.PutString("x3", gfx.TextX(5), gfx.TextY(8), gfx.Red, gfx.Black, 3)
	d.PutChar('A', gfx.TextX(11), gfx.TextY(8), gfx.Green, gfx.Black, 4)
	d.PutString("unknown:é☺", gfx.TextX(0), gfx.TextY(15), gfx.Magenta, gfx.Black, 1)
}

func (textPage) step(*gfx.Display) {}
