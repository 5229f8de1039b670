package app

import "ili9163/gfx"

// shapesPage shows every solid and dotted primitive side by side.
type shapesPage struct{}

func (shapesPage) name() string { return "shapes" }

func (shapesPage) draw(d *gfx.Display) {
	d.Clear(gfx.Black)
	d.PutString("shapes", 2, 1, gfx.White, gfx.Black, 1)

	// Line fan from the top-left of the first quadrant.
	for i := int16(0); i <= 40; i += 8 {
		d.Line(2, 12, 42, 12+i, gfx.Cyan)
	}
	d.DottedLine(2, 56, 42, 56, gfx.Yellow, 2)

	// Rectangles.
	d.Rectangle(48, 12, 80, 32, gfx.White)
	d.DottedRectangle(84, 12, 124, 32, gfx.White, 3)
	d.FilledRectangle(48, 36, 80, 56, gfx.Red)
	d.FilledDottedRectangle(124, 56, 84, 36, gfx.Green, 2)

	// Circles.
	d.Circle(20, 80, 16, gfx.Blue)
	d.DottedCircle(60, 80, 16, gfx.Magenta, 2)
	d.FilledCircle(20, 112, 12, gfx.Yellow)
	d.FilledDottedCircle(60, 112, 12, gfx.Cyan, 2)

	// Plot grid, partly off screen on the right.
	for y := int16(70); y < 126; y += 4 {
		for x := int16(88); x < 136; x += 4 {
			d.Plot(x, y, gfx.Encode(uint8(x), uint8(y), 0x1F))
		}
	}
}

func (shapesPage) step(*gfx.Display) {}
