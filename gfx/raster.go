package gfx

// Plot writes one pixel. Coordinates outside the screen are dropped silently.
func (d *Display) Plot(x, y int16, c Color) { d.plot(int(x), int(y), c) }

func (d *Display) plot(x, y int, c Color) {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return
	}
	d.sink.SetPixel(int16(x), int16(y), uint16(c))
}

// span writes pixels x0..x1 inclusive on row y.
func (d *Display) span(x0, x1, y int, c Color) {
	if y < 0 || y >= Height {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= Width {
		x1 = Width - 1
	}
	if x0 > x1 {
		return
	}
	if d.spans != nil {
		d.spans.FillSpan(int16(x0), int16(x1), int16(y), uint16(c))
		return
	}
	for x := x0; x <= x1; x++ {
		d.sink.SetPixel(int16(x), int16(y), uint16(c))
	}
}

// dottedSpan is span with every other run of step pixels left out. Runs are aligned
// to screen column 0 so stacked spans of a fill form straight stripes.
func (d *Display) dottedSpan(x0, x1, y int, c Color, step int) {
	if step <= 0 {
		d.span(x0, x1, y, c)
		return
	}
	if y < 0 || y >= Height {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= Width {
		x1 = Width - 1
	}
	period := 2 * step
	for x := x0; x <= x1; x++ {
		if x%period < step {
			d.sink.SetPixel(int16(x), int16(y), uint16(c))
		}
	}
}

// Line draws a solid line between both endpoints inclusive.
//
// The pixel set does not depend on which endpoint comes first.
func (d *Display) Line(x0, y0, x1, y1 int16, c Color) {
	d.line(int(x0), int(y0), int(x1), int(y1), c, 0)
}

// DottedLine draws the same path as Line, lighting runs of step pixels separated by
// gaps of step pixels. The pattern starts at (x0, y0). A step <= 0 draws a solid line.
func (d *Display) DottedLine(x0, y0, x1, y1 int16, c Color, step int) {
	d.line(int(x0), int(y0), int(x1), int(y1), c, step)
}

// line walks the segment with integer Bresenham steps. The walk always runs from the
// left (then upper) endpoint so both argument orders give the same pixels; the dash
// index is still counted from the caller's first endpoint.
func (d *Display) line(x0, y0, x1, y1 int, c Color, step int) {
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) ||
		(x0 >= Width && x1 >= Width) || (y0 >= Height && y1 >= Height) {
		return
	}

	reversed := false
	if x0 > x1 || (x0 == x1 && y0 > y1) {
		x0, y0, x1, y1 = x1, y1, x0, y0
		reversed = true
	}

	dx := x1 - x0
	dy := y1 - y0
	sy := 1
	if dy < 0 {
		dy = -dy
		sy = -1
	}
	n := dx
	if dy > n {
		n = dy
	}
	period := 2 * step

	lit := func(i int) bool {
		if step <= 0 {
			return true
		}
		if reversed {
			i = n - i
		}
		return i%period < step
	}

	if dx >= dy {
		err := 2*dy - dx
		y := y0
		for i := 0; i <= dx; i++ {
			if lit(i) {
				d.plot(x0+i, y, c)
			}
			if err > 0 {
				y += sy
				err -= 2 * dx
			}
			err += 2 * dy
		}
		return
	}

	err := 2*dx - dy
	x := x0
	for i := 0; i <= dy; i++ {
		if lit(i) {
			d.plot(x, y0+i*sy, c)
		}
		if err > 0 {
			x++
			err -= 2 * dy
		}
		err += 2 * dx
	}
}

// Rectangle outlines the box with opposite corners (x0, y0) and (x1, y1).
func (d *Display) Rectangle(x0, y0, x1, y1 int16, c Color) {
	d.rectangle(int(x0), int(y0), int(x1), int(y1), c, 0)
}

// DottedRectangle outlines the box with dotted edges.
func (d *Display) DottedRectangle(x0, y0, x1, y1 int16, c Color, step int) {
	d.rectangle(int(x0), int(y0), int(x1), int(y1), c, step)
}

func (d *Display) rectangle(x0, y0, x1, y1 int, c Color, step int) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	d.line(x0, y0, x1, y0, c, step)
	d.line(x1, y0, x1, y1, c, step)
	d.line(x1, y1, x0, y1, c, step)
	d.line(x0, y1, x0, y0, c, step)
}

// FilledRectangle fills the box row by row, top to bottom.
func (d *Display) FilledRectangle(x0, y0, x1, y1 int16, c Color) {
	d.filledRectangle(int(x0), int(y0), int(x1), int(y1), c, 0)
}

// FilledDottedRectangle fills the box with vertical stripes step pixels wide.
func (d *Display) FilledDottedRectangle(x0, y0, x1, y1 int16, c Color, step int) {
	d.filledRectangle(int(x0), int(y0), int(x1), int(y1), c, step)
}

func (d *Display) filledRectangle(x0, y0, x1, y1 int, c Color, step int) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= Height {
		y1 = Height - 1
	}
	for y := y0; y <= y1; y++ {
		d.dottedSpan(x0, x1, y, c, step)
	}
}

// Circle outlines a circle with the midpoint algorithm. Radius 0 plots the centre;
// a negative radius draws nothing.
func (d *Display) Circle(xCentre, yCentre, radius int16, c Color) {
	d.circle(int(xCentre), int(yCentre), int(radius), c, 0)
}

// DottedCircle outlines a circle, lighting runs of step midpoint steps in every octant.
func (d *Display) DottedCircle(xCentre, yCentre, radius int16, c Color, step int) {
	d.circle(int(xCentre), int(yCentre), int(radius), c, step)
}

func (d *Display) circle(xc, yc, r int, c Color, step int) {
	if r < 0 {
		return
	}
	if r == 0 {
		d.plot(xc, yc, c)
		return
	}

	x, y := r, 0
	e := 1 - r
	for i := 0; x >= y; i++ {
		if step <= 0 || i%(2*step) < step {
			d.plot4(xc, yc, x, y, c)
			if x != y {
				d.plot4(xc, yc, y, x, c)
			}
		}
		y++
		if e <= 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2*(y-x) + 1
		}
	}
}

// plot4 writes the mirror images of (x, y) in all four quadrants without repeats.
func (d *Display) plot4(xc, yc, x, y int, c Color) {
	d.plot(xc+x, yc+y, c)
	if x != 0 {
		d.plot(xc-x, yc+y, c)
	}
	if y != 0 {
		d.plot(xc+x, yc-y, c)
		if x != 0 {
			d.plot(xc-x, yc-y, c)
		}
	}
}

// FilledCircle fills a disc with one horizontal span per row. The spans join the
// mirrored points of the midpoint outline, so Circle at the same radius lies inside.
func (d *Display) FilledCircle(xCentre, yCentre, radius int16, c Color) {
	d.filledCircle(int(xCentre), int(yCentre), int(radius), c, 0)
}

// FilledDottedCircle fills a disc with vertical stripes step pixels wide.
func (d *Display) FilledDottedCircle(xCentre, yCentre, radius int16, c Color, step int) {
	d.filledCircle(int(xCentre), int(yCentre), int(radius), c, step)
}

func (d *Display) filledCircle(xc, yc, r int, c Color, step int) {
	if r < 0 {
		return
	}
	if yc+r < 0 || yc-r >= Height {
		return
	}

	// Widest half-width seen on each screen row, -1 for rows the disc misses.
	var half [Height]int
	for i := range half {
		half[i] = -1
	}
	widen := func(dy, w int) {
		for _, y := range [2]int{yc - dy, yc + dy} {
			if y >= 0 && y < Height && w > half[y] {
				half[y] = w
			}
		}
	}

	x, y := r, 0
	e := 1 - r
	for x >= y {
		widen(y, x)
		widen(x, y)
		y++
		if e <= 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2*(y-x) + 1
		}
	}

	for row, w := range half {
		if w >= 0 {
			d.dottedSpan(xc-w, xc+w, row, c, step)
		}
	}
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
