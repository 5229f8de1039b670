package gfx

import "slices"

// Polyline draws lines between consecutive points. The chain is left open.
func (d *Display) Polyline(points Points, c Color) { d.polyline(points, c, 0) }

// DottedPolyline is Polyline with dotted segments. Each segment restarts the pattern.
func (d *Display) DottedPolyline(points Points, c Color, step int) { d.polyline(points, c, step) }

func (d *Display) polyline(points Points, c Color, step int) {
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		d.line(int(a.X), int(a.Y), int(b.X), int(b.Y), c, step)
	}
}

// Polygon outlines a closed chain. Fewer than three vertices draw nothing.
func (d *Display) Polygon(points Points, c Color) { d.polygon(points, c, 0) }

// DottedPolygon outlines a closed chain with dotted edges.
func (d *Display) DottedPolygon(points Points, c Color, step int) { d.polygon(points, c, step) }

func (d *Display) polygon(points Points, c Color, step int) {
	if len(points) < 3 {
		return
	}
	d.polyline(points, c, step)
	a, b := points[len(points)-1], points[0]
	d.line(int(a.X), int(a.Y), int(b.X), int(b.Y), c, step)
}

// FilledPolygon fills a closed, possibly concave, chain with the even-odd rule and
// then draws its outline.
func (d *Display) FilledPolygon(points Points, c Color) { d.filledPolygon(points, c, 0) }

// FilledDottedPolygon fills with vertical stripes step pixels wide and a dotted outline.
func (d *Display) FilledDottedPolygon(points Points, c Color, step int) {
	d.filledPolygon(points, c, step)
}

// FilledTriangle fills the triangle through three vertices.
func (d *Display) FilledTriangle(points [3]Point, c Color) {
	d.filledPolygon(points[:], c, 0)
}

// FilledDottedTriangle fills the triangle with stripes and a dotted outline.
func (d *Display) FilledDottedTriangle(points [3]Point, c Color, step int) {
	d.filledPolygon(points[:], c, step)
}

// nodeBufSize covers the crossings of any polygon with up to this many edges without
// touching the heap.
const nodeBufSize = 32

// filledPolygon scans every row of the vertical extent. An edge crosses row y when
// y lies in [top, bottom) of the edge, so a vertex shared by two edges is counted once
// and horizontal edges never count. Crossings are sorted and filled in pairs.
func (d *Display) filledPolygon(points Points, c Color, step int) {
	n := len(points)
	if n < 3 {
		return
	}

	lo, hi := points.Bounds()
	top := max(int(lo.Y), 0)
	bottom := min(int(hi.Y), Height-1)

	var buf [nodeBufSize]int
	nodes := buf[:0]
	for y := top; y <= bottom; y++ {
		nodes = nodes[:0]
		j := n - 1
		for i := 0; i < n; i++ {
			a, b := points[j], points[i]
			j = i
			ya, yb := int(a.Y), int(b.Y)
			if ya == yb {
				continue
			}
			if (ya <= y && y < yb) || (yb <= y && y < ya) {
				nodes = append(nodes, crossingX(a, b, y))
			}
		}
		slices.Sort(nodes)
		for k := 0; k+1 < len(nodes); k += 2 {
			d.dottedSpan(nodes[k], nodes[k+1], y, c, step)
		}
	}

	d.polygon(points, c, step)
}

// crossingX returns the x where edge a-b crosses row y, rounded to the nearest pixel.
func crossingX(a, b Point, y int) int {
	num := (y - int(a.Y)) * (int(b.X) - int(a.X))
	den := int(b.Y) - int(a.Y)
	if den < 0 {
		num, den = -num, -den
	}
	return int(a.X) + floorDiv(2*num+den, 2*den)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
