package app

import "ili9163/gfx"

var (
	// Five-point star; the even-odd rule leaves its pentagon core empty.
	starFlat = []int16{
		32, 4, 40, 28, 62, 28, 44, 42, 52, 62,
		32, 48, 12, 62, 20, 42, 2, 28, 24, 28,
	}
	arrow = gfx.Points{
		{X: 70, Y: 6}, {X: 124, Y: 6}, {X: 124, Y: 60}, {X: 97, Y: 33}, {X: 70, Y: 60},
	}
	zigzag = gfx.Points{
		{X: 4, Y: 120}, {X: 20, Y: 104}, {X: 36, Y: 120}, {X: 52, Y: 104}, {X: 68, Y: 120},
	}
)

// polygonsPage shows concave fills, triangles and open/closed chains.
type polygonsPage struct{}

func (polygonsPage) name() string { return "polygons" }

func (polygonsPage) draw(d *gfx.Display) {
	d.Clear(gfx.Black)

	star, err := gfx.PointsFromFlat(starFlat)
	if err == nil {
		d.FilledPolygon(star, gfx.Yellow)
	}
	d.FilledDottedPolygon(arrow, gfx.Cyan, 2)

	d.FilledTriangle([3]gfx.Point{{X: 4, Y: 96}, {X: 30, Y: 68}, {X: 56, Y: 96}}, gfx.Red)
	d.FilledDottedTriangle([3]gfx.Point{{X: 64, Y: 68}, {X: 120, Y: 72}, {X: 80, Y: 98}}, gfx.Green, 3)

	hex := gfx.Points{
		{X: 96, Y: 102}, {X: 110, Y: 102}, {X: 118, Y: 114},
		{X: 110, Y: 126}, {X: 96, Y: 126}, {X: 88, Y: 114},
	}
	d.Polygon(hex, gfx.White)
	lo, hi := hex.Bounds()
	d.DottedRectangle(lo.X-2, lo.Y-2, hi.X+2, hi.Y+1, gfx.Magenta, 1)

	d.Polyline(zigzag, gfx.Blue)
	d.DottedPolyline(zigzag[1:], gfx.White, 2)
	d.DottedPolygon(gfx.Points{{X: 72, Y: 104}, {X: 84, Y: 104}, {X: 78, Y: 124}}, gfx.Yellow, 1)
}

func (polygonsPage) step(*gfx.Display) {}
