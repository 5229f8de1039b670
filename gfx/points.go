package gfx

import "errors"

var (
	ErrOddPointBuffer = errors.New("gfx: flat 2D point buffer has odd length")
	ErrPoint3Buffer   = errors.New("gfx: flat 3D point buffer length is not a multiple of 3")
)

// Point is a pixel coordinate. Values off screen are allowed; they are clipped at Plot.
type Point struct {
	X, Y int16
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int16) Point { return Point{X: x, Y: y} }

// Points is an ordered vertex chain.
type Points []Point

// PointsFromFlat builds a vertex chain from interleaved x, y pairs.
func PointsFromFlat(flat []int16) (Points, error) {
	if len(flat)%2 != 0 {
		return nil, ErrOddPointBuffer
	}
	pts := make(Points, len(flat)/2)
	for i := range pts {
		pts[i] = Point{X: flat[2*i], Y: flat[2*i+1]}
	}
	return pts, nil
}

// Bounds returns the smallest box holding every vertex. It is zero for an empty chain.
func (p Points) Bounds() (lo, hi Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}
	lo, hi = p[0], p[0]
	for _, v := range p[1:] {
		lo.X = min(lo.X, v.X)
		lo.Y = min(lo.Y, v.Y)
		hi.X = max(hi.X, v.X)
		hi.Y = max(hi.Y, v.Y)
	}
	return lo, hi
}

// Point3 is a world-space vertex.
type Point3 struct {
	X, Y, Z int16
}

// Points3FromFlat builds a 3D vertex chain from interleaved x, y, z triples.
func Points3FromFlat(flat []int16) ([]Point3, error) {
	if len(flat)%3 != 0 {
		return nil, ErrPoint3Buffer
	}
	pts := make([]Point3, len(flat)/3)
	for i := range pts {
		pts[i] = Point3{X: flat[3*i], Y: flat[3*i+1], Z: flat[3*i+2]}
	}
	return pts, nil
}
