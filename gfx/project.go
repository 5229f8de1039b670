package gfx

import "math"

// Perspective constants: the focal scale in pixels and the screen centre.
const (
	ProjectionScale = 64
	CenterX         = Width / 2
	CenterY         = Height / 2
)

// Camera is a viewer position with a heading about the vertical (Y) axis.
//
// Yaw 0 looks along +Z and a positive yaw turns the view from +Z toward +X. World
// points are rotated by -Yaw into camera space. There is no pitch or roll.
type Camera struct {
	X, Y, Z float64
	Yaw     float64
}

// Projected is a vertex in screen space. Visible is false when the vertex lies on or
// behind the camera plane; its coordinates are then meaningless.
type Projected struct {
	Point
	Visible bool
}

// Project appends the screen positions of vertices to dst and returns the result.
func Project(dst []Projected, vertices []Point3, cam Camera) []Projected {
	sin, cos := math.Sincos(cam.Yaw)
	for _, v := range vertices {
		dst = append(dst, project(v, cam, sin, cos))
	}
	return dst
}

// ProjectPoint returns the screen position of one vertex.
func ProjectPoint(v Point3, cam Camera) Projected {
	sin, cos := math.Sincos(cam.Yaw)
	return project(v, cam, sin, cos)
}

func project(v Point3, cam Camera, sin, cos float64) Projected {
	rx := float64(v.X) - cam.X
	ry := float64(v.Y) - cam.Y
	rz := float64(v.Z) - cam.Z

	x := rx*cos - rz*sin
	z := rx*sin + rz*cos
	if !(z > 0) {
		return Projected{}
	}
	return Projected{
		Point: Point{
			X: saturate16(ProjectionScale*x/z + CenterX),
			Y: saturate16(ProjectionScale*ry/z + CenterY),
		},
		Visible: true,
	}
}

func saturate16(v float64) int16 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	}
	return int16(math.Round(v))
}

// Polygon3D projects a closed vertex chain and outlines it. Edges with an endpoint
// on or behind the camera plane are skipped. Fewer than three vertices draw nothing.
func (d *Display) Polygon3D(vertices []Point3, cam Camera, c Color) {
	d.wire3D(vertices, cam, c, 0, true)
}

// DottedPolygon3D is Polygon3D with dotted edges.
func (d *Display) DottedPolygon3D(vertices []Point3, cam Camera, c Color, step int) {
	d.wire3D(vertices, cam, c, step, true)
}

// Polyline3D projects an open vertex chain and draws its visible edges.
func (d *Display) Polyline3D(vertices []Point3, cam Camera, c Color) {
	d.wire3D(vertices, cam, c, 0, false)
}

// DottedPolyline3D is Polyline3D with dotted edges.
func (d *Display) DottedPolyline3D(vertices []Point3, cam Camera, c Color, step int) {
	d.wire3D(vertices, cam, c, step, false)
}

func (d *Display) wire3D(vertices []Point3, cam Camera, c Color, step int, closed bool) {
	n := len(vertices)
	if n < 2 || (closed && n < 3) {
		return
	}
	sin, cos := math.Sincos(cam.Yaw)
	first := project(vertices[0], cam, sin, cos)
	prev := first
	for i := 1; i < n; i++ {
		cur := project(vertices[i], cam, sin, cos)
		d.edge(prev, cur, c, step)
		prev = cur
	}
	if closed {
		d.edge(prev, first, c, step)
	}
}

func (d *Display) edge(a, b Projected, c Color, step int) {
	if !a.Visible || !b.Visible {
		return
	}
	d.line(int(a.X), int(a.Y), int(b.X), int(b.Y), c, step)
}
