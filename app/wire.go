package app

import (
	"math"

	"ili9163/gfx"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const tickSeconds = float32(1) / 60

type wireShape struct {
	vertices []gfx.Point3
	closed   bool
	color    gfx.Color
	step     int
}

// wireScene is a cube on a pyramid plinth standing on a ground grid.
var wireScene = buildWireScene()

func buildWireScene() []wireShape {
	var s []wireShape
	add := func(c gfx.Color, closed bool, step int, v ...gfx.Point3) {
		s = append(s, wireShape{vertices: v, closed: closed, color: c, step: step})
	}

	const h = 20
	// Cube faces above and below, then the four uprights.
	add(gfx.Cyan, true, 0, gfx.Point3{X: -h, Y: -2 * h, Z: -h}, gfx.Point3{X: h, Y: -2 * h, Z: -h}, gfx.Point3{X: h, Y: -2 * h, Z: h}, gfx.Point3{X: -h, Y: -2 * h, Z: h})
	add(gfx.Cyan, true, 0, gfx.Point3{X: -h, Y: 0, Z: -h}, gfx.Point3{X: h, Y: 0, Z: -h}, gfx.Point3{X: h, Y: 0, Z: h}, gfx.Point3{X: -h, Y: 0, Z: h})
	for _, c := range [][2]int16{{-h, -h}, {h, -h}, {h, h}, {-h, h}} {
		add(gfx.Cyan, false, 0, gfx.Point3{X: c[0], Y: -2 * h, Z: c[1]}, gfx.Point3{X: c[0], Y: 0, Z: c[1]})
	}

	// Pyramid flanks under the cube, dotted.
	apex := gfx.Point3{X: 0, Y: 2 * h, Z: 0}
	base := [][2]int16{{-2 * h, -2 * h}, {2 * h, -2 * h}, {2 * h, 2 * h}, {-2 * h, 2 * h}}
	for i := range base {
		a, b := base[i], base[(i+1)%len(base)]
		add(gfx.Yellow, true, 2,
			gfx.Point3{X: a[0], Y: 0, Z: a[1]},
			gfx.Point3{X: b[0], Y: 0, Z: b[1]},
			apex)
	}

	// Ground grid.
	const g, n = 80, 4
	for i := int16(-n); i <= n; i++ {
		x := i * g / n
		add(gfx.Green, false, 0, gfx.Point3{X: x, Y: 2 * h, Z: -g}, gfx.Point3{X: x, Y: 2 * h, Z: g})
		add(gfx.Green, false, 0, gfx.Point3{X: -g, Y: 2 * h, Z: x}, gfx.Point3{X: g, Y: 2 * h, Z: x})
	}
	return s
}

// wirePage orbits a tweened camera around wireScene. Each frame is erased by
// redrawing the previous one in the background colour, so no framebuffer is needed.
type wirePage struct {
	yaw    *gween.Tween
	height *gween.Tween
	radius *gween.Tween

	heightBack, radiusBack bool
	cam, prev              gfx.Camera
	drawn                  bool
}

func newWirePage() *wirePage {
	p := &wirePage{
		yaw:    gween.New(0, 2*math.Pi, 12, ease.Linear),
		height: gween.New(-60, -15, 5, ease.InOutSine),
		radius: gween.New(110, 170, 7, ease.InOutQuad),
	}
	p.cam = orbit(0, -60, 110)
	return p
}

func (*wirePage) name() string { return "wire3d" }

func (p *wirePage) draw(d *gfx.Display) {
	d.Clear(gfx.Black)
	renderScene(d, p.cam, false)
	d.PutString("wire3d", 2, 1, gfx.White, gfx.Black, 1)
	p.prev = p.cam
	p.drawn = true
}

func (p *wirePage) step(d *gfx.Display) {
	p.advance(tickSeconds)
	if p.drawn && p.cam == p.prev {
		return
	}
	renderScene(d, p.prev, true)
	renderScene(d, p.cam, false)
	d.PutString("wire3d", 2, 1, gfx.White, gfx.Black, 1)
	p.prev = p.cam
	p.drawn = true
}

// advance moves the tweens on by dt seconds; height and radius run back and forth.
func (p *wirePage) advance(dt float32) {
	yaw, done := p.yaw.Update(dt)
	if done {
		p.yaw.Reset()
	}
	height, done := p.height.Update(dt)
	if done {
		p.heightBack = !p.heightBack
		p.height = swing(height, -60, -15, 5, ease.InOutSine, p.heightBack)
	}
	radius, done := p.radius.Update(dt)
	if done {
		p.radiusBack = !p.radiusBack
		p.radius = swing(radius, 110, 170, 7, ease.InOutQuad, p.radiusBack)
	}
	p.cam = orbit(float64(yaw), float64(height), float64(radius))
}

// swing starts the next leg of a back-and-forth tween from its current value.
func swing(from, lo, hi, seconds float32, fn ease.TweenFunc, back bool) *gween.Tween {
	if back {
		return gween.New(from, lo, seconds, fn)
	}
	return gween.New(from, hi, seconds, fn)
}

// orbit places the camera at distance radius from the origin, looking at it along yaw.
func orbit(yaw, height, radius float64) gfx.Camera {
	sin, cos := math.Sincos(yaw)
	return gfx.Camera{X: -radius * sin, Y: height, Z: -radius * cos, Yaw: yaw}
}

func renderScene(d *gfx.Display, cam gfx.Camera, erase bool) {
	for _, s := range wireScene {
		c := s.color
		if erase {
			c = gfx.Black
		}
		switch {
		case s.closed && s.step > 0:
			d.DottedPolygon3D(s.vertices, cam, c, s.step)
		case s.closed:
			d.Polygon3D(s.vertices, cam, c)
		case s.step > 0:
			d.DottedPolyline3D(s.vertices, cam, c, s.step)
		default:
			d.Polyline3D(s.vertices, cam, c)
		}
	}
}
