//go:build !tinygo && cgo

package hal

import (
	"fmt"
	"image"
	"image/color"

	"ili9163/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const statusHeight = 16

// RunWindow opens a desktop window showing the emulated panel magnified by scale,
// with a status line underneath, and forwards keyboard input.
// It blocks until the window closes.
func RunWindow(newApp AppFunc, scale int) error {
	if scale <= 0 {
		scale = 4
	}
	h := newHostHAL()
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step, scale: scale}
	ebiten.SetWindowTitle("ili9163 (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(ScreenSize*scale, ScreenSize*scale+statusHeight)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	step  func() error
	scale int

	img    *image.RGBA
	lcdImg *ebiten.Image
	ticks  uint64
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.ticks++
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

var statusColor = color.RGBA{0x9A, 0xA0, 0xA6, 0xFF}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, ScreenSize, ScreenSize))
		g.lcdImg = ebiten.NewImage(ScreenSize, ScreenSize)
	}
	g.h.panel.Snapshot(g.img)
	g.lcdImg.WritePixels(g.img.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.lcdImg, op)

	st := g.h.panel.Stats()
	mode := "off"
	if g.h.panel.On() {
		mode = g.h.lcd.Orientation().String()
	}
	line := fmt.Sprintf("%s  cmds %d  px %d", mode, st.Commands, st.Pixels)
	face := basicfont.Face7x13
	text.Draw(screen, line, face, 4, ScreenSize*g.scale+statusHeight-4, statusColor)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize * g.scale, ScreenSize*g.scale + statusHeight
}
