//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var hostKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
}

// poll forwards edge events for the mapped keys. It must run on the ebiten update goroutine.
func (k *hostKeyboard) poll() {
	for _, m := range hostKeys {
		if inpututil.IsKeyJustPressed(m.key) {
			k.emit(m.code, true)
		}
		if inpututil.IsKeyJustReleased(m.key) {
			k.emit(m.code, false)
		}
	}
}

func (k *hostKeyboard) emit(code KeyCode, press bool) {
	select {
	case k.ch <- KeyEvent{Code: code, Press: press}:
	default:
	}
}
