//go:build !(tinygo && bootdebug)

package app

import (
	"ili9163/gfx"
	"ili9163/hal"
)

func bootStep(*gfx.Display, string) {}

func bootDiagStart(hal.HAL) {}
