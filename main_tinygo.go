//go:build tinygo

package main

import (
	"ili9163/app"
	"ili9163/hal"
)

func main() {
	app.Run(hal.New(), app.Config{Orientation: hal.Orientation0})
}
