//go:build !tinygo

// Command lcdsnap renders demo pages through the emulated panel and writes them as PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ili9163/app"
	"ili9163/hal"
)

func main() {
	var (
		page   = flag.String("page", "shapes", "Page to render, or \"all\" ("+strings.Join(app.PageNames(), "|")+").")
		orient = flag.String("orientation", "ribbon-top", "0..3 or ribbon-top|ribbon-left|ribbon-right|ribbon-bottom.")
		out    = flag.String("out", "lcd.png", "Output PNG; with -page all, the page name is added before the extension.")
		scale  = flag.Int("scale", 4, "Pixel magnification.")
		ticks  = flag.Uint64("ticks", 2, "Ticks to run before the snapshot (the first tick draws the page).")
	)
	flag.Parse()

	o, err := hal.ParseOrientation(*orient)
	if err != nil {
		fatalf("%v", err)
	}
	if *ticks == 0 {
		*ticks = 1
	}

	names := []string{*page}
	if *page == "all" {
		names = app.PageNames()
	}
	for _, name := range names {
		idx, err := app.PageIndex(name)
		if err != nil {
			fatalf("%v", err)
		}
		path := *out
		if *page == "all" {
			ext := filepath.Ext(path)
			path = strings.TrimSuffix(path, ext) + "-" + name + ext
		}
		cfg := hal.HeadlessConfig{
			Enabled:  true,
			Hz:       1000,
			Ticks:    *ticks,
			Snapshot: path,
			Scale:    *scale,
		}
		err = hal.RunHeadless(context.Background(), func(h hal.HAL) (func() error, error) {
			return app.New(h, app.Config{Orientation: o, Page: idx})
		}, cfg)
		if err != nil {
			fatalf("%s: %v", name, err)
		}
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
