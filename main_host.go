//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"ili9163/app"
	"ili9163/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var (
		orient  = flag.String("orientation", "ribbon-top", "0..3 or ribbon-top|ribbon-left|ribbon-right|ribbon-bottom.")
		page    = flag.String("page", "shapes", "First page shown.")
		console = flag.Bool("console", false, "Start with the log console on screen.")
		scale   = flag.Int("scale", 4, "Window magnification.")
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write the panel to this PNG when headless mode stops.")
	flag.Parse()
	cfg.Scale = *scale

	o, err := hal.ParseOrientation(*orient)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	idx, err := app.PageIndex(*page)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, app.Config{Orientation: o, Page: idx, Console: *console})
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, *scale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
