//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// AppFunc builds an application on h and returns its per-tick step function.
type AppFunc func(h HAL) (func() error, error)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Snapshot, when set, names a PNG file written with the panel contents on exit.
	Snapshot string
	Scale    int
}

// RunHeadless runs the application against the emulated panel without opening a window.
func RunHeadless(ctx context.Context, newApp AppFunc, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHostHAL()
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	runErr := func() error {
		var tick uint64
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
				if step != nil {
					if err := step(); err != nil {
						return err
					}
				}
				tick++
				if cfg.Ticks > 0 && tick >= cfg.Ticks {
					return nil
				}
			}
		}
	}()

	if cfg.Snapshot != "" {
		if err := writeSnapshotFile(cfg.Snapshot, h.panel, cfg.Scale); err != nil {
			return err
		}
		h.logger.WriteLineString("headless: snapshot written to " + cfg.Snapshot)
	}
	return runErr
}

func writeSnapshotFile(path string, p *Panel, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := WritePNG(f, p, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
