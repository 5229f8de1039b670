//go:build !tinygo && !cgo

package hal

import "errors"

func RunWindow(_ AppFunc, _ int) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
