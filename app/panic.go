package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"ili9163/fonts/font5x8"
	"ili9163/gfx"
	"ili9163/hal"

	"tinygo.org/x/tinyfont"
)

// guard wraps step so a panic inside a page is logged with its stack, painted
// on the LCD and returned as an error instead of unwinding the runner.
func (a *application) guard(step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			a.panicScreen(v, stack)
			err = fmt.Errorf("app: panic: %v", v)
		}()
		return step()
	}
}

func (a *application) panicScreen(v any, stack []byte) {
	lines := []string{
		"Panic:",
		fmt.Sprintf("%v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	l := hal.LoggerOf(a.h)
	for _, line := range lines {
		l.WriteLineString(line)
	}

	if a.console.visible() {
		a.console.hide()
	}
	a.d.Clear(gfx.White)
	fg := gfx.Black.RGBA()

	y := int16(gfx.CellHeight - 1)
	for _, line := range lines {
		for len(line) > 0 {
			if y >= gfx.Height {
				return
			}
			chunk, rest := takeRunes(line, consoleCols)
			tinyfont.WriteLine(a.d, font5x8.Font, 0, y, chunk, fg)
			y += gfx.CellHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
