package app

import (
	"ili9163/fonts/font5x8"
	"ili9163/gfx"
	"ili9163/hal"

	"tinygo.org/x/tinyterm"
)

const (
	consoleCols  = gfx.Width / gfx.CellWidth
	consoleLines = gfx.Height / gfx.CellHeight
)

// console keeps the most recent log lines and, while shown, renders them on the
// LCD through a tinyterm terminal using the panel's hardware scroll.
type console struct {
	d     *gfx.Display
	term  *tinyterm.Terminal
	lines []string
	on    bool
}

func newConsole(d *gfx.Display) *console {
	return &console{d: d, lines: make([]string, 0, consoleLines)}
}

func (c *console) visible() bool { return c.on }

func (c *console) show() {
	c.d.Clear(gfx.Black)
	c.term = tinyterm.NewTerminal(c.d)
	c.term.Configure(&tinyterm.Config{
		Font:       font5x8.Tiny,
		FontHeight: gfx.CellHeight,
		FontOffset: gfx.CellHeight - 1,
	})
	c.on = true
	for _, l := range c.lines {
		c.put(l)
	}
}

func (c *console) hide() {
	c.on = false
	c.term = nil
	c.d.SetScroll(0)
}

func (c *console) WriteLineString(s string) {
	for {
		chunk, rest := takeRunes(s, consoleCols)
		c.push(chunk)
		if rest == "" {
			return
		}
		s = rest
	}
}

func (c *console) WriteLineBytes(b []byte) { c.WriteLineString(string(b)) }

func (c *console) push(line string) {
	if len(c.lines) == consoleLines {
		copy(c.lines, c.lines[1:])
		c.lines = c.lines[:consoleLines-1]
	}
	c.lines = append(c.lines, line)
	if c.on {
		c.put(line)
	}
}

func (c *console) put(line string) {
	c.term.Write([]byte(line))
	c.term.Write([]byte("\r\n"))
}

// teeLogger copies every line to each non-nil logger.
type teeLogger []hal.Logger

func (t teeLogger) WriteLineString(s string) {
	for _, l := range t {
		if l != nil {
			l.WriteLineString(s)
		}
	}
}

func (t teeLogger) WriteLineBytes(b []byte) {
	for _, l := range t {
		if l != nil {
			l.WriteLineBytes(b)
		}
	}
}
