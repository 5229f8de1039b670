package hal

import (
	"image"
	"sync"
)

// PanelStats counts traffic seen by a Panel since its last hardware reset.
type PanelStats struct {
	Resets   int
	Commands int
	Params   int
	Pixels   int
	Unknown  int
}

// Panel emulates an ILI9163 controller behind a Bus. It decodes the command
// stream into a 128×160 memory and can snapshot the visible 128×128 area.
//
// Panel is safe for concurrent use: a window may snapshot it while the
// application draws.
type Panel struct {
	mu   sync.Mutex
	gram [GRAMRows * GRAMCols]uint16

	cmd     Command
	params  [16]byte
	nparams int
	writing bool
	hi      byte
	haveHi  bool

	colStart, colEnd   uint16
	pageStart, pageEnd uint16
	col, page          uint16

	mode        byte
	pixelFormat byte
	scrollTop   uint16
	scrollLen   uint16
	scrollStart uint16
	sleeping    bool
	displayOn   bool

	stats PanelStats
}

// NewPanel returns a panel in its power-on state: asleep, display off, memory cleared.
func NewPanel() *Panel {
	p := &Panel{}
	p.defaults()
	return p
}

func (p *Panel) defaults() {
	p.cmd = CmdNOP
	p.nparams = 0
	p.writing = false
	p.haveHi = false
	p.colStart, p.colEnd = 0, GRAMCols-1
	p.pageStart, p.pageEnd = 0, GRAMRows-1
	p.col, p.page = 0, 0
	p.mode = 0
	p.pixelFormat = 0x06
	p.scrollTop, p.scrollLen, p.scrollStart = 0, GRAMRows, 0
	p.sleeping = true
	p.displayOn = false
}

// Reset performs a hardware reset. Memory contents survive.
func (p *Panel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.defaults()
	p.stats = PanelStats{Resets: p.stats.Resets + 1}
}

func (p *Panel) WriteCommand(b byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stats.Commands++
	p.cmd = Command(b)
	p.nparams = 0
	p.writing = false
	p.haveHi = false

	switch p.cmd {
	case CmdSoftReset:
		p.defaults()
	case CmdEnterSleepMode:
		p.sleeping = true
	case CmdExitSleepMode:
		p.sleeping = false
	case CmdSetDisplayOn:
		p.displayOn = true
	case CmdSetDisplayOff:
		p.displayOn = false
	case CmdEnterNormalMode:
		p.scrollTop, p.scrollLen, p.scrollStart = 0, GRAMRows, 0
	case CmdWriteMemoryStart:
		p.col, p.page = p.colStart, p.pageStart
		p.writing = true
	case CmdWriteMemoryContinue:
		p.writing = true
	default:
		if !p.cmd.Known() {
			p.stats.Unknown++
		}
	}
}

func (p *Panel) WriteData(b byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writing {
		if !p.haveHi {
			p.hi, p.haveHi = b, true
			return
		}
		p.haveHi = false
		p.store(uint16(p.hi)<<8 | uint16(b))
		return
	}

	p.stats.Params++
	if p.nparams < len(p.params) {
		p.params[p.nparams] = b
		p.nparams++
	}
	p.apply()
}

func (p *Panel) word(i int) uint16 {
	return uint16(p.params[i])<<8 | uint16(p.params[i+1])
}

// apply acts on a command once its last parameter has arrived.
func (p *Panel) apply() {
	switch p.cmd {
	case CmdSetColumnAddress:
		if p.nparams == 4 {
			p.colStart, p.colEnd = p.word(0), p.word(2)
		}
	case CmdSetPageAddress:
		if p.nparams == 4 {
			p.pageStart, p.pageEnd = p.word(0), p.word(2)
		}
	case CmdSetAddressMode:
		if p.nparams == 1 {
			p.mode = p.params[0]
		}
	case CmdSetPixelFormat:
		if p.nparams == 1 {
			p.pixelFormat = p.params[0]
		}
	case CmdSetScrollArea:
		if p.nparams == 6 {
			p.scrollTop, p.scrollLen = p.word(0), p.word(2)
		}
	case CmdSetScrollStart:
		if p.nparams == 2 {
			p.scrollStart = p.word(0)
		}
	}
}

// store writes one pixel at the write pointer and advances it through the window.
func (p *Panel) store(v uint16) {
	a, b := int(p.col), int(p.page)
	if p.mode&byte(modeMV) != 0 {
		a, b = b, a
	}
	if p.mode&byte(modeMX) != 0 {
		a = GRAMCols - 1 - a
	}
	if p.mode&byte(modeMY) != 0 {
		b = GRAMRows - 1 - b
	}
	if a >= 0 && a < GRAMCols && b >= 0 && b < GRAMRows {
		p.gram[b*GRAMCols+a] = v
		p.stats.Pixels++
	}

	p.col++
	if p.col > p.colEnd {
		p.col = p.colStart
		p.page++
		if p.page > p.pageEnd {
			p.page = p.pageStart
		}
	}
}

// memRow returns the memory row shown on physical screen row r.
func (p *Panel) memRow(r int) int {
	top, n := int(p.scrollTop), int(p.scrollLen)
	if n <= 0 || r < top || r >= top+n {
		return r
	}
	off := int(p.scrollStart) - top
	return top + ((r-top+off)%n+n)%n
}

// Pixel returns the color shown at physical screen position (x, y), ignoring
// sleep and display-off state.
func (p *Panel) Pixel(x, y int) uint16 {
	if x < 0 || y < 0 || x >= ScreenSize || y >= ScreenSize {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gram[p.memRow(y)*GRAMCols+x]
}

// On reports whether the panel is awake with the display switched on.
func (p *Panel) On() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.displayOn && !p.sleeping
}

// AddressMode returns the last address mode byte written.
func (p *Panel) AddressMode() byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

func (p *Panel) Stats() PanelStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// Snapshot copies the visible area into dst, which must be at least 128×128.
// A panel that is asleep or switched off shows black.
func (p *Panel) Snapshot(dst *image.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()

	on := p.displayOn && !p.sleeping
	b := dst.Bounds()
	for y := 0; y < ScreenSize && y < b.Dy(); y++ {
		row := p.memRow(y) * GRAMCols
		o := dst.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < ScreenSize && x < b.Dx(); x++ {
			var r, g, bl uint8
			if on {
				r, g, bl = rgb888From565(p.gram[row+x])
			}
			dst.Pix[o+0] = r
			dst.Pix[o+1] = g
			dst.Pix[o+2] = bl
			dst.Pix[o+3] = 0xFF
			o += 4
		}
	}
}

// Image returns a fresh snapshot of the visible area.
func (p *Panel) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ScreenSize, ScreenSize))
	p.Snapshot(img)
	return img
}
