package ppu

import (
	"github.com/kaelbran/nescore/pkg/logger"
	"github.com/kaelbran/nescore/pkg/memory"
)

// PPU represents the Picture Processing Unit
type PPU struct {
	// Registers
	PPUCTRL   uint8 // $2000
	PPUMASK   uint8 // $2001
	PPUSTATUS uint8 // $2002
	OAMADDR   uint8 // $2003

	// Internal Loopy registers
	v     uint16 // current VRAM address
	t     uint16 // temporary VRAM address / top-left onscreen tile
	x     uint8  // fine X scroll
	xTemp uint8  // fine X scroll latched until the next visible-scanline boundary
	w     uint8  // write toggle (first/second write)

	// VRAM
	VRAM [0x4000]uint8

	// OAM (Object Attribute Memory)
	OAM [256]uint8

	// Frame buffer (256x240, 0xAARRGGBB)
	FrameBuffer [256 * 240]uint32

	// Timing
	Cycle         int
	Scanline      int
	Frame         uint64
	FrameComplete bool
	oddFrame      bool

	// suppressNMIThisVBlank is set when $2002 is read on the exact cycle
	// vblank is set, racing the hardware flag before NMIRequested fires.
	suppressNMIThisVBlank bool

	// NMI
	NMIRequested bool

	// Rendering
	PaletteManager *PaletteManager
	currentSprites []SpriteInfo
	bgCache        tileCache

	// PPU read buffer for $2007 reads
	readBuffer uint8

	Gate *logger.Gate

	// Memory interface (unused by the core pipeline; kept for bus symmetry
	// with the rest of the emulator's components)
	Memory *memory.Memory

	// Cartridge interface
	Cartridge interface {
		ReadCHR(addr uint16) uint8
		WriteCHR(addr uint16, value uint8)
		Step() // called once per visible scanline, for mapper scanline counters
		IsIRQPending() bool
		ClearIRQ()
		GetMirroring() int
	}
}

// PPUCTRL flags
const (
	PPUCTRLNameTable   = 0x03 // Base nametable address
	PPUCTRLIncrement   = 0x04 // VRAM address increment
	PPUCTRLSpriteTable = 0x08 // Sprite pattern table address
	PPUCTRLBGTable     = 0x10 // Background pattern table address
	PPUCTRLSpriteSize  = 0x20 // Sprite size
	PPUCTRLMasterSlave = 0x40 // PPU master/slave select
	PPUCTRLNMIEnable   = 0x80 // Generate NMI at VBlank
)

// PPUMASK flags
const (
	PPUMASKGreyscale      = 0x01 // Greyscale
	PPUMASKBGLeft         = 0x02 // Show background in leftmost 8 pixels
	PPUMASKSpriteLeft     = 0x04 // Show sprites in leftmost 8 pixels
	PPUMASKBGShow         = 0x08 // Show background
	PPUMASKSpriteShow     = 0x10 // Show sprites
	PPUMASKRedEmphasize   = 0x20 // Emphasize red
	PPUMASKGreenEmphasize = 0x40 // Emphasize green
	PPUMASKBlueEmphasize  = 0x80 // Emphasize blue
)

// PPUSTATUS flags
const (
	PPUSTATUSOverflow   = 0x20 // Sprite overflow
	PPUSTATUSSprite0Hit = 0x40 // Sprite 0 hit
	PPUSTATUSVBlank     = 0x80 // VBlank flag
)

// New creates a new PPU instance
func New(mem *memory.Memory) *PPU {
	return &PPU{
		Memory:         mem,
		PaletteManager: NewPaletteManager(),
		Gate:           logger.NewGate(),
	}
}

// SetLogGate installs the diagnostic Gate shared across the emulator core.
func (p *PPU) SetLogGate(gate *logger.Gate) {
	p.Gate = gate
}

// Reset resets the PPU to initial state
func (p *PPU) Reset() {
	p.PPUCTRL = 0
	p.PPUMASK = 0
	p.PPUSTATUS = 0
	p.OAMADDR = 0
	p.v = 0
	p.t = 0
	p.x = 0
	p.w = 0
	p.Cycle = 0
	p.Scanline = 0
	p.Frame = 0
	p.oddFrame = false
	p.FrameComplete = false
	p.bgCache = tileCache{}
}

// SetCartridge sets the cartridge reference
func (p *PPU) SetCartridge(cart interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, value uint8)
	Step()
	IsIRQPending() bool
	ClearIRQ()
	GetMirroring() int
}) {
	p.Cartridge = cart
}

func (p *PPU) renderingEnabled() bool {
	return p.PPUMASK&(PPUMASKBGShow|PPUMASKSpriteShow) != 0
}

// Step executes one PPU cycle (341 cycles/scanline, 262 scanlines/frame,
// with scanline -1 as the pre-render line).
func (p *PPU) Step() {
	p.PaletteManager.SetEmphasis(p.PPUMASK & 0xE0)

	if p.Scanline >= 0 && p.Scanline < 240 {
		p.renderPixel()
	}

	if p.Scanline == -1 && p.Cycle == 1 {
		p.PPUSTATUS &^= PPUSTATUSVBlank | PPUSTATUSSprite0Hit | PPUSTATUSOverflow
	}

	if p.Scanline == -1 && p.Cycle == 304 && p.renderingEnabled() {
		// Copy vertical scroll bits (coarse Y, fine Y, nametable Y) from t to v
		p.v = (p.v & 0x041F) | (p.t & 0x7BE0)
	}

	if p.Scanline >= 0 && p.Scanline < 240 && p.Cycle == 257 && p.renderingEnabled() {
		// Copy horizontal scroll bits (coarse X, nametable X) from t to v
		p.v = (p.v & 0x7BE0) | (p.t & 0x041F)
	}

	if p.Scanline >= 0 && p.Scanline < 240 && p.Cycle == 0 {
		p.x = p.xTemp
		p.currentSprites = p.fetchSpriteData(p.Scanline)
	}

	p.Cycle++

	// Odd-frame skip: the pre-render line's last cycle (340) is skipped on
	// odd frames while rendering is enabled, so cycle 339 is followed by
	// cycle 0 of scanline 0.
	if p.Scanline == -1 && p.Cycle == 340 && p.oddFrame && p.renderingEnabled() {
		p.Cycle = 341
	}

	if p.Cycle >= 341 {
		p.Cycle = 0
		p.Scanline++

		if p.Cartridge != nil && p.Scanline >= 0 && p.Scanline < 240 {
			p.Cartridge.Step()
		}

		if p.Scanline == 241 {
			p.PPUSTATUS |= PPUSTATUSVBlank
			if p.PPUCTRL&PPUCTRLNMIEnable != 0 && !p.suppressNMIThisVBlank {
				p.NMIRequested = true
			}
			p.suppressNMIThisVBlank = false
		}

		if p.Scanline >= 261 {
			p.Scanline = -1
			p.FrameComplete = true
			p.Frame++
			p.oddFrame = !p.oddFrame
		}
	}
}

// ReadRegister reads from PPU register
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr {
	case 0x2002: // PPUSTATUS
		value := p.PPUSTATUS
		p.Gate.Logf(logger.SubsystemPPU, "read PPUSTATUS: $%02X", value)
		p.PPUSTATUS &^= PPUSTATUSVBlank
		p.w = 0
		if p.Scanline == 241 && p.Cycle == 1 {
			// Race condition: reading $2002 on the exact cycle vblank is set
			// both clears it immediately and suppresses the NMI for this frame.
			p.suppressNMIThisVBlank = true
			p.NMIRequested = false
		}
		return value
	case 0x2004: // OAMDATA
		return p.OAM[p.OAMADDR]
	case 0x2007: // PPUDATA
		var value uint8
		if p.v >= 0x3F00 {
			value = p.readVRAM(p.v)
			p.readBuffer = p.readVRAM(p.v - 0x1000)
		} else {
			value = p.readBuffer
			p.readBuffer = p.readVRAM(p.v)
		}
		if p.PPUCTRL&PPUCTRLIncrement != 0 {
			p.v += 32
		} else {
			p.v++
		}
		return value
	}
	return 0
}

// WriteRegister writes to PPU register
func (p *PPU) WriteRegister(addr uint16, value uint8) {
	switch addr {
	case 0x2000: // PPUCTRL
		oldNMIEnable := p.PPUCTRL & PPUCTRLNMIEnable
		p.PPUCTRL = value
		p.t = (p.t & 0xF3FF) | ((uint16(value) & 0x03) << 10)
		// Enabling NMI while VBlank is already set raises it immediately
		// rather than waiting for the next VBlank onset in Step().
		if oldNMIEnable == 0 && p.PPUCTRL&PPUCTRLNMIEnable != 0 && p.PPUSTATUS&PPUSTATUSVBlank != 0 {
			p.NMIRequested = true
		}
	case 0x2001: // PPUMASK
		p.PPUMASK = value
	case 0x2003: // OAMADDR
		p.OAMADDR = value
	case 0x2004: // OAMDATA
		p.OAM[p.OAMADDR] = value
		p.OAMADDR++
	case 0x2005: // PPUSCROLL
		if p.w == 0 {
			p.t = (p.t & 0xFFE0) | (uint16(value) >> 3)
			p.xTemp = value & 0x07
			p.w = 1
		} else {
			p.t = (p.t & 0x8FFF) | ((uint16(value) & 0x07) << 12)
			p.t = (p.t & 0xFC1F) | ((uint16(value) & 0xF8) << 2)
			p.w = 0
		}
	case 0x2006: // PPUADDR
		if p.w == 0 {
			p.t = (p.t & 0x80FF) | ((uint16(value) & 0x3F) << 8)
			p.w = 1
		} else {
			p.t = (p.t & 0xFF00) | uint16(value)
			p.v = p.t
			p.w = 0
		}
	case 0x2007: // PPUDATA
		p.writeVRAM(p.v, value)
		if p.PPUCTRL&PPUCTRLIncrement != 0 {
			p.v += 32
		} else {
			p.v++
		}
	}
}

// readVRAM reads from VRAM
func (p *PPU) readVRAM(addr uint16) uint8 {
	addr = addr % 0x4000

	switch {
	case addr < 0x2000:
		if p.Cartridge != nil {
			return p.Cartridge.ReadCHR(addr)
		}
		return 0
	case addr < 0x3F00:
		return p.readNameTable(addr)
	default:
		return p.PaletteManager.ReadPalette(uint8(addr & 0x1F))
	}
}

// writeVRAM writes to VRAM
func (p *PPU) writeVRAM(addr uint16, value uint8) {
	addr = addr % 0x4000

	switch {
	case addr < 0x2000:
		if p.Cartridge != nil {
			p.Cartridge.WriteCHR(addr, value)
		}
	case addr < 0x3F00:
		p.writeNameTable(addr, value)
	default:
		p.PaletteManager.WritePalette(uint8(addr&0x1F), value)
	}
}

// GetFramebuffer returns the current framebuffer as RGBA bytes
func (p *PPU) GetFramebuffer() []uint8 {
	rgba := make([]uint8, 256*240*4)

	for i, pixel := range p.FrameBuffer {
		r := uint8((pixel >> 16) & 0xFF)
		g := uint8((pixel >> 8) & 0xFF)
		b := uint8(pixel & 0xFF)
		a := uint8((pixel >> 24) & 0xFF)

		rgba[i*4+0] = r
		rgba[i*4+1] = g
		rgba[i*4+2] = b
		rgba[i*4+3] = a
	}

	return rgba
}

// readNameTable reads from nametable with mirroring
func (p *PPU) readNameTable(addr uint16) uint8 {
	return p.VRAM[p.mirrorNameTableAddress(addr)]
}

// writeNameTable writes to nametable with mirroring
func (p *PPU) writeNameTable(addr uint16, value uint8) {
	p.VRAM[p.mirrorNameTableAddress(addr)] = value
}

// mirrorNameTableAddress applies nametable mirroring
func (p *PPU) mirrorNameTableAddress(addr uint16) uint16 {
	offset := addr - 0x2000

	mode := 0
	if p.Cartridge != nil {
		mode = p.Cartridge.GetMirroring()
	}

	switch mode {
	case 1: // Vertical: $2000=$2800, $2400=$2C00
		return (offset & 0x7FF) + 0x2000
	case 3: // Single-screen, nametable A
		return (offset & 0x3FF) + 0x2000
	case 4: // Single-screen, nametable B
		return (offset&0x3FF + 0x400) + 0x2000
	case 2: // Four-screen: no mirroring
		return addr
	default: // Horizontal: $2000=$2400, $2800=$2C00
		if offset >= 0x800 {
			return offset - 0x400 + 0x2000
		}
		return (offset & 0x7FF) + 0x2000
	}
}

// IsMapperIRQPending returns whether mapper IRQ is pending
func (p *PPU) IsMapperIRQPending() bool {
	if p.Cartridge != nil {
		return p.Cartridge.IsIRQPending()
	}
	return false
}

// ClearMapperIRQ clears mapper IRQ
func (p *PPU) ClearMapperIRQ() {
	if p.Cartridge != nil {
		p.Cartridge.ClearIRQ()
	}
}
