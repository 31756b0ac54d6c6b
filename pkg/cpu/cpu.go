package cpu

import (
	"github.com/kaelbran/nescore/pkg/logger"
	"github.com/kaelbran/nescore/pkg/memory"
)

// CPU represents the 6502 processor
type CPU struct {
	// Registers
	A  uint8  // Accumulator
	X  uint8  // X register
	Y  uint8  // Y register
	SP uint8  // Stack pointer
	PC uint16 // Program counter
	P  uint8  // Status register

	// Memory interface
	Memory *memory.Memory

	// Cycle counting
	Cycles      int
	TotalCycles uint64

	// StallCycles models OAM DMA and other bus-stall sources: each Step()
	// while StallCycles > 0 just burns one cycle instead of fetching.
	StallCycles int

	// Interrupt flags
	NMI        bool
	IRQ        bool
	IRQPending bool

	Gate *logger.Gate

	loggedUnknownOpcodes map[uint8]bool
}

// Status flag bits
const (
	FlagCarry     = 1 << 0 // C
	FlagZero      = 1 << 1 // Z
	FlagInterrupt = 1 << 2 // I
	FlagDecimal   = 1 << 3 // D
	FlagBreak     = 1 << 4 // B
	FlagUnused    = 1 << 5 // -
	FlagOverflow  = 1 << 6 // V
	FlagNegative  = 1 << 7 // N
)

// New creates a new CPU instance
func New(mem *memory.Memory) *CPU {
	return &CPU{
		Memory:               mem,
		SP:                   0xFD,
		P:                    0x34,
		Gate:                 logger.NewGate(),
		loggedUnknownOpcodes: make(map[uint8]bool),
	}
}

// SetLogGate installs the diagnostic Gate shared across the emulator core.
func (c *CPU) SetLogGate(gate *logger.Gate) {
	c.Gate = gate
}

// Reset resets the CPU to initial state. Status register matches the real
// 6502 power/reset behavior: IRQ disabled, unused and break bits set.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.P = 0x34

	// Read reset vector
	resetVector := c.read16(0xFFFC)
	c.PC = resetVector
	c.Cycles = 0
	c.StallCycles = 0
}

// Step executes one instruction (or enters a pending NMI/IRQ, 7 cycles) and
// returns the cycles consumed. While a DMA stall is outstanding, each call
// just burns a single cycle.
func (c *CPU) Step() int {
	if c.StallCycles > 0 {
		c.StallCycles--
		c.TotalCycles++
		return 1
	}

	if stall := c.Memory.TakePendingDMAStall(); stall > 0 {
		c.StallCycles = stall - 1
		c.TotalCycles++
		return 1
	}

	if c.NMI {
		c.Gate.Logf(logger.SubsystemCPU, "NMI triggered at PC=$%04X", c.PC)
		c.handleNMI()
		c.NMI = false
		c.TotalCycles += 7
		return 7
	}

	if c.IRQ && !c.getFlag(FlagInterrupt) {
		c.Gate.Logf(logger.SubsystemCPU, "IRQ triggered at PC=$%04X", c.PC)
		c.handleIRQ()
		c.IRQ = false
		c.TotalCycles += 7
		return 7
	}

	opcode := c.read(c.PC)
	c.PC++

	cycles := c.executeInstruction(opcode)
	c.Cycles += cycles
	c.TotalCycles += uint64(cycles)

	return cycles
}

// executeInstruction is implemented in instructions.go

// logUnknownOpcode reports an opcode with no table entry the first time it is
// hit. The opcodes without a handler are the twelve JAM opcodes and the
// unstable undocumented ones ($8B, $93, $9B, $9C, $9E, $9F, $BB); repeat
// hits are almost always the same ROM re-executing the same bad fetch and
// don't need their own log line.
func (c *CPU) logUnknownOpcode(opcode uint8) {
	if c.loggedUnknownOpcodes == nil {
		c.loggedUnknownOpcodes = make(map[uint8]bool)
	}
	if c.loggedUnknownOpcodes[opcode] {
		return
	}
	c.loggedUnknownOpcodes[opcode] = true
	c.Gate.Logf(logger.SubsystemCPU, "unhandled opcode $%02X at PC=$%04X, treated as 2-cycle NOP", opcode, c.PC-1)
}

// handleNMI handles Non-Maskable Interrupt. The status byte pushed to the
// stack always has the Unused bit forced set and the Break bit forced clear,
// regardless of their live state in P.
func (c *CPU) handleNMI() {
	c.push16(c.PC)
	c.push((c.P | FlagUnused) &^ FlagBreak)
	c.setFlag(FlagInterrupt, true)
	nmiVector := c.read16(0xFFFA)
	c.Gate.Logf(logger.SubsystemCPU, "NMI vector: $%04X", nmiVector)
	c.PC = nmiVector
}

// handleIRQ handles Interrupt Request, pushing status with the same
// Unused-set/Break-clear convention as NMI.
func (c *CPU) handleIRQ() {
	c.push16(c.PC)
	c.push((c.P | FlagUnused) &^ FlagBreak)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.read16(0xFFFE)
}

// Flag operations
func (c *CPU) getFlag(flag uint8) bool {
	return c.P&flag != 0
}

func (c *CPU) setFlag(flag uint8, value bool) {
	if value {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

// Memory operations
func (c *CPU) read(addr uint16) uint8 {
	return c.Memory.Read(addr)
}

func (c *CPU) write(addr uint16, value uint8) {
	c.Memory.Write(addr, value, c.TotalCycles)
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return hi<<8 | lo
}

// Stack operations
func (c *CPU) push(value uint8) {
	c.write(0x100|uint16(c.SP), value)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.read(0x100 | uint16(c.SP))
}

func (c *CPU) push16(value uint16) {
	c.push(uint8(value >> 8))
	c.push(uint8(value & 0xFF))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// TriggerNMI triggers a Non-Maskable Interrupt
func (c *CPU) TriggerNMI() {
	c.NMI = true
}

// TriggerIRQ triggers an Interrupt Request
func (c *CPU) TriggerIRQ() {
	c.IRQ = true
}

// GetFlag returns the state of a flag (public method for testing)
func (c *CPU) GetFlag(flag uint8) bool {
	return c.getFlag(flag)
}
