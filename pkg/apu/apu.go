package apu

import "github.com/kaelbran/nescore/pkg/logger"

// MemoryReader interface for DMC to read from memory
type MemoryReader interface {
	Read(address uint16) uint8
}

// ringBufferSize is the capacity of the APU's output sample ring buffer.
// Overflow drops the oldest unread sample rather than blocking the CPU.
const ringBufferSize = 8192

// cpuCyclesPerSample is the NTSC sample cadence: one 44100Hz sample is
// emitted roughly every 1789773/44100 ≈ 40.5844 CPU cycles.
const cpuCyclesPerSample = 1789773.0 / 44100.0

// APU represents the Audio Processing Unit
type APU struct {
	// Pulse channels
	Pulse1 PulseChannel
	Pulse2 PulseChannel

	// Triangle channel
	Triangle TriangleChannel

	// Noise channel
	Noise NoiseChannel

	// DMC channel (stub: always silent, see DESIGN.md)
	DMC DMCChannel

	// Frame sequencer
	fiveStepMode bool
	irqInhibit   bool
	frameCycle   uint32
	FrameIRQ     bool

	// Cycle counter
	Cycles uint64

	// apuCycleParity toggles every CPU cycle; pulse/noise timers clock
	// on one CPU-cycle phase only, the triangle timer on every cycle.
	apuCycleParity bool

	// Sample generation
	sampleAccumulator float64
	lowPassState      float64

	// ring is the 8-bit PCM output ring buffer (unsigned, centered at 128).
	// head is the next write position, tail the next read position.
	ring             [ringBufferSize]uint8
	ringHead         int
	ringTail         int
	ringCount        int
	ringOverflows    uint64
	droppedOverflows bool

	// Memory interface for DMC
	Memory MemoryReader

	Gate *logger.Gate
}

// PulseChannel represents a pulse wave channel
type PulseChannel struct {
	Enabled    bool
	DutyCycle  uint8
	Volume     uint8
	Sweep      SweepUnit
	Length     LengthCounter
	Envelope   EnvelopeGenerator
	Timer      uint16
	TimerValue uint16
	Sequence   uint8
}

// TriangleChannel represents the triangle wave channel
type TriangleChannel struct {
	Enabled       bool
	LinearCounter uint8
	LinearReload  uint8
	LinearControl bool // Control flag (halt length counter / reload linear counter)
	Length        LengthCounter
	Timer         uint16
	TimerValue    uint16
	Sequence      uint8
}

// NoiseChannel represents the noise channel
type NoiseChannel struct {
	Enabled    bool
	Volume     uint8
	Length     LengthCounter
	Envelope   EnvelopeGenerator
	Timer      uint16
	TimerValue uint16
	ShiftReg   uint16
	Mode       bool
}

// DMCChannel represents the Delta Modulation Channel. Only the register
// latch state is modeled; sample playback is a stub (output always 0).
// CurrentLength is never loaded from SampleLength, so the status register's
// DMC-active bit (bit 4 of $4015) always reads 0.
type DMCChannel struct {
	Enabled       bool
	IRQEnabled    bool
	Loop          bool
	Rate          uint8
	LoadCounter   uint8
	SampleAddress uint16
	SampleLength  uint16
	CurrentLength uint16
}

// SweepUnit represents a sweep unit
type SweepUnit struct {
	Enabled bool
	Period  uint8
	Negate  bool
	Shift   uint8
	Reload  bool
	Counter uint8
}

// LengthCounter represents a length counter
type LengthCounter struct {
	Enabled bool
	Value   uint8
	Halt    bool
}

// EnvelopeGenerator represents an envelope generator
type EnvelopeGenerator struct {
	Start    bool
	Loop     bool
	Constant bool
	Volume   uint8
	Counter  uint8
	Divider  uint8
}

// Length counter lookup table
var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// Frame sequencer step offsets, in CPU cycles since the last reset.
const (
	frameStep1 = 3729
	frameStep2 = 7457
	frameStep3 = 11186
	frameStep4Four  = 14915
	frameStep4Five  = 18641
)

// New creates a new APU instance
func New() *APU {
	apu := &APU{Gate: logger.NewGate()}
	apu.initializeChannels()
	return apu
}

// SetLogGate installs the diagnostic Gate shared across the emulator core.
func (a *APU) SetLogGate(gate *logger.Gate) {
	a.Gate = gate
}

// SetMemory sets the memory interface for DMC
func (a *APU) SetMemory(mem MemoryReader) {
	a.Memory = mem
}

// Reset resets the APU to initial state
func (a *APU) Reset() {
	a.Pulse1 = PulseChannel{}
	a.Pulse2 = PulseChannel{}
	a.Triangle = TriangleChannel{}
	a.Noise = NoiseChannel{}
	a.DMC = DMCChannel{}
	a.fiveStepMode = false
	a.irqInhibit = false
	a.frameCycle = 0
	a.FrameIRQ = false
	a.Cycles = 0
	a.apuCycleParity = false
	a.sampleAccumulator = 0
	a.lowPassState = 0
	a.ringHead = 0
	a.ringTail = 0
	a.ringCount = 0
	a.initializeChannels()
}

// Step executes one CPU cycle's worth of APU work.
func (a *APU) Step() {
	a.Cycles++
	a.frameCycle++
	a.apuCycleParity = !a.apuCycleParity

	a.stepFrameSequencer()

	if a.apuCycleParity {
		a.stepPulse(&a.Pulse1)
		a.stepPulse(&a.Pulse2)
		a.stepNoise()
	}
	a.stepTriangle()

	a.sampleAccumulator++
	if a.sampleAccumulator >= cpuCyclesPerSample {
		a.sampleAccumulator -= cpuCyclesPerSample
		a.emitSample()
	}
}

// stepFrameSequencer clocks envelopes/sweeps/length-counters at the exact
// CPU-cycle offsets of the 4-step and 5-step sequences.
func (a *APU) stepFrameSequencer() {
	if a.fiveStepMode {
		switch a.frameCycle {
		case frameStep1:
			a.frameSequencerStep(true, false)
		case frameStep2:
			a.frameSequencerStep(true, true)
		case frameStep3:
			a.frameSequencerStep(true, false)
		case frameStep4Five:
			a.frameSequencerStep(true, true)
			a.frameCycle = 0
		}
		return
	}

	switch a.frameCycle {
	case frameStep1:
		a.frameSequencerStep(true, false)
	case frameStep2:
		a.frameSequencerStep(true, true)
	case frameStep3:
		a.frameSequencerStep(true, false)
	case frameStep4Four:
		a.frameSequencerStep(true, true)
		if !a.irqInhibit {
			a.FrameIRQ = true
		}
		a.frameCycle = 0
	}
}

// emitSample mixes the channels, runs the one-pole low-pass filter, and
// pushes the result onto the ring buffer, dropping the oldest sample on
// overflow rather than blocking.
func (a *APU) emitSample() {
	mixed := float64(a.mixChannels())

	// One-pole low-pass filter: y[n] = y[n-1] + alpha*(x[n] - y[n-1])
	const alpha = 0.25
	a.lowPassState += alpha * (mixed - a.lowPassState)

	filtered := a.lowPassState
	if filtered != filtered { // NaN guard
		filtered = 0
	}
	if filtered > 1.0 {
		filtered = 1.0
	} else if filtered < -1.0 {
		filtered = -1.0
	}

	sample := uint8(int16(filtered*127.0) + 128)
	a.pushSample(sample)
}

// pushSample writes one 8-bit PCM sample into the ring buffer, dropping the
// oldest sample if the buffer is full.
func (a *APU) pushSample(sample uint8) {
	if a.ringCount == ringBufferSize {
		a.ringTail = (a.ringTail + 1) % ringBufferSize
		a.ringCount--
		a.ringOverflows++
		if !a.droppedOverflows {
			a.Gate.Logf(logger.SubsystemAPU, "output ring buffer full, dropping oldest sample")
			a.droppedOverflows = true
		}
	}
	a.ring[a.ringHead] = sample
	a.ringHead = (a.ringHead + 1) % ringBufferSize
	a.ringCount++
}

// ReadSamples drains up to len(dst) queued samples into dst and returns how
// many were copied.
func (a *APU) ReadSamples(dst []uint8) int {
	n := 0
	for n < len(dst) && a.ringCount > 0 {
		dst[n] = a.ring[a.ringTail]
		a.ringTail = (a.ringTail + 1) % ringBufferSize
		a.ringCount--
		n++
	}
	return n
}

// QueuedSamples returns how many samples are waiting to be read.
func (a *APU) QueuedSamples() int {
	return a.ringCount
}

// stepEnvelopes steps all envelope generators
func (a *APU) stepEnvelopes() {
	a.stepEnvelope(&a.Pulse1.Envelope)
	a.stepEnvelope(&a.Pulse2.Envelope)
	a.stepEnvelope(&a.Noise.Envelope)
}

// stepLengthCounters steps all length counters
func (a *APU) stepLengthCounters() {
	a.stepLengthCounter(&a.Pulse1.Length)
	a.stepLengthCounter(&a.Pulse2.Length)
	a.stepLengthCounter(&a.Triangle.Length)
	a.stepLengthCounter(&a.Noise.Length)
}

// stepSweeps steps all sweep units
func (a *APU) stepSweeps() {
	a.stepSweep(&a.Pulse1, &a.Pulse1.Sweep, true)
	a.stepSweep(&a.Pulse2, &a.Pulse2.Sweep, false)
}

// Channel stepping and mixing functions are implemented in channels.go

// ReadRegister reads from APU register
func (a *APU) ReadRegister(addr uint16) uint8 {
	switch addr {
	case 0x4015: // Status
		status := uint8(0)
		if a.Pulse1.Length.Value > 0 {
			status |= 0x01
		}
		if a.Pulse2.Length.Value > 0 {
			status |= 0x02
		}
		if a.Triangle.Length.Value > 0 {
			status |= 0x04
		}
		if a.Noise.Length.Value > 0 {
			status |= 0x08
		}
		if a.DMC.CurrentLength > 0 {
			status |= 0x10
		}
		if a.FrameIRQ {
			status |= 0x40
		}

		a.FrameIRQ = false

		return status
	}
	return 0
}

// WriteRegister writes to APU register
func (a *APU) WriteRegister(addr uint16, value uint8) {
	switch addr {
	case 0x4000, 0x4001, 0x4002, 0x4003: // Pulse 1
		a.writePulse(&a.Pulse1, addr-0x4000, value)
	case 0x4004, 0x4005, 0x4006, 0x4007: // Pulse 2
		a.writePulse(&a.Pulse2, addr-0x4004, value)
	case 0x4008, 0x4009, 0x400A, 0x400B: // Triangle
		a.writeTriangle(addr-0x4008, value)
	case 0x400C, 0x400D, 0x400E, 0x400F: // Noise
		a.writeNoise(addr-0x400C, value)
	case 0x4010, 0x4011, 0x4012, 0x4013: // DMC
		a.writeDMC(addr-0x4010, value)
	case 0x4015: // Status
		a.writeStatus(value)
	case 0x4017: // Frame counter
		a.writeFrameCounter(value)
	}
}

// Register write functions are implemented in registers.go
