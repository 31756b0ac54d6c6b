package cpu

// opcodeHandler executes one 6502 instruction and returns the number of
// cycles it consumed.
type opcodeHandler func(c *CPU) int

var opcodeTable [256]opcodeHandler

func init() {
	// LDA - Load Accumulator
	opcodeTable[0xA9] = func(c *CPU) int { return c.execLDAImmediate() } // LDA #immediate
	opcodeTable[0xA5] = func(c *CPU) int { return c.execLDA(AddrZeroPage) } // LDA zeropage
	opcodeTable[0xB5] = func(c *CPU) int { return c.execLDA(AddrZeroPageX) } // LDA zeropage,X
	opcodeTable[0xAD] = func(c *CPU) int { return c.execLDA(AddrAbsolute) } // LDA absolute
	opcodeTable[0xBD] = func(c *CPU) int { return c.execLDA(AddrAbsoluteX) } // LDA absolute,X
	opcodeTable[0xB9] = func(c *CPU) int { return c.execLDA(AddrAbsoluteY) } // LDA absolute,Y
	opcodeTable[0xA1] = func(c *CPU) int { return c.execLDA(AddrIndexedIndirect) } // LDA (zeropage,X)
	opcodeTable[0xB1] = func(c *CPU) int { return c.execLDA(AddrIndirectIndexed) } // LDA (zeropage),Y

	// LDX - Load X Register
	opcodeTable[0xA2] = func(c *CPU) int { return c.execLDX(AddrImmediate) } // LDX #immediate
	opcodeTable[0xA6] = func(c *CPU) int { return c.execLDX(AddrZeroPage) } // LDX zeropage
	opcodeTable[0xB6] = func(c *CPU) int { return c.execLDX(AddrZeroPageY) } // LDX zeropage,Y
	opcodeTable[0xAE] = func(c *CPU) int { return c.execLDX(AddrAbsolute) } // LDX absolute
	opcodeTable[0xBE] = func(c *CPU) int { return c.execLDX(AddrAbsoluteY) } // LDX absolute,Y

	// LDY - Load Y Register
	opcodeTable[0xA0] = func(c *CPU) int { return c.execLDY(AddrImmediate) } // LDY #immediate
	opcodeTable[0xA4] = func(c *CPU) int { return c.execLDY(AddrZeroPage) } // LDY zeropage
	opcodeTable[0xB4] = func(c *CPU) int { return c.execLDY(AddrZeroPageX) } // LDY zeropage,X
	opcodeTable[0xAC] = func(c *CPU) int { return c.execLDY(AddrAbsolute) } // LDY absolute
	opcodeTable[0xBC] = func(c *CPU) int { return c.execLDY(AddrAbsoluteX) } // LDY absolute,X

	// STA - Store Accumulator
	opcodeTable[0x85] = func(c *CPU) int { return c.execSTA(AddrZeroPage) } // STA zeropage
	opcodeTable[0x95] = func(c *CPU) int { return c.execSTA(AddrZeroPageX) } // STA zeropage,X
	opcodeTable[0x8D] = func(c *CPU) int { return c.execSTA(AddrAbsolute) } // STA absolute
	opcodeTable[0x9D] = func(c *CPU) int { return c.execSTA(AddrAbsoluteX) } // STA absolute,X
	opcodeTable[0x99] = func(c *CPU) int { return c.execSTA(AddrAbsoluteY) } // STA absolute,Y
	opcodeTable[0x81] = func(c *CPU) int { return c.execSTA(AddrIndexedIndirect) } // STA (zeropage,X)
	opcodeTable[0x91] = func(c *CPU) int { return c.execSTA(AddrIndirectIndexed) } // STA (zeropage),Y

	// STX - Store X Register
	opcodeTable[0x86] = func(c *CPU) int { return c.execSTX(AddrZeroPage) } // STX zeropage
	opcodeTable[0x96] = func(c *CPU) int { return c.execSTX(AddrZeroPageY) } // STX zeropage,Y
	opcodeTable[0x8E] = func(c *CPU) int { return c.execSTX(AddrAbsolute) } // STX absolute

	// STY - Store Y Register
	opcodeTable[0x84] = func(c *CPU) int { return c.execSTY(AddrZeroPage) } // STY zeropage
	opcodeTable[0x94] = func(c *CPU) int { return c.execSTY(AddrZeroPageX) } // STY zeropage,X
	opcodeTable[0x8C] = func(c *CPU) int { return c.execSTY(AddrAbsolute) } // STY absolute

	// ADC - Add with Carry
	opcodeTable[0x69] = func(c *CPU) int { return c.execADC(AddrImmediate) } // ADC #immediate
	opcodeTable[0x65] = func(c *CPU) int { return c.execADC(AddrZeroPage) } // ADC zeropage
	opcodeTable[0x75] = func(c *CPU) int { return c.execADC(AddrZeroPageX) } // ADC zeropage,X
	opcodeTable[0x6D] = func(c *CPU) int { return c.execADC(AddrAbsolute) } // ADC absolute
	opcodeTable[0x7D] = func(c *CPU) int { return c.execADC(AddrAbsoluteX) } // ADC absolute,X
	opcodeTable[0x79] = func(c *CPU) int { return c.execADC(AddrAbsoluteY) } // ADC absolute,Y
	opcodeTable[0x61] = func(c *CPU) int { return c.execADC(AddrIndexedIndirect) } // ADC (zeropage,X)
	opcodeTable[0x71] = func(c *CPU) int { return c.execADC(AddrIndirectIndexed) } // ADC (zeropage),Y

	// SBC - Subtract with Carry
	opcodeTable[0xE9] = func(c *CPU) int { return c.execSBC(AddrImmediate) } // SBC #immediate
	opcodeTable[0xE5] = func(c *CPU) int { return c.execSBC(AddrZeroPage) } // SBC zeropage
	opcodeTable[0xF5] = func(c *CPU) int { return c.execSBC(AddrZeroPageX) } // SBC zeropage,X
	opcodeTable[0xED] = func(c *CPU) int { return c.execSBC(AddrAbsolute) } // SBC absolute
	opcodeTable[0xFD] = func(c *CPU) int { return c.execSBC(AddrAbsoluteX) } // SBC absolute,X
	opcodeTable[0xF9] = func(c *CPU) int { return c.execSBC(AddrAbsoluteY) } // SBC absolute,Y
	opcodeTable[0xE1] = func(c *CPU) int { return c.execSBC(AddrIndexedIndirect) } // SBC (zeropage,X)
	opcodeTable[0xF1] = func(c *CPU) int { return c.execSBC(AddrIndirectIndexed) } // SBC (zeropage),Y

	// CMP - Compare Accumulator
	opcodeTable[0xC9] = func(c *CPU) int { return c.execCMP(AddrImmediate) } // CMP #immediate
	opcodeTable[0xC5] = func(c *CPU) int { return c.execCMP(AddrZeroPage) } // CMP zeropage
	opcodeTable[0xD5] = func(c *CPU) int { return c.execCMP(AddrZeroPageX) } // CMP zeropage,X
	opcodeTable[0xCD] = func(c *CPU) int { return c.execCMP(AddrAbsolute) } // CMP absolute
	opcodeTable[0xDD] = func(c *CPU) int { return c.execCMP(AddrAbsoluteX) } // CMP absolute,X
	opcodeTable[0xD9] = func(c *CPU) int { return c.execCMP(AddrAbsoluteY) } // CMP absolute,Y
	opcodeTable[0xC1] = func(c *CPU) int { return c.execCMP(AddrIndexedIndirect) } // CMP (zeropage,X)
	opcodeTable[0xD1] = func(c *CPU) int { return c.execCMP(AddrIndirectIndexed) } // CMP (zeropage),Y

	// Transfer instructions
	opcodeTable[0xAA] = func(c *CPU) int { return c.execTAX() } // TAX
	opcodeTable[0x8A] = func(c *CPU) int { return c.execTXA() } // TXA
	opcodeTable[0xA8] = func(c *CPU) int { return c.execTAY() } // TAY
	opcodeTable[0x98] = func(c *CPU) int { return c.execTYA() } // TYA
	opcodeTable[0x9A] = func(c *CPU) int { return c.execTXS() } // TXS
	opcodeTable[0xBA] = func(c *CPU) int { return c.execTSX() } // TSX

	// Flag instructions
	opcodeTable[0x18] = func(c *CPU) int { return c.execCLC() } // CLC
	opcodeTable[0x38] = func(c *CPU) int { return c.execSEC() } // SEC
	opcodeTable[0x58] = func(c *CPU) int { return c.execCLI() } // CLI
	opcodeTable[0x78] = func(c *CPU) int { return c.execSEI() } // SEI
	opcodeTable[0xB8] = func(c *CPU) int { return c.execCLV() } // CLV
	opcodeTable[0xD8] = func(c *CPU) int { return c.execCLD() } // CLD
	opcodeTable[0xF8] = func(c *CPU) int { return c.execSED() } // SED

	// Stack instructions
	opcodeTable[0x48] = func(c *CPU) int { return c.execPHA() } // PHA
	opcodeTable[0x68] = func(c *CPU) int { return c.execPLA() } // PLA
	opcodeTable[0x08] = func(c *CPU) int { return c.execPHP() } // PHP
	opcodeTable[0x28] = func(c *CPU) int { return c.execPLP() } // PLP

	// Branch instructions
	opcodeTable[0x10] = func(c *CPU) int { return c.execBPL() } // BPL - Branch if Positive
	opcodeTable[0x30] = func(c *CPU) int { return c.execBMI() } // BMI - Branch if Minus
	opcodeTable[0x50] = func(c *CPU) int { return c.execBVC() } // BVC - Branch if Overflow Clear
	opcodeTable[0x70] = func(c *CPU) int { return c.execBVS() } // BVS - Branch if Overflow Set
	opcodeTable[0x90] = func(c *CPU) int { return c.execBCC() } // BCC - Branch if Carry Clear
	opcodeTable[0xB0] = func(c *CPU) int { return c.execBCS() } // BCS - Branch if Carry Set
	opcodeTable[0xD0] = func(c *CPU) int { return c.execBNE() } // BNE - Branch if Not Equal
	opcodeTable[0xF0] = func(c *CPU) int { return c.execBEQ() } // BEQ - Branch if Equal

	// Jump instructions
	opcodeTable[0x4C] = func(c *CPU) int { return c.execJMPAbsolute() } // JMP absolute
	opcodeTable[0x6C] = func(c *CPU) int { return c.execJMPIndirect() } // JMP indirect
	opcodeTable[0x20] = func(c *CPU) int { return c.execJSR() } // JSR - Jump to Subroutine
	opcodeTable[0x60] = func(c *CPU) int { return c.execRTS() } // RTS - Return from Subroutine
	opcodeTable[0x40] = func(c *CPU) int { return c.execRTI() } // RTI - Return from Interrupt

	// Logical operations
	opcodeTable[0x29] = func(c *CPU) int { return c.execAND(AddrImmediate) } // AND #immediate
	opcodeTable[0x25] = func(c *CPU) int { return c.execAND(AddrZeroPage) } // AND zeropage
	opcodeTable[0x35] = func(c *CPU) int { return c.execAND(AddrZeroPageX) } // AND zeropage,X
	opcodeTable[0x2D] = func(c *CPU) int { return c.execAND(AddrAbsolute) } // AND absolute
	opcodeTable[0x3D] = func(c *CPU) int { return c.execAND(AddrAbsoluteX) } // AND absolute,X
	opcodeTable[0x39] = func(c *CPU) int { return c.execAND(AddrAbsoluteY) } // AND absolute,Y
	opcodeTable[0x21] = func(c *CPU) int { return c.execAND(AddrIndexedIndirect) } // AND (zeropage,X)
	opcodeTable[0x31] = func(c *CPU) int { return c.execAND(AddrIndirectIndexed) } // AND (zeropage),Y

	opcodeTable[0x09] = func(c *CPU) int { return c.execORA(AddrImmediate) } // ORA #immediate
	opcodeTable[0x05] = func(c *CPU) int { return c.execORA(AddrZeroPage) } // ORA zeropage
	opcodeTable[0x15] = func(c *CPU) int { return c.execORA(AddrZeroPageX) } // ORA zeropage,X
	opcodeTable[0x0D] = func(c *CPU) int { return c.execORA(AddrAbsolute) } // ORA absolute
	opcodeTable[0x1D] = func(c *CPU) int { return c.execORA(AddrAbsoluteX) } // ORA absolute,X
	opcodeTable[0x19] = func(c *CPU) int { return c.execORA(AddrAbsoluteY) } // ORA absolute,Y
	opcodeTable[0x01] = func(c *CPU) int { return c.execORA(AddrIndexedIndirect) } // ORA (zeropage,X)
	opcodeTable[0x11] = func(c *CPU) int { return c.execORA(AddrIndirectIndexed) } // ORA (zeropage),Y

	opcodeTable[0x49] = func(c *CPU) int { return c.execEOR(AddrImmediate) } // EOR #immediate
	opcodeTable[0x45] = func(c *CPU) int { return c.execEOR(AddrZeroPage) } // EOR zeropage
	opcodeTable[0x55] = func(c *CPU) int { return c.execEOR(AddrZeroPageX) } // EOR zeropage,X
	opcodeTable[0x4D] = func(c *CPU) int { return c.execEOR(AddrAbsolute) } // EOR absolute
	opcodeTable[0x5D] = func(c *CPU) int { return c.execEOR(AddrAbsoluteX) } // EOR absolute,X
	opcodeTable[0x59] = func(c *CPU) int { return c.execEOR(AddrAbsoluteY) } // EOR absolute,Y
	opcodeTable[0x41] = func(c *CPU) int { return c.execEOR(AddrIndexedIndirect) } // EOR (zeropage,X)
	opcodeTable[0x51] = func(c *CPU) int { return c.execEOR(AddrIndirectIndexed) } // EOR (zeropage),Y

	// Shift and rotate instructions
	opcodeTable[0x0A] = func(c *CPU) int { return c.execASLAccumulator() } // ASL accumulator
	opcodeTable[0x06] = func(c *CPU) int { return c.execASL(AddrZeroPage) } // ASL zeropage
	opcodeTable[0x16] = func(c *CPU) int { return c.execASL(AddrZeroPageX) } // ASL zeropage,X
	opcodeTable[0x0E] = func(c *CPU) int { return c.execASL(AddrAbsolute) } // ASL absolute
	opcodeTable[0x1E] = func(c *CPU) int { return c.execASL(AddrAbsoluteX) } // ASL absolute,X

	opcodeTable[0x4A] = func(c *CPU) int { return c.execLSRAccumulator() } // LSR accumulator
	opcodeTable[0x46] = func(c *CPU) int { return c.execLSR(AddrZeroPage) } // LSR zeropage
	opcodeTable[0x56] = func(c *CPU) int { return c.execLSR(AddrZeroPageX) } // LSR zeropage,X
	opcodeTable[0x4E] = func(c *CPU) int { return c.execLSR(AddrAbsolute) } // LSR absolute
	opcodeTable[0x5E] = func(c *CPU) int { return c.execLSR(AddrAbsoluteX) } // LSR absolute,X

	opcodeTable[0x2A] = func(c *CPU) int { return c.execROLAccumulator() } // ROL accumulator
	opcodeTable[0x26] = func(c *CPU) int { return c.execROL(AddrZeroPage) } // ROL zeropage
	opcodeTable[0x36] = func(c *CPU) int { return c.execROL(AddrZeroPageX) } // ROL zeropage,X
	opcodeTable[0x2E] = func(c *CPU) int { return c.execROL(AddrAbsolute) } // ROL absolute
	opcodeTable[0x3E] = func(c *CPU) int { return c.execROL(AddrAbsoluteX) } // ROL absolute,X

	opcodeTable[0x6A] = func(c *CPU) int { return c.execRORAccumulator() } // ROR accumulator
	opcodeTable[0x66] = func(c *CPU) int { return c.execROR(AddrZeroPage) } // ROR zeropage
	opcodeTable[0x76] = func(c *CPU) int { return c.execROR(AddrZeroPageX) } // ROR zeropage,X
	opcodeTable[0x6E] = func(c *CPU) int { return c.execROR(AddrAbsolute) } // ROR absolute
	opcodeTable[0x7E] = func(c *CPU) int { return c.execROR(AddrAbsoluteX) } // ROR absolute,X

	// Increment/Decrement instructions
	opcodeTable[0xE6] = func(c *CPU) int { return c.execINC(AddrZeroPage) } // INC zeropage
	opcodeTable[0xF6] = func(c *CPU) int { return c.execINC(AddrZeroPageX) } // INC zeropage,X
	opcodeTable[0xEE] = func(c *CPU) int { return c.execINC(AddrAbsolute) } // INC absolute
	opcodeTable[0xFE] = func(c *CPU) int { return c.execINC(AddrAbsoluteX) } // INC absolute,X

	opcodeTable[0xC6] = func(c *CPU) int { return c.execDEC(AddrZeroPage) } // DEC zeropage
	opcodeTable[0xD6] = func(c *CPU) int { return c.execDEC(AddrZeroPageX) } // DEC zeropage,X
	opcodeTable[0xCE] = func(c *CPU) int { return c.execDEC(AddrAbsolute) } // DEC absolute
	opcodeTable[0xDE] = func(c *CPU) int { return c.execDEC(AddrAbsoluteX) } // DEC absolute,X

	opcodeTable[0xE8] = func(c *CPU) int { return c.execINX() } // INX
	opcodeTable[0xCA] = func(c *CPU) int { return c.execDEX() } // DEX
	opcodeTable[0xC8] = func(c *CPU) int { return c.execINY() } // INY
	opcodeTable[0x88] = func(c *CPU) int { return c.execDEY() } // DEY

	// Compare instructions
	opcodeTable[0xE0] = func(c *CPU) int { return c.execCPX(AddrImmediate) } // CPX #immediate
	opcodeTable[0xE4] = func(c *CPU) int { return c.execCPX(AddrZeroPage) } // CPX zeropage
	opcodeTable[0xEC] = func(c *CPU) int { return c.execCPX(AddrAbsolute) } // CPX absolute

	opcodeTable[0xC0] = func(c *CPU) int { return c.execCPY(AddrImmediate) } // CPY #immediate
	opcodeTable[0xC4] = func(c *CPU) int { return c.execCPY(AddrZeroPage) } // CPY zeropage
	opcodeTable[0xCC] = func(c *CPU) int { return c.execCPY(AddrAbsolute) } // CPY absolute

	// Bit test instruction
	opcodeTable[0x24] = func(c *CPU) int { return c.execBIT(AddrZeroPage) } // BIT zeropage
	opcodeTable[0x2C] = func(c *CPU) int { return c.execBIT(AddrAbsolute) } // BIT absolute

	// Interrupt instructions
	opcodeTable[0x00] = func(c *CPU) int { return c.execBRK() } // BRK

	// NOP - official
	opcodeTable[0xEA] = func(c *CPU) int { return c.execNOP() } // NOP

	// Illegal NOPs (undocumented opcodes that act like NOP)
	opcodeTable[0x1A] = func(c *CPU) int { return c.execNOP() } // NOP (implied)
	opcodeTable[0x3A] = func(c *CPU) int { return c.execNOP() } // NOP (implied)
	opcodeTable[0x5A] = func(c *CPU) int { return c.execNOP() } // NOP (implied)
	opcodeTable[0x7A] = func(c *CPU) int { return c.execNOP() } // NOP (implied)
	opcodeTable[0xDA] = func(c *CPU) int { return c.execNOP() } // NOP (implied)
	opcodeTable[0xFA] = func(c *CPU) int { return c.execNOP() } // NOP (implied)
	opcodeTable[0x80] = func(c *CPU) int { c.PC++; return 2 } // NOP #imm (immediate)
	opcodeTable[0x82] = func(c *CPU) int { c.PC++; return 2 } // NOP #imm (immediate)
	opcodeTable[0x89] = func(c *CPU) int { c.PC++; return 2 } // NOP #imm (immediate)
	opcodeTable[0xC2] = func(c *CPU) int { c.PC++; return 2 } // NOP #imm (immediate)
	opcodeTable[0xE2] = func(c *CPU) int { c.PC++; return 2 } // NOP #imm (immediate)
	opcodeTable[0x04] = func(c *CPU) int { c.PC++; return 3 } // NOP zp (zero page)
	opcodeTable[0x44] = func(c *CPU) int { c.PC++; return 3 } // NOP zp (zero page)
	opcodeTable[0x64] = func(c *CPU) int { c.PC++; return 3 } // NOP zp (zero page)
	opcodeTable[0x14] = func(c *CPU) int { c.PC++; return 4 } // NOP zp,X (zero page,X)
	opcodeTable[0x34] = func(c *CPU) int { c.PC++; return 4 } // NOP zp,X (zero page,X)
	opcodeTable[0x54] = func(c *CPU) int { c.PC++; return 4 } // NOP zp,X (zero page,X)
	opcodeTable[0x74] = func(c *CPU) int { c.PC++; return 4 } // NOP zp,X (zero page,X)
	opcodeTable[0xD4] = func(c *CPU) int { c.PC++; return 4 } // NOP zp,X (zero page,X)
	opcodeTable[0xF4] = func(c *CPU) int { c.PC++; return 4 } // NOP zp,X (zero page,X)
	opcodeTable[0x0C] = func(c *CPU) int { c.PC += 2; return 4 } // NOP abs (absolute)
	opcodeTable[0x1C] = func(c *CPU) int { c.PC += 2; return 4 } // NOP abs,X (absolute,X)
	opcodeTable[0x3C] = func(c *CPU) int { c.PC += 2; return 4 } // NOP abs,X (absolute,X)
	opcodeTable[0x5C] = func(c *CPU) int { c.PC += 2; return 4 } // NOP abs,X (absolute,X)
	opcodeTable[0x7C] = func(c *CPU) int { c.PC += 2; return 4 } // NOP abs,X (absolute,X)
	opcodeTable[0xDC] = func(c *CPU) int { c.PC += 2; return 4 } // NOP abs,X (absolute,X)
	opcodeTable[0xFC] = func(c *CPU) int { c.PC += 2; return 4 } // NOP abs,X (absolute,X)

	// Illegal opcodes that perform actual operations
	// LAX - Load A and X
	opcodeTable[0xAF] = func(c *CPU) int { return c.execLAX(AddrAbsolute) } // LAX abs
	opcodeTable[0xBF] = func(c *CPU) int { return c.execLAX(AddrAbsoluteY) } // LAX abs,Y
	opcodeTable[0xA7] = func(c *CPU) int { return c.execLAX(AddrZeroPage) } // LAX zp
	opcodeTable[0xB7] = func(c *CPU) int { return c.execLAX(AddrZeroPageY) } // LAX zp,Y
	opcodeTable[0xA3] = func(c *CPU) int { return c.execLAX(AddrIndexedIndirect) } // LAX (zp,X)
	opcodeTable[0xB3] = func(c *CPU) int { return c.execLAX(AddrIndirectIndexed) } // LAX (zp),Y

	// SAX - Store A AND X
	opcodeTable[0x8F] = func(c *CPU) int { return c.execSAX(AddrAbsolute) } // SAX abs
	opcodeTable[0x87] = func(c *CPU) int { return c.execSAX(AddrZeroPage) } // SAX zp
	opcodeTable[0x97] = func(c *CPU) int { return c.execSAX(AddrZeroPageY) } // SAX zp,Y
	opcodeTable[0x83] = func(c *CPU) int { return c.execSAX(AddrIndexedIndirect) } // SAX (zp,X)

	// SBC immediate (illegal opcode 0xEB)
	opcodeTable[0xEB] = func(c *CPU) int { return c.execSBC(AddrImmediate) } // SBC #imm (same as 0xE9)

	// AAC - AND accumulator with immediate (same as AND but sets carry)
	opcodeTable[0x0B] = func(c *CPU) int { return c.execAAC() } // AAC #imm
	opcodeTable[0x2B] = func(c *CPU) int { return c.execAAC() } // AAC #imm

	// ASR - AND with immediate, then LSR
	opcodeTable[0x4B] = func(c *CPU) int { return c.execASR() } // ASR #imm

	// ARR - AND with immediate, then ROR
	opcodeTable[0x6B] = func(c *CPU) int { return c.execARR() } // ARR #imm

	// ATX - AND X register with immediate, transfer to A
	opcodeTable[0xAB] = func(c *CPU) int { return c.execATX() } // ATX #imm

	// AXS - AND X with A, then subtract immediate
	opcodeTable[0xCB] = func(c *CPU) int { return c.execAXS() } // AXS #imm

	// DCP - Decrement and Compare
	opcodeTable[0xCF] = func(c *CPU) int { return c.execDCP(AddrAbsolute) } // DCP abs
	opcodeTable[0xDF] = func(c *CPU) int { return c.execDCP(AddrAbsoluteX) } // DCP abs,X
	opcodeTable[0xDB] = func(c *CPU) int { return c.execDCP(AddrAbsoluteY) } // DCP abs,Y
	opcodeTable[0xC7] = func(c *CPU) int { return c.execDCP(AddrZeroPage) } // DCP zp
	opcodeTable[0xD7] = func(c *CPU) int { return c.execDCP(AddrZeroPageX) } // DCP zp,X
	opcodeTable[0xC3] = func(c *CPU) int { return c.execDCP(AddrIndexedIndirect) } // DCP (zp,X)
	opcodeTable[0xD3] = func(c *CPU) int { return c.execDCP(AddrIndirectIndexed) } // DCP (zp),Y

	// ISB - Increment and Subtract with Borrow
	opcodeTable[0xEF] = func(c *CPU) int { return c.execISB(AddrAbsolute) } // ISB abs
	opcodeTable[0xFF] = func(c *CPU) int { return c.execISB(AddrAbsoluteX) } // ISB abs,X
	opcodeTable[0xFB] = func(c *CPU) int { return c.execISB(AddrAbsoluteY) } // ISB abs,Y
	opcodeTable[0xE7] = func(c *CPU) int { return c.execISB(AddrZeroPage) } // ISB zp
	opcodeTable[0xF7] = func(c *CPU) int { return c.execISB(AddrZeroPageX) } // ISB zp,X
	opcodeTable[0xE3] = func(c *CPU) int { return c.execISB(AddrIndexedIndirect) } // ISB (zp,X)
	opcodeTable[0xF3] = func(c *CPU) int { return c.execISB(AddrIndirectIndexed) } // ISB (zp),Y

	// SLO - Shift Left and OR
	opcodeTable[0x0F] = func(c *CPU) int { return c.execSLO(AddrAbsolute) } // SLO abs
	opcodeTable[0x1F] = func(c *CPU) int { return c.execSLO(AddrAbsoluteX) } // SLO abs,X
	opcodeTable[0x1B] = func(c *CPU) int { return c.execSLO(AddrAbsoluteY) } // SLO abs,Y
	opcodeTable[0x07] = func(c *CPU) int { return c.execSLO(AddrZeroPage) } // SLO zp
	opcodeTable[0x17] = func(c *CPU) int { return c.execSLO(AddrZeroPageX) } // SLO zp,X
	opcodeTable[0x03] = func(c *CPU) int { return c.execSLO(AddrIndexedIndirect) } // SLO (zp,X)
	opcodeTable[0x13] = func(c *CPU) int { return c.execSLO(AddrIndirectIndexed) } // SLO (zp),Y

	// RLA - Rotate Left and AND
	opcodeTable[0x2F] = func(c *CPU) int { return c.execRLA(AddrAbsolute) } // RLA abs
	opcodeTable[0x3F] = func(c *CPU) int { return c.execRLA(AddrAbsoluteX) } // RLA abs,X
	opcodeTable[0x3B] = func(c *CPU) int { return c.execRLA(AddrAbsoluteY) } // RLA abs,Y
	opcodeTable[0x27] = func(c *CPU) int { return c.execRLA(AddrZeroPage) } // RLA zp
	opcodeTable[0x37] = func(c *CPU) int { return c.execRLA(AddrZeroPageX) } // RLA zp,X
	opcodeTable[0x23] = func(c *CPU) int { return c.execRLA(AddrIndexedIndirect) } // RLA (zp,X)
	opcodeTable[0x33] = func(c *CPU) int { return c.execRLA(AddrIndirectIndexed) } // RLA (zp),Y

	// SRE - Shift Right and EOR
	opcodeTable[0x4F] = func(c *CPU) int { return c.execSRE(AddrAbsolute) } // SRE abs
	opcodeTable[0x5F] = func(c *CPU) int { return c.execSRE(AddrAbsoluteX) } // SRE abs,X
	opcodeTable[0x5B] = func(c *CPU) int { return c.execSRE(AddrAbsoluteY) } // SRE abs,Y
	opcodeTable[0x47] = func(c *CPU) int { return c.execSRE(AddrZeroPage) } // SRE zp
	opcodeTable[0x57] = func(c *CPU) int { return c.execSRE(AddrZeroPageX) } // SRE zp,X
	opcodeTable[0x43] = func(c *CPU) int { return c.execSRE(AddrIndexedIndirect) } // SRE (zp,X)
	opcodeTable[0x53] = func(c *CPU) int { return c.execSRE(AddrIndirectIndexed) } // SRE (zp),Y

	// RRA - Rotate Right and Add
	opcodeTable[0x6F] = func(c *CPU) int { return c.execRRA(AddrAbsolute) } // RRA abs
	opcodeTable[0x7F] = func(c *CPU) int { return c.execRRA(AddrAbsoluteX) } // RRA abs,X
	opcodeTable[0x7B] = func(c *CPU) int { return c.execRRA(AddrAbsoluteY) } // RRA abs,Y
	opcodeTable[0x67] = func(c *CPU) int { return c.execRRA(AddrZeroPage) } // RRA zp
	opcodeTable[0x77] = func(c *CPU) int { return c.execRRA(AddrZeroPageX) } // RRA zp,X
	opcodeTable[0x63] = func(c *CPU) int { return c.execRRA(AddrIndexedIndirect) } // RRA (zp,X)
	opcodeTable[0x73] = func(c *CPU) int { return c.execRRA(AddrIndirectIndexed) } // RRA (zp),Y

}

// executeInstruction dispatches through the opcode table. Opcodes with no
// handler (the JAM opcodes and a few unstable undocumented ones) decode as a 2-cycle NOP;
// the first occurrence of each is logged once via the diagnostic Gate.
func (c *CPU) executeInstruction(opcode uint8) int {
	if handler := opcodeTable[opcode]; handler != nil {
		return handler(c)
	}
	c.logUnknownOpcode(opcode)
	return 2
}

// LDA - Load Accumulator
func (c *CPU) execLDA(mode AddressingMode) int {
	value, pageCrossed := c.getOperand(mode)
	c.A = value
	c.setZN(c.A)

	// Return cycles based on addressing mode
	switch mode {
	case AddrImmediate:
		return 2
	case AddrZeroPage:
		return 3
	case AddrZeroPageX:
		return 4
	case AddrAbsolute:
		return 4
	case AddrAbsoluteX, AddrAbsoluteY:
		cycles := 4
		if pageCrossed {
			cycles++
		}
		return cycles
	case AddrIndexedIndirect:
		return 6
	case AddrIndirectIndexed:
		cycles := 5
		if pageCrossed {
			cycles++
		}
		return cycles
	default:
		return 2
	}
}

// execLDAImmediate - LDA immediate mode
func (c *CPU) execLDAImmediate() int {
	return c.execLDA(AddrImmediate)
}

// LDX - Load X Register
func (c *CPU) execLDX(mode AddressingMode) int {
	value, pageCrossed := c.getOperand(mode)
	c.X = value
	c.setZN(c.X)

	// Return cycles based on addressing mode
	switch mode {
	case AddrImmediate:
		return 2
	case AddrZeroPage:
		return 3
	case AddrZeroPageY:
		return 4
	case AddrAbsolute:
		return 4
	case AddrAbsoluteY:
		cycles := 4
		if pageCrossed {
			cycles++
		}
		return cycles
	default:
		return 2
	}
}

// LDY - Load Y Register
func (c *CPU) execLDY(mode AddressingMode) int {
	value, pageCrossed := c.getOperand(mode)
	c.Y = value
	c.setZN(c.Y)

	cycles := getLoadCycles(mode)
	if pageCrossed && (mode == AddrAbsoluteX || mode == AddrIndirectIndexed) {
		cycles++
	}
	return cycles
}

// Helper function to get cycles for load operations
func getLoadCycles(mode AddressingMode) int {
	switch mode {
	case AddrImmediate:
		return 2
	case AddrZeroPage:
		return 3
	case AddrZeroPageX, AddrZeroPageY:
		return 4
	case AddrAbsolute:
		return 4
	case AddrAbsoluteX, AddrAbsoluteY:
		return 4 // +1 if page crossed (handled by caller)
	case AddrIndexedIndirect:
		return 6
	case AddrIndirectIndexed:
		return 5 // +1 if page crossed (handled by caller)
	default:
		return 2
	}
}

// STA - Store Accumulator
func (c *CPU) execSTA(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	c.write(addr, c.A)
	return getStoreCycles(mode)
}

// STX - Store X Register
func (c *CPU) execSTX(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	c.write(addr, c.X)
	return getStoreCycles(mode)
}

// STY - Store Y Register
func (c *CPU) execSTY(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	c.write(addr, c.Y)
	return getStoreCycles(mode)
}

// Helper function to get cycles for store operations
func getStoreCycles(mode AddressingMode) int {
	switch mode {
	case AddrZeroPage:
		return 3
	case AddrZeroPageX, AddrZeroPageY:
		return 4
	case AddrAbsolute:
		return 4
	case AddrAbsoluteX, AddrAbsoluteY:
		return 5
	case AddrIndexedIndirect:
		return 6
	case AddrIndirectIndexed:
		return 6
	default:
		return 3
	}
}

// ADC - Add with Carry
func (c *CPU) execADC(mode AddressingMode) int {
	value, pageCrossed := c.getOperand(mode)

	carry := uint8(0)
	if c.getFlag(FlagCarry) {
		carry = 1
	}

	// NES CPU (2A03/2A07) does not support decimal mode
	// Always use binary mode
	result := uint16(c.A) + uint16(value) + uint16(carry)

	// Set flags
	c.setFlag(FlagCarry, result > 0xFF)
	c.setFlag(FlagOverflow, (c.A^uint8(result))&(value^uint8(result))&0x80 != 0)

	c.A = uint8(result)
	c.setZN(c.A)

	cycles := getLoadCycles(mode)
	if pageCrossed && (mode == AddrAbsoluteX || mode == AddrAbsoluteY || mode == AddrIndirectIndexed) {
		cycles++
	}
	return cycles
}

// SBC - Subtract with Carry
func (c *CPU) execSBC(mode AddressingMode) int {
	value, pageCrossed := c.getOperand(mode)

	carry := uint8(0)
	if c.getFlag(FlagCarry) {
		carry = 1
	}

	// NES CPU (2A03/2A07) does not support decimal mode
	// Always use binary mode
	result := uint16(c.A) - uint16(value) - uint16(1-carry)

	// Set flags
	c.setFlag(FlagCarry, result <= 0xFF)
	c.setFlag(FlagOverflow, (c.A^uint8(result))&((c.A^value)&0x80) != 0)

	c.A = uint8(result)
	c.setZN(c.A)

	// Return cycles based on addressing mode
	switch mode {
	case AddrImmediate:
		return 2
	case AddrZeroPage:
		return 3
	case AddrZeroPageX:
		return 4
	case AddrAbsolute:
		return 4
	case AddrAbsoluteX, AddrAbsoluteY:
		cycles := 4
		if pageCrossed {
			cycles++
		}
		return cycles
	case AddrIndexedIndirect:
		return 6
	case AddrIndirectIndexed:
		cycles := 5
		if pageCrossed {
			cycles++
		}
		return cycles
	default:
		return 2
	}
}

// CMP - Compare Accumulator
func (c *CPU) execCMP(mode AddressingMode) int {
	value, pageCrossed := c.getOperand(mode)

	result := c.A - value
	c.setFlag(FlagCarry, c.A >= value)
	c.setZN(result)

	cycles := getAddressingInfo(0xC9).Cycles // Base cycles for CMP
	if pageCrossed {
		cycles++
	}
	return cycles
}

// Transfer instructions
func (c *CPU) execTAX() int {
	c.X = c.A
	c.setZN(c.X)
	return 2
}

func (c *CPU) execTXA() int {
	c.A = c.X
	c.setZN(c.A)
	return 2
}

func (c *CPU) execTAY() int {
	c.Y = c.A
	c.setZN(c.Y)
	return 2
}

func (c *CPU) execTYA() int {
	c.A = c.Y
	c.setZN(c.A)
	return 2
}

func (c *CPU) execTXS() int {
	c.SP = c.X
	return 2
}

func (c *CPU) execTSX() int {
	c.X = c.SP
	c.setZN(c.X)
	return 2
}

// Flag instructions
func (c *CPU) execCLC() int {
	c.setFlag(FlagCarry, false)
	return 2
}

func (c *CPU) execSEC() int {
	c.setFlag(FlagCarry, true)
	return 2
}

func (c *CPU) execCLI() int {
	c.setFlag(FlagInterrupt, false)
	return 2
}

func (c *CPU) execSEI() int {
	c.setFlag(FlagInterrupt, true)
	return 2
}

func (c *CPU) execCLV() int {
	c.setFlag(FlagOverflow, false)
	return 2
}

func (c *CPU) execCLD() int {
	c.setFlag(FlagDecimal, false)
	return 2
}

func (c *CPU) execSED() int {
	c.setFlag(FlagDecimal, true)
	return 2
}

// Stack instructions
func (c *CPU) execPHA() int {
	c.push(c.A)
	return 3
}

func (c *CPU) execPLA() int {
	c.A = c.pop()
	c.setZN(c.A)
	return 4
}

func (c *CPU) execPHP() int {
	c.push(c.P | FlagBreak)
	return 3
}

func (c *CPU) execPLP() int {
	c.P = c.pop()
	c.P |= FlagUnused
	c.P &^= FlagBreak
	return 4
}

// Branch instructions
func (c *CPU) execBEQ() int {
	return c.branch(c.getFlag(FlagZero))
}

func (c *CPU) execBNE() int {
	return c.branch(!c.getFlag(FlagZero))
}

func (c *CPU) execBCC() int {
	return c.branch(!c.getFlag(FlagCarry))
}

func (c *CPU) execBCS() int {
	return c.branch(c.getFlag(FlagCarry))
}

func (c *CPU) execBPL() int {
	return c.branch(!c.getFlag(FlagNegative))
}

func (c *CPU) execBMI() int {
	return c.branch(c.getFlag(FlagNegative))
}

func (c *CPU) execBVC() int {
	return c.branch(!c.getFlag(FlagOverflow))
}

func (c *CPU) execBVS() int {
	return c.branch(c.getFlag(FlagOverflow))
}

// branch helper function - handles relative addressing and timing
func (c *CPU) branch(condition bool) int {
	offset := int8(c.read(c.PC))
	c.PC++

	if condition {
		oldPC := c.PC
		newPC := uint16(int32(c.PC) + int32(offset))
		c.PC = newPC

		// Branch taken: 3 cycles base, +1 if page crossed
		cycles := 3
		if (oldPC & 0xFF00) != (newPC & 0xFF00) {
			cycles = 4 // Page boundary crossed
		}
		return cycles
	}

	// Branch not taken: 2 cycles
	return 2
}

// Jump instructions
func (c *CPU) execJMPAbsolute() int {
	low := c.read(c.PC)
	c.PC++
	high := c.read(c.PC)
	c.PC = uint16(high)<<8 | uint16(low)
	return 3
}

func (c *CPU) execJMPIndirect() int {
	// Read indirect address
	low := c.read(c.PC)
	c.PC++
	high := c.read(c.PC)
	indirectAddr := uint16(high)<<8 | uint16(low)

	// Read actual jump address with 6502 page boundary bug
	// If indirect address low byte is 0xFF, high byte is read from same page
	var actualLow, actualHigh uint8
	actualLow = c.read(indirectAddr)
	if (indirectAddr & 0xFF) == 0xFF {
		// Bug: reads from same page instead of next page
		actualHigh = c.read(indirectAddr & 0xFF00)
	} else {
		actualHigh = c.read(indirectAddr + 1)
	}

	c.PC = uint16(actualHigh)<<8 | uint16(actualLow)
	return 5
}

func (c *CPU) execJSR() int {
	// Read target address
	low := c.read(c.PC)
	c.PC++
	high := c.read(c.PC)

	// Push return address - 1 (PC is currently pointing to high byte)
	returnAddr := c.PC
	c.push(uint8(returnAddr >> 8))   // Push high byte
	c.push(uint8(returnAddr & 0xFF)) // Push low byte

	// Jump to subroutine
	c.PC = uint16(high)<<8 | uint16(low)
	return 6
}

func (c *CPU) execRTS() int {
	// Pop return address
	low := c.pop()
	high := c.pop()
	c.PC = (uint16(high)<<8 | uint16(low)) + 1
	return 6
}

func (c *CPU) execRTI() int {
	// Pop status register
	c.P = c.pop()
	c.P |= FlagUnused
	c.P &^= FlagBreak

	// Pop return address
	low := c.pop()
	high := c.pop()
	c.PC = uint16(high)<<8 | uint16(low)
	return 6
}

// Logical operations
func (c *CPU) execAND(mode AddressingMode) int {
	value, pageCrossed := c.getOperand(mode)
	c.A = c.A & value
	c.setZN(c.A)

	cycles := getLogicalCycles(mode)
	if pageCrossed && (mode == AddrAbsoluteX || mode == AddrAbsoluteY || mode == AddrIndirectIndexed) {
		cycles++
	}
	return cycles
}

func (c *CPU) execORA(mode AddressingMode) int {
	value, pageCrossed := c.getOperand(mode)
	c.A = c.A | value
	c.setZN(c.A)

	cycles := getLogicalCycles(mode)
	if pageCrossed && (mode == AddrAbsoluteX || mode == AddrAbsoluteY || mode == AddrIndirectIndexed) {
		cycles++
	}
	return cycles
}

func (c *CPU) execEOR(mode AddressingMode) int {
	value, pageCrossed := c.getOperand(mode)
	c.A = c.A ^ value
	c.setZN(c.A)

	cycles := getLogicalCycles(mode)
	if pageCrossed && (mode == AddrAbsoluteX || mode == AddrAbsoluteY || mode == AddrIndirectIndexed) {
		cycles++
	}
	return cycles
}

// Helper function to get cycles for logical operations
func getLogicalCycles(mode AddressingMode) int {
	switch mode {
	case AddrImmediate:
		return 2
	case AddrZeroPage:
		return 3
	case AddrZeroPageX:
		return 4
	case AddrAbsolute:
		return 4
	case AddrAbsoluteX, AddrAbsoluteY:
		return 4 // +1 if page crossed (handled by caller)
	case AddrIndexedIndirect:
		return 6
	case AddrIndirectIndexed:
		return 5 // +1 if page crossed (handled by caller)
	default:
		return 2
	}
}

// Shift and rotate instructions
func (c *CPU) execASLAccumulator() int {
	c.setFlag(FlagCarry, c.A&0x80 != 0)
	c.A = c.A << 1
	c.setZN(c.A)
	return 2
}

func (c *CPU) execASL(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	value := c.read(addr)

	c.setFlag(FlagCarry, value&0x80 != 0)
	result := value << 1
	c.setZN(result)

	c.write(addr, result)
	return getShiftCycles(mode)
}

func (c *CPU) execLSRAccumulator() int {
	c.setFlag(FlagCarry, c.A&0x01 != 0)
	c.A = c.A >> 1
	c.setZN(c.A)
	return 2
}

func (c *CPU) execLSR(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	value := c.read(addr)

	c.setFlag(FlagCarry, value&0x01 != 0)
	result := value >> 1
	c.setZN(result)

	c.write(addr, result)
	return getShiftCycles(mode)
}

func (c *CPU) execROLAccumulator() int {
	oldCarry := uint8(0)
	if c.getFlag(FlagCarry) {
		oldCarry = 1
	}

	c.setFlag(FlagCarry, c.A&0x80 != 0)
	c.A = (c.A << 1) | oldCarry
	c.setZN(c.A)
	return 2
}

func (c *CPU) execROL(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	value := c.read(addr)

	oldCarry := uint8(0)
	if c.getFlag(FlagCarry) {
		oldCarry = 1
	}

	c.setFlag(FlagCarry, value&0x80 != 0)
	result := (value << 1) | oldCarry
	c.setZN(result)

	c.write(addr, result)
	return getShiftCycles(mode)
}

func (c *CPU) execRORAccumulator() int {
	oldCarry := uint8(0)
	if c.getFlag(FlagCarry) {
		oldCarry = 0x80
	}

	c.setFlag(FlagCarry, c.A&0x01 != 0)
	c.A = (c.A >> 1) | oldCarry
	c.setZN(c.A)
	return 2
}

func (c *CPU) execROR(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	value := c.read(addr)

	oldCarry := uint8(0)
	if c.getFlag(FlagCarry) {
		oldCarry = 0x80
	}

	c.setFlag(FlagCarry, value&0x01 != 0)
	result := (value >> 1) | oldCarry
	c.setZN(result)

	c.write(addr, result)
	return getShiftCycles(mode)
}

// Helper function to get cycles for shift/rotate operations
func getShiftCycles(mode AddressingMode) int {
	switch mode {
	case AddrZeroPage:
		return 5
	case AddrZeroPageX:
		return 6
	case AddrAbsolute:
		return 6
	case AddrAbsoluteX:
		return 7
	default:
		return 2
	}
}

// Increment/Decrement instructions
func (c *CPU) execINC(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	value := c.read(addr)
	result := value + 1
	c.setZN(result)
	c.write(addr, result)
	return getShiftCycles(mode)
}

func (c *CPU) execDEC(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	value := c.read(addr)
	result := value - 1

	c.setZN(result)

	c.write(addr, result)
	return getShiftCycles(mode)
}

func (c *CPU) execINX() int {
	c.X++
	c.setZN(c.X)
	return 2
}

func (c *CPU) execDEX() int {
	c.X--
	c.setZN(c.X)
	return 2
}

func (c *CPU) execINY() int {
	c.Y++
	c.setZN(c.Y)
	return 2
}

func (c *CPU) execDEY() int {
	c.Y--
	c.setZN(c.Y)
	return 2
}

// Compare instructions
func (c *CPU) execCPX(mode AddressingMode) int {
	value, pageCrossed := c.getOperand(mode)
	result := c.X - value
	c.setFlag(FlagCarry, c.X >= value)
	c.setZN(result)

	cycles := getLogicalCycles(mode)
	if pageCrossed && (mode == AddrAbsoluteX || mode == AddrAbsoluteY || mode == AddrIndirectIndexed) {
		cycles++
	}
	return cycles
}

func (c *CPU) execCPY(mode AddressingMode) int {
	value, pageCrossed := c.getOperand(mode)
	result := c.Y - value
	c.setFlag(FlagCarry, c.Y >= value)
	c.setZN(result)

	cycles := getLogicalCycles(mode)
	if pageCrossed && (mode == AddrAbsoluteX || mode == AddrAbsoluteY || mode == AddrIndirectIndexed) {
		cycles++
	}
	return cycles
}

// Bit test instruction
func (c *CPU) execBIT(mode AddressingMode) int {
	value, _ := c.getOperand(mode)
	result := c.A & value

	c.setFlag(FlagZero, result == 0)
	c.setFlag(FlagNegative, value&0x80 != 0) // Bit 7 of memory
	c.setFlag(FlagOverflow, value&0x40 != 0) // Bit 6 of memory

	return getLogicalCycles(mode)
}

// BRK instruction - software interrupt
func (c *CPU) execBRK() int {
	c.PC++ // BRK is effectively a 2-byte instruction
	c.push16(c.PC)
	c.push(c.P | FlagBreak)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.read16(0xFFFE) // IRQ vector
	return 7
}

// NOP
func (c *CPU) execNOP() int {
	return 2
}

// Helper function to set Zero and Negative flags
func (c *CPU) setZN(value uint8) {
	c.setFlag(FlagZero, value == 0)
	c.setFlag(FlagNegative, value&0x80 != 0)
}

// Illegal opcodes implementation

// LAX - Load Accumulator and X register
func (c *CPU) execLAX(mode AddressingMode) int {
	value, pageCrossed := c.getOperand(mode)
	c.A = value
	c.X = value
	c.setZN(value)

	baseCycles := map[AddressingMode]int{
		AddrAbsolute:        4,
		AddrAbsoluteY:       4,
		AddrZeroPage:        3,
		AddrZeroPageY:       4,
		AddrIndexedIndirect: 6,
		AddrIndirectIndexed: 5,
	}[mode]

	if pageCrossed && (mode == AddrAbsoluteY || mode == AddrIndirectIndexed) {
		baseCycles++
	}
	return baseCycles
}

// SAX - Store A AND X
func (c *CPU) execSAX(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	result := c.A & c.X
	c.write(addr, result)

	return map[AddressingMode]int{
		AddrAbsolute:        4,
		AddrZeroPage:        3,
		AddrZeroPageY:       4,
		AddrIndexedIndirect: 6,
	}[mode]
}

// DCP - Decrement and Compare
func (c *CPU) execDCP(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	value := c.read(addr)
	value--
	c.write(addr, value)

	// Compare with A register
	result := uint16(c.A) - uint16(value)
	c.setFlag(FlagCarry, result < 0x100)
	c.setZN(uint8(result))

	baseCycles := map[AddressingMode]int{
		AddrAbsolute:        6,
		AddrAbsoluteX:       7,
		AddrAbsoluteY:       7,
		AddrZeroPage:        5,
		AddrZeroPageX:       6,
		AddrIndexedIndirect: 8,
		AddrIndirectIndexed: 8,
	}[mode]

	return baseCycles
}

// ISB - Increment and Subtract with Borrow
func (c *CPU) execISB(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	value := c.read(addr)
	value++
	c.write(addr, value)

	// Perform SBC with the incremented value
	c.performSBC(value)

	baseCycles := map[AddressingMode]int{
		AddrAbsolute:        6,
		AddrAbsoluteX:       7,
		AddrAbsoluteY:       7,
		AddrZeroPage:        5,
		AddrZeroPageX:       6,
		AddrIndexedIndirect: 8,
		AddrIndirectIndexed: 8,
	}[mode]

	return baseCycles
}

// SLO - Shift Left and OR
func (c *CPU) execSLO(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	value := c.read(addr)

	// Shift left
	c.setFlag(FlagCarry, value&0x80 != 0)
	value <<= 1
	c.write(addr, value)

	// OR with A
	c.A |= value
	c.setZN(c.A)

	baseCycles := map[AddressingMode]int{
		AddrAbsolute:        6,
		AddrAbsoluteX:       7,
		AddrAbsoluteY:       7,
		AddrZeroPage:        5,
		AddrZeroPageX:       6,
		AddrIndexedIndirect: 8,
		AddrIndirectIndexed: 8,
	}[mode]

	return baseCycles
}

// RLA - Rotate Left and AND
func (c *CPU) execRLA(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	value := c.read(addr)

	// Rotate left through carry
	newCarry := value&0x80 != 0
	carryBit := uint8(0)
	if c.getFlag(FlagCarry) {
		carryBit = 1
	}
	value = (value << 1) | carryBit
	c.setFlag(FlagCarry, newCarry)
	c.write(addr, value)

	// AND with A
	c.A &= value
	c.setZN(c.A)

	baseCycles := map[AddressingMode]int{
		AddrAbsolute:        6,
		AddrAbsoluteX:       7,
		AddrAbsoluteY:       7,
		AddrZeroPage:        5,
		AddrZeroPageX:       6,
		AddrIndexedIndirect: 8,
		AddrIndirectIndexed: 8,
	}[mode]

	return baseCycles
}

// SRE - Shift Right and EOR
func (c *CPU) execSRE(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	value := c.read(addr)

	// Shift right
	c.setFlag(FlagCarry, value&0x01 != 0)
	value >>= 1
	c.write(addr, value)

	// EOR with A
	c.A ^= value
	c.setZN(c.A)

	baseCycles := map[AddressingMode]int{
		AddrAbsolute:        6,
		AddrAbsoluteX:       7,
		AddrAbsoluteY:       7,
		AddrZeroPage:        5,
		AddrZeroPageX:       6,
		AddrIndexedIndirect: 8,
		AddrIndirectIndexed: 8,
	}[mode]

	return baseCycles
}

// RRA - Rotate Right and Add
func (c *CPU) execRRA(mode AddressingMode) int {
	addr, _ := c.getOperandAddress(mode)
	value := c.read(addr)

	// Rotate right through carry
	newCarry := value&0x01 != 0
	carryBit := uint8(0)
	if c.getFlag(FlagCarry) {
		carryBit = 0x80
	}
	value = (value >> 1) | carryBit
	c.setFlag(FlagCarry, newCarry)
	c.write(addr, value)

	// Add to A with carry
	c.performADC(value)

	baseCycles := map[AddressingMode]int{
		AddrAbsolute:        6,
		AddrAbsoluteX:       7,
		AddrAbsoluteY:       7,
		AddrZeroPage:        5,
		AddrZeroPageX:       6,
		AddrIndexedIndirect: 8,
		AddrIndirectIndexed: 8,
	}[mode]

	return baseCycles
}

// Helper function for SBC operation (used by ISB)
func (c *CPU) performSBC(value uint8) {
	// SBC is equivalent to ADC with inverted value
	c.performADC(^value)
}

// Helper function for ADC operation (used by RRA)
func (c *CPU) performADC(value uint8) {
	carryValue := uint16(0)
	if c.getFlag(FlagCarry) {
		carryValue = 1
	}
	result := uint16(c.A) + uint16(value) + carryValue

	// Set overflow flag
	overflow := (c.A^value)&0x80 == 0 && (c.A^uint8(result))&0x80 != 0
	c.setFlag(FlagOverflow, overflow)

	// Set carry flag
	c.setFlag(FlagCarry, result > 0xFF)

	c.A = uint8(result)
	c.setZN(c.A)
}

// AAC - AND accumulator with immediate (also sets carry flag)
func (c *CPU) execAAC() int {
	value := c.read(c.PC)
	c.PC++

	c.A &= value
	c.setZN(c.A)
	c.setFlag(FlagCarry, c.A&0x80 != 0) // Set carry flag based on bit 7

	return 2
}

// ASR - AND with immediate, then LSR
func (c *CPU) execASR() int {
	value := c.read(c.PC)
	c.PC++

	// AND with immediate
	c.A &= value

	// Then LSR (logical shift right)
	c.setFlag(FlagCarry, c.A&0x01 != 0)
	c.A >>= 1
	c.setZN(c.A)

	return 2
}

// ARR - AND with immediate, then ROR
func (c *CPU) execARR() int {
	value := c.read(c.PC)
	c.PC++

	// AND with immediate
	c.A &= value

	// Then ROR (rotate right through carry)
	newCarry := c.A&0x01 != 0
	carryBit := uint8(0)
	if c.getFlag(FlagCarry) {
		carryBit = 0x80
	}
	c.A = (c.A >> 1) | carryBit
	c.setFlag(FlagCarry, newCarry)
	c.setZN(c.A)

	// ARR sets overflow and carry flags in a special way
	// V = bit 6 XOR bit 5 of result
	c.setFlag(FlagOverflow, ((c.A>>6)&1)^((c.A>>5)&1) != 0)
	// C = bit 6 of result
	c.setFlag(FlagCarry, c.A&0x40 != 0)

	return 2
}

// ATX - Load immediate to A and X (also known as LXA)
func (c *CPU) execATX() int {
	value := c.read(c.PC)
	c.PC++

	// ATX (LXA) loads immediate value to both A and X
	// Simple implementation: just load the value
	c.A = value
	c.X = value
	c.setZN(c.A)

	return 2
}

// AXS - AND X with A, then subtract immediate (without borrow)
func (c *CPU) execAXS() int {
	value := c.read(c.PC)
	c.PC++

	// AND X with A
	temp := c.A & c.X

	// Subtract immediate (without borrow)
	result := uint16(temp) - uint16(value)
	c.X = uint8(result)

	// Set flags
	c.setFlag(FlagCarry, result < 0x100) // Set carry if no borrow
	c.setZN(c.X)

	return 2
}
