// Package isa names the bit layout of the 16-bit instruction word the
// nand.Computer executes, and the canonical countdown program used in
// tests and by the CLI driver.
//
// Bit 15 (CI) distinguishes constant-load (0) from compute (1):
//
//	[15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0]
//	 ci halt  - sm  -  u  o1 o0 zx sw  a  d *a lt eq gt
package isa

// CI is bit 15: 0 selects constant-load, 1 selects compute.
const CI = uint16(0x8000)

// Halt is CI with bit 14 set; the canonical halt word. Bit 14 is also the
// halt-line passthrough on every compute word, so any compute instruction
// may be combined with Halt to stop the machine after it runs.
const Halt = CI | 0x4000

// SM (bit 12) selects the ALU's Y operand: 0 -> A, 1 -> *A (RAM[A]).
const SM = CI | 0x1000

// ALU operation selectors (bits 10..8).
const (
	OpAnd = CI | (0x0 << 8)
	OpOr  = CI | (0x1 << 8)
	OpXor = CI | (0x2 << 8)
	OpNot = CI | (0x3 << 8)
	OpAdd = CI | (0x4 << 8)
	OpSub = CI | (0x5 << 8)
	OpInc = CI | (0x6 << 8)
	OpDec = CI | (0x7 << 8)
)

// Operand preprocessing flags (bits 7..6).
const (
	ZX = CI | 0x0080 // force lhs to zero
	SW = CI | 0x0040 // swap lhs/rhs before ZX is applied
)

// Destination write-enables (bits 5..3).
const (
	DestA  = CI | 0x0020
	DestD  = CI | 0x0010
	DestPA = CI | 0x0008
)

// Jump condition selectors (bits 2..0), combined over the sign of the ALU
// result: lt (R<0), eq (R==0), gt (R>0).
const (
	CondLT = CI | 0x0004
	CondEQ = CI | 0x0002
	CondGT = CI | 0x0001
	Always = CI | 0x0007
)

// CountdownProgram is the canonical program from the reference
// implementation: D <- 4, then decrement D while jumping back to itself
// until D reaches zero, then halt.
//
//	0: 0x0004                         ; A = 4
//	1: OpAdd|ZX|DestD                 ; D = 0 + A = A
//	2: 0x0003                         ; A = 3
//	3: OpDec|DestD|CondLT|CondGT      ; D--; jump to A unless D == 0
//	4: Halt
var CountdownProgram = [16]uint16{
	0x0004,
	OpAdd | ZX | DestD,
	0x0003,
	OpDec | DestD | CondLT | CondGT,
	Halt,
	Halt,
	Halt,
	Halt,
	Halt,
	Halt,
	Halt,
	Halt,
	Halt,
	Halt,
	Halt,
	Halt,
}
