package nand

import "fmt"

// ProgramSize is the fixed depth of both ROM and RAM: exactly 16 words.
const ProgramSize = 16

// CombinedMemoryUnit is the machine's writable state: the A and D
// registers plus the 16x16 RAM addressed by A. Writing to PA means
// writing the RAM cell currently selected by A.
type CombinedMemoryUnit struct {
	regA *Register16
	regD *Register16
	ram  *Ram16x16
}

// NewCombinedMemoryUnit wires the A register, D register, and RAM, all
// sharing the result bus x and the clock.
func NewCombinedMemoryUnit(selA, selD, selPA *Signal, x *Bus, clk *Signal, a, d, pa *Bus) *CombinedMemoryUnit {
	return &CombinedMemoryUnit{
		regA: NewRegister16(selA, x, clk, a),
		regD: NewRegister16(selD, x, clk, d),
		ram:  NewRam16x16(selPA, x, a, clk, pa),
	}
}

func (g *CombinedMemoryUnit) Update() {
	g.regA.Update()
	g.regD.Update()
	g.ram.Update()
}

// Observation is a read-only snapshot of the machine's externally visible
// state: PC, A, D, PA, and halt.
type Observation struct {
	PC   uint16
	A    uint16
	D    uint16
	PA   uint16
	Halt bool
}

// Computer wires a ROM-fed fetch/execute loop: the program counter
// addresses ROM, the control unit decodes the fetched instruction against
// the current A/D/PA, and the combined memory unit latches the result on
// the next clock edge. halt is bit 14 of the current instruction whenever
// bit 15 (CI) is set.
//
// clk and halt are owned by the caller, not by Computer: the caller decides
// how to drive the clock and what to do when halt is observed.
type Computer struct {
	j       Signal
	aBus    *Bus
	pc      *Bus
	counter *Counter

	instr *Bus
	rom   *Rom16x16

	d, pa *Bus
	r     *Bus
	selA  Signal
	selD  Signal
	selPA Signal

	control *ControlUnit
	haltBit Signal
	haltAnd *AndGate
	connect *Connector

	memory *CombinedMemoryUnit

	clk  *Signal
	halt *Signal
}

// NewComputer builds a Computer from a 16-word program image and the
// externally owned clk/halt signals. It returns an error if program does
// not have exactly ProgramSize words.
func NewComputer(program []uint16, clk, halt *Signal) (*Computer, error) {
	if len(program) != ProgramSize {
		return nil, fmt.Errorf("nand: program must have exactly %d words, got %d", ProgramSize, len(program))
	}
	var image [ProgramSize]uint16
	copy(image[:], program)

	c := &Computer{
		aBus:  NewBus(16),
		pc:    NewBus(16),
		instr: NewBus(16),
		d:     NewBus(16),
		pa:    NewBus(16),
		r:     NewBus(16),
		clk:   clk,
		halt:  halt,
	}

	c.counter = NewCounter(&c.j, c.aBus, clk, c.pc)
	c.rom = NewRom16x16(image, c.pc, c.instr)
	c.control = NewControlUnit(c.instr, c.aBus, c.d, c.pa, c.r, &c.selA, &c.selD, &c.selPA, &c.j)
	c.haltAnd = NewAndGate(c.instr.Ref(15), c.instr.Ref(14), &c.haltBit)
	c.connect = NewConnector(&c.haltBit, halt)
	c.memory = NewCombinedMemoryUnit(&c.selA, &c.selD, &c.selPA, c.r, clk, c.aBus, c.d, c.pa)

	return c, nil
}

// Update runs one combinational pass: ROM address-settling, control unit
// decode, memory read paths (write latching is driven by the clock edge),
// next-PC computation, then the halt connector. This order respects the
// network's dependency order: every gate's inputs are settled before it is
// updated.
func (c *Computer) Update() {
	c.rom.Update()
	c.control.Update()
	c.memory.Update()
	c.counter.Update()
	c.haltAnd.Update()
	c.connect.Update()
}

// PC returns the current program counter.
func (c *Computer) PC() uint16 {
	return c.pc.GetInt()
}

// A returns the current value of register A.
func (c *Computer) A() uint16 {
	return c.aBus.GetInt()
}

// D returns the current value of register D.
func (c *Computer) D() uint16 {
	return c.d.GetInt()
}

// PA returns the current value of RAM[A].
func (c *Computer) PA() uint16 {
	return c.pa.GetInt()
}

// Halt returns whether the halt line is currently asserted.
func (c *Computer) Halt() bool {
	return c.halt.Get() != 0
}

// Observe takes a read-only snapshot of the machine's externally visible
// state.
func (c *Computer) Observe() Observation {
	return Observation{
		PC:   c.PC(),
		A:    c.A(),
		D:    c.D(),
		PA:   c.PA(),
		Halt: c.Halt(),
	}
}

// Cycle drives one full clock pulse (rising edge then falling edge), each
// followed by an Update, so that every flip-flop in the network latches
// exactly once.
func (c *Computer) Cycle() {
	c.clk.Set(1)
	c.Update()
	c.clk.Set(0)
	c.Update()
}

// Run drives cycles until the halt line is observed, matching the
// driver's stop condition. It returns the number of cycles executed.
// guard bounds the number of cycles to avoid spinning forever on a
// program that never halts; Run returns early with ok=false if guard is
// exceeded.
func (c *Computer) Run(guard int) (cycles int, ok bool) {
	for !c.Halt() {
		if cycles >= guard {
			return cycles, false
		}
		c.Cycle()
		cycles++
	}
	return cycles, true
}
