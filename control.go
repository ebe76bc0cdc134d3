package nand

// AluInstruction implements the compute path (instruction bit 15 = 1): it
// preprocesses the ALU's Y operand (A or *A, chosen by bit 12), runs the
// ALU, evaluates the jump condition against the result, and passes the
// three destination write-enable bits straight through.
type AluInstruction struct {
	y       *Bus
	selectY *SelectNGate
	alu     *ALU
	cond    *ConditionUnit
	selA    *Connector
	selD    *Connector
	selPA   *Connector
}

// NewAluInstruction wires the compute datapath. instr, a, d, pa are 16-bit
// buses; r is the ALU result bus; selA/selD/selPA/j are the write-enables
// and jump line this instruction produces when it is in fact a compute
// word (bit 15 selection between this and the constant-load path happens
// one layer up, in ControlUnit).
func NewAluInstruction(instr, a, d, pa, r *Bus, selA, selD, selPA, j *Signal) *AluInstruction {
	if instr.Width() != 16 {
		panic("nand: AluInstruction requires a 16-bit instruction bus")
	}
	g := &AluInstruction{y: NewBus(16)}
	g.selectY = NewSelectNGate(instr.Ref(12), pa, a, g.y)

	g.alu = NewALU(instr.Ref(10), instr.Ref(9), instr.Ref(8), instr.Ref(7), instr.Ref(6), d, g.y, r)
	g.cond = NewConditionUnit(instr.Ref(2), instr.Ref(1), instr.Ref(0), r, j)
	g.selA = NewConnector(instr.Ref(5), selA)
	g.selD = NewConnector(instr.Ref(4), selD)
	g.selPA = NewConnector(instr.Ref(3), selPA)
	return g
}

func (g *AluInstruction) Update() {
	g.selectY.Update()
	g.alu.Update()
	g.cond.Update()
	g.selA.Update()
	g.selD.Update()
	g.selPA.Update()
}

// ControlSelectorGate chooses between the compute-path outputs (r1, a1,
// d1, pa1, j1) and the constant-load outputs (r0, a0, d0, pa0, j0) based
// on s (instruction bit 15, the CI bit).
type ControlSelectorGate struct {
	chooseR  *SelectNGate
	chooseA  *SelectGate
	chooseD  *SelectGate
	choosePA *SelectGate
	chooseJ  *SelectGate
}

// NewControlSelectorGate wires the compute/constant-load selector.
func NewControlSelectorGate(s *Signal, r1 *Bus, a1, d1, pa1, j1 *Signal, r0 *Bus, a0, d0, pa0, j0 *Signal, r *Bus, a, d, pa, j *Signal) *ControlSelectorGate {
	return &ControlSelectorGate{
		chooseR:  NewSelectNGate(s, r1, r0, r),
		chooseA:  NewSelectGate(s, a1, a0, a),
		chooseD:  NewSelectGate(s, d1, d0, d),
		choosePA: NewSelectGate(s, pa1, pa0, pa),
		chooseJ:  NewSelectGate(s, j1, j0, j),
	}
}

func (g *ControlSelectorGate) Update() {
	g.chooseR.Update()
	g.chooseA.Update()
	g.chooseD.Update()
	g.choosePA.Update()
	g.chooseJ.Update()
}

// ControlUnit is the instruction decoder. When instruction bit 15 is 0, it
// forces R = instr with the A write-enable asserted and no jump (bits 0..14
// of a constant-load word are payload only, never control; see the design
// notes). When bit 15 is 1, it runs the compute datapath (AluInstruction)
// and passes its outputs through.
type ControlUnit struct {
	r1                             *Bus
	selA1, selD1, selPA1, selJ1    Signal
	alu                            *AluInstruction
	zero, one                      Signal
	nand                           *NandGate
	selector                       *ControlSelectorGate
}

// NewControlUnit wires the control unit. instr, a, d, pa are 16-bit buses
// observing the current architectural registers; r, selA, selD, selPA, j
// are this cycle's outputs.
func NewControlUnit(instr, a, d, pa, r *Bus, selA, selD, selPA, j *Signal) *ControlUnit {
	g := &ControlUnit{r1: NewBus(16)}
	g.alu = NewAluInstruction(instr, a, d, pa, g.r1, &g.selA1, &g.selD1, &g.selPA1, &g.selJ1)
	g.nand = NewNandGate(&g.zero, &g.zero, &g.one)
	g.selector = NewControlSelectorGate(instr.Ref(15), g.r1, &g.selA1, &g.selD1, &g.selPA1, &g.selJ1,
		instr, &g.one, &g.zero, &g.zero, &g.zero,
		r, selA, selD, selPA, j)
	return g
}

func (g *ControlUnit) Update() {
	g.alu.Update()
	g.nand.Update()
	g.selector.Update()
}
