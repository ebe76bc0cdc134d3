package nand

// LogicUnit computes one of four bitwise operations over 16-bit operands,
// selected by (op1, op0): 00 AND, 01 OR, 10 XOR, 11 NOT (of lhs).
type LogicUnit struct {
	s1, s2, s3, s4, s5, s6 *Bus
	and                    *AndNGate
	or                     *OrNGate
	select1                *SelectNGate
	xor                    *XorNGate
	not                    *NotNGate
	select2                *SelectNGate
	sel                    *SelectNGate
}

// NewLogicUnit wires the logic unit.
func NewLogicUnit(op1, op0 *Signal, lhs, rhs, out *Bus) *LogicUnit {
	requireSameWidth(lhs, rhs, out)
	w := lhs.Width()
	g := &LogicUnit{
		s1: NewBus(w), s2: NewBus(w), s3: NewBus(w),
		s4: NewBus(w), s5: NewBus(w), s6: NewBus(w),
	}
	g.and = NewAndNGate(lhs, rhs, g.s1)
	g.or = NewOrNGate(lhs, rhs, g.s2)
	g.select1 = NewSelectNGate(op0, g.s2, g.s1, g.s3)

	g.xor = NewXorNGate(lhs, rhs, g.s4)
	g.not = NewNotNGate(lhs, g.s5)
	g.select2 = NewSelectNGate(op0, g.s5, g.s4, g.s6)

	g.sel = NewSelectNGate(op1, g.s6, g.s3, out)
	return g
}

func (g *LogicUnit) Update() {
	g.and.Update()
	g.or.Update()
	g.select1.Update()
	g.not.Update()
	g.xor.Update()
	g.select2.Update()
	g.sel.Update()
}

// ArithmeticUnit computes one of four operations over 16-bit operands,
// selected by (op1, op0): 00 lhs+rhs, 01 lhs-rhs, 10 lhs+1, 11 lhs-1.
type ArithmeticUnit struct {
	zero, one            Signal
	nand                 *NandGate
	c1, c2               Signal
	xyAdd, xySub, xy     *Bus
	addXY                *Add16Gate
	subXY                *Sub16Gate
	select1              *SelectNGate
	oneBus               *Bus
	x1Add, x1Sub, x1     *Bus
	addX1                *Add16Gate
	subX1                *Sub16Gate
	select2              *SelectNGate
	sel                  *SelectNGate
}

// NewArithmeticUnit wires the arithmetic unit.
func NewArithmeticUnit(op1, op0 *Signal, lhs, rhs, out *Bus) *ArithmeticUnit {
	requireSameWidth(lhs, rhs, out)
	w := lhs.Width()
	g := &ArithmeticUnit{
		xyAdd: NewBus(w), xySub: NewBus(w), xy: NewBus(w),
		oneBus: NewBus(w),
		x1Add:  NewBus(w), x1Sub: NewBus(w), x1: NewBus(w),
	}
	g.addXY = NewAdd16Gate(lhs, rhs, &g.zero, g.xyAdd, &g.c1)
	g.subXY = NewSub16Gate(lhs, rhs, g.xySub)
	g.select1 = NewSelectNGate(op0, g.xySub, g.xyAdd, g.xy)

	g.nand = NewNandGate(&g.zero, &g.zero, g.oneBus.Ref(0))
	g.addX1 = NewAdd16Gate(lhs, g.oneBus, &g.zero, g.x1Add, &g.c2)
	g.subX1 = NewSub16Gate(lhs, g.oneBus, g.x1Sub)
	g.select2 = NewSelectNGate(op0, g.x1Sub, g.x1Add, g.x1)

	g.sel = NewSelectNGate(op1, g.x1, g.xy, out)
	return g
}

func (g *ArithmeticUnit) Update() {
	g.addXY.Update()
	g.subXY.Update()
	g.select1.Update()

	g.nand.Update()
	g.addX1.Update()
	g.subX1.Update()
	g.select2.Update()

	g.sel.Update()
}

// ALU preprocesses its operands (X = D register, Y = A or *A) with zx/sw
// before routing them to both the logic and arithmetic units, then selects
// between the two results with u (0 = logic, 1 = arithmetic).
type ALU struct {
	tmpLHS          *Bus
	selectXY        *SelectNGate
	zeroBus         *Bus
	lhs             *Bus
	selectZX        *SelectNGate
	rhs             *Bus
	selectYX        *SelectNGate
	logicOutput     *Bus
	logic           *LogicUnit
	arithOutput     *Bus
	arith           *ArithmeticUnit
	sel             *SelectNGate
}

// NewALU wires the combined arithmetic/logic unit. u selects arithmetic (1)
// vs logic (0); op1/op0 select the operation within that unit; zx forces
// lhs to zero; sw swaps x and y before zx is applied.
func NewALU(u, op1, op0, zx, sw *Signal, x, y, out *Bus) *ALU {
	requireSameWidth(x, y, out)
	w := x.Width()
	g := &ALU{
		tmpLHS: NewBus(w), zeroBus: NewBus(w), lhs: NewBus(w), rhs: NewBus(w),
		logicOutput: NewBus(w), arithOutput: NewBus(w),
	}
	g.selectXY = NewSelectNGate(sw, y, x, g.tmpLHS)
	g.selectZX = NewSelectNGate(zx, g.zeroBus, g.tmpLHS, g.lhs)
	g.selectYX = NewSelectNGate(sw, x, y, g.rhs)

	g.logic = NewLogicUnit(op1, op0, g.lhs, g.rhs, g.logicOutput)
	g.arith = NewArithmeticUnit(op1, op0, g.lhs, g.rhs, g.arithOutput)

	g.sel = NewSelectNGate(u, g.arithOutput, g.logicOutput, out)
	return g
}

func (g *ALU) Update() {
	g.selectXY.Update()
	g.selectZX.Update()
	g.selectYX.Update()
	g.logic.Update()
	g.arith.Update()
	g.sel.Update()
}

// IsZeroGate raises out iff every bit of in is zero.
type IsZeroGate struct {
	combined Signal
	combine  *Combine16Gate
	not      *NotGate
}

// NewIsZeroGate wires a 16-bit zero detector.
func NewIsZeroGate(in *Bus, out *Signal) *IsZeroGate {
	g := &IsZeroGate{}
	g.combine = NewCombine16Gate(in, &g.combined)
	g.not = NewNotGate(&g.combined, out)
	return g
}

func (g *IsZeroGate) Update() {
	g.combine.Update()
	g.not.Update()
}

// IsNegativeGate exposes bit 15 of in (the two's-complement sign bit).
type IsNegativeGate struct {
	connect *Connector
}

// NewIsNegativeGate wires a 16-bit sign detector.
func NewIsNegativeGate(in *Bus, out *Signal) *IsNegativeGate {
	if in.Width() != 16 {
		panic("nand: IsNegativeGate requires a 16-bit bus")
	}
	return &IsNegativeGate{connect: NewConnector(in.Ref(15), out)}
}

func (g *IsNegativeGate) Update() {
	g.connect.Update()
}

// ConditionUnit raises out (the jump line) iff (lt && R<0) || (eq && R==0)
// || (gt && R>0), where R>0 is derived as !IsNegative(R) && !IsZero(R).
type ConditionUnit struct {
	isLT, conditionLT             Signal
	ltGate                        *IsNegativeGate
	andLT                         *AndGate

	isEQ, conditionEQ             Signal
	eqGate                        *IsZeroGate
	andEQ                         *AndGate

	conditionLTEQ                 Signal
	subOr                         *OrGate

	c1, c2, isGT                  Signal
	not1, not2                    *NotGate
	subAnd                        *AndGate

	conditionGT                   Signal
	andGT                         *AndGate
	or                            *OrGate
}

// NewConditionUnit wires the jump-condition combiner.
func NewConditionUnit(lt, eq, gt *Signal, x *Bus, out *Signal) *ConditionUnit {
	g := &ConditionUnit{}
	g.ltGate = NewIsNegativeGate(x, &g.isLT)
	g.andLT = NewAndGate(lt, &g.isLT, &g.conditionLT)

	g.eqGate = NewIsZeroGate(x, &g.isEQ)
	g.andEQ = NewAndGate(eq, &g.isEQ, &g.conditionEQ)

	g.subOr = NewOrGate(&g.conditionLT, &g.conditionEQ, &g.conditionLTEQ)

	g.not1 = NewNotGate(&g.isLT, &g.c1)
	g.not2 = NewNotGate(&g.isEQ, &g.c2)
	g.subAnd = NewAndGate(&g.c1, &g.c2, &g.isGT)

	g.andGT = NewAndGate(gt, &g.isGT, &g.conditionGT)
	g.or = NewOrGate(&g.conditionLTEQ, &g.conditionGT, out)
	return g
}

func (g *ConditionUnit) Update() {
	g.ltGate.Update()
	g.andLT.Update()
	g.eqGate.Update()
	g.andEQ.Update()
	g.subOr.Update()
	g.not1.Update()
	g.not2.Update()
	g.subAnd.Update()
	g.andGT.Update()
	g.or.Update()
}
