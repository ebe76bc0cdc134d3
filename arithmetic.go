package nand

// HalfAdderGate adds two bits: h = a&&b (carry), l = a^b (sum).
type HalfAdderGate struct {
	and *AndGate
	xor *XorGate
}

// NewHalfAdderGate wires a half adder.
func NewHalfAdderGate(a, b, h, l *Signal) *HalfAdderGate {
	return &HalfAdderGate{
		and: NewAndGate(a, b, h),
		xor: NewXorGate(a, b, l),
	}
}

func (g *HalfAdderGate) Update() {
	g.and.Update()
	g.xor.Update()
}

// FullAdderGate adds three bits (two operands plus a carry-in): h is the
// majority (carry-out), l is the sum bit.
type FullAdderGate struct {
	h1, l1, h2 Signal
	g1         *HalfAdderGate
	g2         *HalfAdderGate
	or         *OrGate
}

// NewFullAdderGate wires a full adder from two half adders and an OR.
func NewFullAdderGate(a, b, c, h, l *Signal) *FullAdderGate {
	g := &FullAdderGate{}
	g.g1 = NewHalfAdderGate(a, b, &g.h1, &g.l1)
	g.g2 = NewHalfAdderGate(&g.l1, c, &g.h2, l)
	g.or = NewOrGate(&g.h1, &g.h2, h)
	return g
}

func (g *FullAdderGate) Update() {
	g.g1.Update()
	g.g2.Update()
	g.or.Update()
}

// Add16Gate is a 16-bit ripple-carry adder: s = (a + b + cIn) mod 2^16,
// cOut is the overflow bit.
type Add16Gate struct {
	carry [15]Signal
	full  [16]*FullAdderGate
}

// NewAdd16Gate wires a ripple-carry chain of 16 full adders.
func NewAdd16Gate(a, b *Bus, cIn *Signal, s *Bus, cOut *Signal) *Add16Gate {
	if a.Width() != 16 || b.Width() != 16 || s.Width() != 16 {
		panic("nand: Add16Gate requires 16-bit buses")
	}
	g := &Add16Gate{}
	prevCarry := cIn
	for i := 0; i < 16; i++ {
		var h *Signal
		if i == 15 {
			h = cOut
		} else {
			h = &g.carry[i]
		}
		g.full[i] = NewFullAdderGate(a.Ref(i), b.Ref(i), prevCarry, h, s.Ref(i))
		prevCarry = h
	}
	return g
}

func (g *Add16Gate) Update() {
	for _, f := range g.full {
		f.Update()
	}
}

// Sub16Gate computes a - b mod 2^16 via two's complement: a + ~b + 1. The
// carry out of the addition is discarded.
type Sub16Gate struct {
	bInv      *Bus
	inv       *NotNGate
	zero, one Signal
	nand      *NandGate
	c         Signal
	add       *Add16Gate
}

// NewSub16Gate wires a 16-bit subtractor.
func NewSub16Gate(a, b *Bus, out *Bus) *Sub16Gate {
	g := &Sub16Gate{bInv: NewBus(16)}
	g.inv = NewNotNGate(b, g.bInv)
	g.nand = NewNandGate(&g.zero, &g.zero, &g.one)
	g.add = NewAdd16Gate(a, g.bInv, &g.one, out, &g.c)
	return g
}

func (g *Sub16Gate) Update() {
	g.inv.Update()
	g.nand.Update()
	g.add.Update()
}

// Inc16Gate computes (in + 1) mod 2^16.
type Inc16Gate struct {
	zero, one Signal
	nand      *NandGate
	zero16    *Bus
	c         Signal
	add       *Add16Gate
}

// NewInc16Gate wires a 16-bit incrementer as Add16(0, in, 1).
func NewInc16Gate(in, out *Bus) *Inc16Gate {
	g := &Inc16Gate{zero16: NewBus(16)}
	g.nand = NewNandGate(&g.zero, &g.zero, &g.one)
	g.add = NewAdd16Gate(g.zero16, in, &g.one, out, &g.c)
	return g
}

func (g *Inc16Gate) Update() {
	g.nand.Update()
	g.add.Update()
}
