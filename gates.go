package nand

// Gate is anything that recomputes its outputs from its current inputs. A
// gate borrows its input and output signals; it owns only its internal
// cells and subgates. Update is pure for every combinational gate in this
// file: repeated calls with unchanged inputs yield identical outputs.
type Gate interface {
	Update()
}

// Connector directly copies one signal to another. Used to pass a single
// bit through without computation (e.g. the halt line, or bit 15 of a bus
// read off as the sign bit).
type Connector struct {
	in, out *Signal
}

// NewConnector wires a straight passthrough from in to out.
func NewConnector(in, out *Signal) *Connector {
	return &Connector{in: in, out: out}
}

func (g *Connector) Update() {
	g.out.Set(g.in.Get())
}

// NandGate is the sole combinational atom: out = !(a && b).
type NandGate struct {
	a, b, out *Signal
}

// NewNandGate wires a 2-input NAND.
func NewNandGate(a, b, out *Signal) *NandGate {
	return &NandGate{a: a, b: b, out: out}
}

func (g *NandGate) Update() {
	if g.a.Get() != 0 && g.b.Get() != 0 {
		g.out.Set(0)
	} else {
		g.out.Set(1)
	}
}

// NotGate is NAND(in, in).
type NotGate struct {
	nand *NandGate
}

// NewNotGate wires a NOT built from a single NAND.
func NewNotGate(in, out *Signal) *NotGate {
	return &NotGate{nand: NewNandGate(in, in, out)}
}

func (g *NotGate) Update() {
	g.nand.Update()
}

// AndGate is NOT(NAND(a, b)).
type AndGate struct {
	c         Signal
	nand      *NandGate
	not       *NotGate
}

// NewAndGate wires an AND built from a NAND followed by a NOT.
func NewAndGate(a, b, out *Signal) *AndGate {
	g := &AndGate{}
	g.nand = NewNandGate(a, b, &g.c)
	g.not = NewNotGate(&g.c, out)
	return g
}

func (g *AndGate) Update() {
	g.nand.Update()
	g.not.Update()
}

// OrGate implements De Morgan's law: a||b = NAND(NOT(a), NOT(b)).
type OrGate struct {
	aprime, bprime Signal
	nota, notb     *NotGate
	nand           *NandGate
}

// NewOrGate wires an OR built from two NOTs and a NAND.
func NewOrGate(a, b, out *Signal) *OrGate {
	g := &OrGate{}
	g.nota = NewNotGate(a, &g.aprime)
	g.notb = NewNotGate(b, &g.bprime)
	g.nand = NewNandGate(&g.aprime, &g.bprime, out)
	return g
}

func (g *OrGate) Update() {
	g.nota.Update()
	g.notb.Update()
	g.nand.Update()
}

// XorGate is (a||b) && !(a&&b), wired as OR, NAND, AND.
type XorGate struct {
	s1, s2   Signal
	or       *OrGate
	nand     *NandGate
	and      *AndGate
}

// NewXorGate wires an XOR from an OR, a NAND, and an AND.
func NewXorGate(a, b, out *Signal) *XorGate {
	g := &XorGate{}
	g.or = NewOrGate(a, b, &g.s1)
	g.nand = NewNandGate(a, b, &g.s2)
	g.and = NewAndGate(&g.s1, &g.s2, out)
	return g
}

func (g *XorGate) Update() {
	g.or.Update()
	g.nand.Update()
	g.and.Update()
}

// SelectGate is a 2-to-1 multiplexer: out = sel ? a : b.
type SelectGate struct {
	tmp1, nsel, tmp2 Signal
	and1             *AndGate
	not              *NotGate
	and2             *AndGate
	or               *OrGate
}

// NewSelectGate wires SELECT(sel, a, b) -> out.
func NewSelectGate(sel, a, b, out *Signal) *SelectGate {
	g := &SelectGate{}
	g.and1 = NewAndGate(sel, a, &g.tmp1)
	g.not = NewNotGate(sel, &g.nsel)
	g.and2 = NewAndGate(&g.nsel, b, &g.tmp2)
	g.or = NewOrGate(&g.tmp1, &g.tmp2, out)
	return g
}

func (g *SelectGate) Update() {
	g.not.Update()
	g.and1.Update()
	g.and2.Update()
	g.or.Update()
}
