package nand

// NotNGate is the bitwise extension of NotGate across a bus.
type NotNGate struct {
	gates []*NotGate
}

// NewNotNGate wires one NotGate per bit of in/out, which must share width.
func NewNotNGate(in, out *Bus) *NotNGate {
	requireSameWidth(in, out)
	g := &NotNGate{gates: make([]*NotGate, in.Width())}
	for i := range g.gates {
		g.gates[i] = NewNotGate(in.Ref(i), out.Ref(i))
	}
	return g
}

func (g *NotNGate) Update() {
	for _, sub := range g.gates {
		sub.Update()
	}
}

// AndNGate is the bitwise extension of AndGate across a bus.
type AndNGate struct {
	gates []*AndGate
}

// NewAndNGate wires one AndGate per bit of a/b/out, which must share width.
func NewAndNGate(a, b, out *Bus) *AndNGate {
	requireSameWidth(a, b, out)
	g := &AndNGate{gates: make([]*AndGate, a.Width())}
	for i := range g.gates {
		g.gates[i] = NewAndGate(a.Ref(i), b.Ref(i), out.Ref(i))
	}
	return g
}

func (g *AndNGate) Update() {
	for _, sub := range g.gates {
		sub.Update()
	}
}

// OrNGate is the bitwise extension of OrGate across a bus.
type OrNGate struct {
	gates []*OrGate
}

// NewOrNGate wires one OrGate per bit of a/b/out, which must share width.
func NewOrNGate(a, b, out *Bus) *OrNGate {
	requireSameWidth(a, b, out)
	g := &OrNGate{gates: make([]*OrGate, a.Width())}
	for i := range g.gates {
		g.gates[i] = NewOrGate(a.Ref(i), b.Ref(i), out.Ref(i))
	}
	return g
}

func (g *OrNGate) Update() {
	for _, sub := range g.gates {
		sub.Update()
	}
}

// XorNGate is the bitwise extension of XorGate across a bus.
type XorNGate struct {
	gates []*XorGate
}

// NewXorNGate wires one XorGate per bit of a/b/out, which must share width.
func NewXorNGate(a, b, out *Bus) *XorNGate {
	requireSameWidth(a, b, out)
	g := &XorNGate{gates: make([]*XorGate, a.Width())}
	for i := range g.gates {
		g.gates[i] = NewXorGate(a.Ref(i), b.Ref(i), out.Ref(i))
	}
	return g
}

func (g *XorNGate) Update() {
	for _, sub := range g.gates {
		sub.Update()
	}
}

// SelectNGate is the bitwise extension of SelectGate: out = sel ? a : b,
// applied bit by bit with a single shared sel signal.
type SelectNGate struct {
	gates []*SelectGate
}

// NewSelectNGate wires one SelectGate per bit of a/b/out, sharing sel.
func NewSelectNGate(sel *Signal, a, b, out *Bus) *SelectNGate {
	requireSameWidth(a, b, out)
	g := &SelectNGate{gates: make([]*SelectGate, a.Width())}
	for i := range g.gates {
		g.gates[i] = NewSelectGate(sel, a.Ref(i), b.Ref(i), out.Ref(i))
	}
	return g
}

func (g *SelectNGate) Update() {
	for _, sub := range g.gates {
		sub.Update()
	}
}

// Mask1xNGate ANDs a single control bit against every bit of a bus:
// out[i] = a && b[i]. Used to steer a store-enable to a one-hot selection.
type Mask1xNGate struct {
	gates []*AndGate
}

// NewMask1xNGate wires one AndGate per bit of b/out, sharing a.
func NewMask1xNGate(a *Signal, b, out *Bus) *Mask1xNGate {
	requireSameWidth(b, out)
	g := &Mask1xNGate{gates: make([]*AndGate, b.Width())}
	for i := range g.gates {
		g.gates[i] = NewAndGate(a, b.Ref(i), out.Ref(i))
	}
	return g
}

func (g *Mask1xNGate) Update() {
	for _, sub := range g.gates {
		sub.Update()
	}
}

// Reduce4Gate ANDs exactly four inputs: out = a && b && c && d.
type Reduce4Gate struct {
	ab, cd   Signal
	and1     *AndGate
	and2     *AndGate
	and      *AndGate
}

// NewReduce4Gate wires a 4-input AND reduction.
func NewReduce4Gate(a, b, c, d, out *Signal) *Reduce4Gate {
	g := &Reduce4Gate{}
	g.and1 = NewAndGate(a, b, &g.ab)
	g.and2 = NewAndGate(c, d, &g.cd)
	g.and = NewAndGate(&g.ab, &g.cd, out)
	return g
}

func (g *Reduce4Gate) Update() {
	g.and1.Update()
	g.and2.Update()
	g.and.Update()
}

// Combine16Gate ORs all 16 bits of in down to a single signal, via a
// balanced tree of OrGates.
type Combine16Gate struct {
	pair   [8]Signal
	quad   [4]Signal
	oct    [2]Signal
	pairG  [8]*OrGate
	quadG  [4]*OrGate
	octG   [2]*OrGate
	final  *OrGate
}

// NewCombine16Gate wires a 16-input OR reduction.
func NewCombine16Gate(in *Bus, out *Signal) *Combine16Gate {
	if in.Width() != 16 {
		panic("nand: Combine16Gate requires a 16-bit bus")
	}
	g := &Combine16Gate{}
	for i := 0; i < 8; i++ {
		g.pairG[i] = NewOrGate(in.Ref(2*i), in.Ref(2*i+1), &g.pair[i])
	}
	for i := 0; i < 4; i++ {
		g.quadG[i] = NewOrGate(&g.pair[2*i], &g.pair[2*i+1], &g.quad[i])
	}
	for i := 0; i < 2; i++ {
		g.octG[i] = NewOrGate(&g.quad[2*i], &g.quad[2*i+1], &g.oct[i])
	}
	g.final = NewOrGate(&g.oct[0], &g.oct[1], out)
	return g
}

func (g *Combine16Gate) Update() {
	for _, sub := range g.pairG {
		sub.Update()
	}
	for _, sub := range g.quadG {
		sub.Update()
	}
	for _, sub := range g.octG {
		sub.Update()
	}
	g.final.Update()
}

// Decoder4to16Gate is a one-hot decoder: out bit k is high iff the low 4
// bits of in equal k. in may be wider than 4 bits (e.g. a full 16-bit
// address register); only bits 0..3 are consulted.
type Decoder4to16Gate struct {
	n       [4]Signal
	nots    [4]*NotGate
	reduce  [16]*Reduce4Gate
}

// NewDecoder4to16Gate wires a 4-to-16 one-hot decoder.
func NewDecoder4to16Gate(in, out *Bus) *Decoder4to16Gate {
	if in.Width() < 4 || out.Width() != 16 {
		panic("nand: Decoder4to16Gate requires an input of at least 4 bits and a 16-bit output")
	}
	g := &Decoder4to16Gate{}
	for i := 0; i < 4; i++ {
		g.nots[i] = NewNotGate(in.Ref(i), &g.n[i])
	}
	lines := func(i int) *Signal { return in.Ref(i) }
	negs := func(i int) *Signal { return &g.n[i] }
	pick := func(bit, k int) *Signal {
		if k&(1<<uint(bit)) != 0 {
			return lines(bit)
		}
		return negs(bit)
	}
	for k := 0; k < 16; k++ {
		g.reduce[k] = NewReduce4Gate(pick(3, k), pick(2, k), pick(1, k), pick(0, k), out.Ref(k))
	}
	return g
}

func (g *Decoder4to16Gate) Update() {
	for _, sub := range g.nots {
		sub.Update()
	}
	for _, sub := range g.reduce {
		sub.Update()
	}
}

// Mux16to1Gate selects one of 16 data lines by a 4-bit address: out = in[ad].
type Mux16to1Gate struct {
	hot     *Bus
	decoder *Decoder4to16Gate
	anded   *Bus
	mask    *AndNGate
	combine *Combine16Gate
}

// NewMux16to1Gate wires a 16-to-1 multiplexer.
func NewMux16to1Gate(in *Bus, ad *Bus, out *Signal) *Mux16to1Gate {
	if in.Width() != 16 {
		panic("nand: Mux16to1Gate requires a 16-bit data bus")
	}
	g := &Mux16to1Gate{
		hot:   NewBus(16),
		anded: NewBus(16),
	}
	g.decoder = NewDecoder4to16Gate(ad, g.hot)
	g.mask = NewAndNGate(in, g.hot, g.anded)
	g.combine = NewCombine16Gate(g.anded, out)
	return g
}

func (g *Mux16to1Gate) Update() {
	g.decoder.Update()
	g.mask.Update()
	g.combine.Update()
}

func requireSameWidth(buses ...*Bus) {
	if len(buses) == 0 {
		return
	}
	w := buses[0].Width()
	for _, b := range buses[1:] {
		if b.Width() != w {
			panic("nand: bus width mismatch")
		}
	}
}
