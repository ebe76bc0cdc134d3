package nand

// DataLatchGate is level-sensitive: while st is high, out tracks d; while
// st is low, out holds its previous value. The feedback out = SELECT(st, d,
// out) is a syntactic cycle but a semantic fixed point within one Update:
// when st=0 the select reduces to out=out, when st=1 it reduces to out=d.
// The initial output is unspecified until st is first asserted.
type DataLatchGate struct {
	mux *SelectGate
}

// NewDataLatchGate wires a level-sensitive data latch.
func NewDataLatchGate(st, d, out *Signal) *DataLatchGate {
	return &DataLatchGate{mux: NewSelectGate(st, d, out, out)}
}

func (g *DataLatchGate) Update() {
	g.mux.Update()
}

// DataFlipFlop is a master-slave D flip-flop. The master latch is
// transparent while clk is high and st is asserted; the slave is
// transparent while clk is low. With st asserted, the master samples d
// during the high phase that follows a rising edge of clk; on the next
// falling edge the slave presents that value on out, which then holds
// through the following high phase.
type DataFlipFlop struct {
	tmp1, tmp2, nclk Signal
	and              *AndGate
	master           *DataLatchGate
	not              *NotGate
	slave            *DataLatchGate
}

// NewDataFlipFlop wires an edge-triggered D flip-flop.
func NewDataFlipFlop(st, in, clk, out *Signal) *DataFlipFlop {
	g := &DataFlipFlop{}
	g.and = NewAndGate(st, clk, &g.tmp1)
	g.master = NewDataLatchGate(&g.tmp1, in, &g.tmp2)
	g.not = NewNotGate(clk, &g.nclk)
	g.slave = NewDataLatchGate(&g.nclk, &g.tmp2, out)
	return g
}

func (g *DataFlipFlop) Update() {
	g.and.Update()
	g.master.Update()
	g.not.Update()
	g.slave.Update()
}

// Register16 is sixteen flip-flops sharing a store-enable and clock,
// atomically capturing a 16-bit bus on the rising edge of clk.
type Register16 struct {
	flops []*DataFlipFlop
}

// NewRegister16 wires a 16-bit register.
func NewRegister16(st *Signal, in *Bus, clk *Signal, out *Bus) *Register16 {
	requireSameWidth(in, out)
	g := &Register16{flops: make([]*DataFlipFlop, in.Width())}
	for i := range g.flops {
		g.flops[i] = NewDataFlipFlop(st, in.Ref(i), clk, out.Ref(i))
	}
	return g
}

func (g *Register16) Update() {
	for _, f := range g.flops {
		f.Update()
	}
}

// Counter is a program counter: on the rising clock edge it loads x when
// sel is asserted, otherwise it increments its own output. The store-enable
// of the underlying register is tied to logical one so it always captures.
type Counter struct {
	zero, one Signal
	nand      *NandGate
	inc       *Inc16Gate
	incOut    *Bus
	mux       *SelectNGate
	muxOut    *Bus
	reg       *Register16
}

// NewCounter wires a program counter: out <- sel ? x : out+1, on each
// rising clk edge.
func NewCounter(sel *Signal, x *Bus, clk *Signal, out *Bus) *Counter {
	requireSameWidth(x, out)
	g := &Counter{incOut: NewBus(out.Width()), muxOut: NewBus(out.Width())}
	g.nand = NewNandGate(&g.zero, &g.zero, &g.one)
	g.inc = NewInc16Gate(out, g.incOut)
	g.mux = NewSelectNGate(sel, x, g.incOut, g.muxOut)
	g.reg = NewRegister16(&g.one, g.muxOut, clk, out)
	return g
}

func (g *Counter) Update() {
	g.nand.Update()
	g.inc.Update()
	g.mux.Update()
	g.reg.Update()
}

// Ram16x16 is sixteen 16-bit registers, one-hot addressed by a 4-bit
// address bus. A write steers the store-enable to exactly one register on
// a rising clock edge when st is asserted; reads are combinational through
// a per-bit 16-to-1 mux indexed by the same address.
type Ram16x16 struct {
	hot      *Bus
	decoder  *Decoder4to16Gate
	selected *Bus
	mask     *Mask1xNGate
	regs     [16]*Register16
	regOut   [16]*Bus
	slices   [16]*Bus
	muxes    [16]*Mux16to1Gate
}

// NewRam16x16 wires a 16-word by 16-bit RAM. ad is the address; only its
// low 4 bits are decoded, so the full 16-bit A register can be passed
// directly.
func NewRam16x16(st *Signal, x *Bus, ad *Bus, clk *Signal, out *Bus) *Ram16x16 {
	if x.Width() != 16 || out.Width() != 16 || ad.Width() < 4 {
		panic("nand: Ram16x16 requires a 16-bit data bus and an address bus of at least 4 bits")
	}
	g := &Ram16x16{hot: NewBus(16), selected: NewBus(16)}
	g.decoder = NewDecoder4to16Gate(ad, g.hot)
	g.mask = NewMask1xNGate(st, g.hot, g.selected)

	for reg := 0; reg < 16; reg++ {
		g.regOut[reg] = NewBus(16)
		g.regs[reg] = NewRegister16(g.selected.Ref(reg), x, clk, g.regOut[reg])
	}

	for bit := 0; bit < 16; bit++ {
		slice := NewBusView(16)
		for reg := 0; reg < 16; reg++ {
			slice.SetPtr(reg, g.regOut[reg].Ref(bit))
		}
		g.slices[bit] = slice
		g.muxes[bit] = NewMux16to1Gate(slice, ad, out.Ref(bit))
	}
	return g
}

func (g *Ram16x16) Update() {
	g.decoder.Update()
	g.mask.Update()
	for _, reg := range g.regs {
		reg.Update()
	}
	for _, mux := range g.muxes {
		mux.Update()
	}
}

// Rom16x16 holds sixteen immutable 16-bit words supplied at construction.
// Reads are combinational; there is no write path.
type Rom16x16 struct {
	words  [16]*Bus
	slices [16]*Bus
	muxes  [16]*Mux16to1Gate
}

// NewRom16x16 wires a 16-word ROM from a fixed program image. program must
// have exactly 16 entries. ad is the address; only its low 4 bits are
// decoded, so the full 16-bit program counter can be passed directly.
func NewRom16x16(program [16]uint16, ad *Bus, out *Bus) *Rom16x16 {
	if out.Width() != 16 || ad.Width() < 4 {
		panic("nand: Rom16x16 requires a 16-bit output bus and an address bus of at least 4 bits")
	}
	g := &Rom16x16{}
	for addr := 0; addr < 16; addr++ {
		w := NewBus(16)
		w.SetInt(program[addr])
		g.words[addr] = w
	}
	for bit := 0; bit < 16; bit++ {
		slice := NewBusView(16)
		for addr := 0; addr < 16; addr++ {
			slice.SetPtr(addr, g.words[addr].Ref(bit))
		}
		g.slices[bit] = slice
		g.muxes[bit] = NewMux16to1Gate(slice, ad, out.Ref(bit))
	}
	return g
}

func (g *Rom16x16) Update() {
	for _, mux := range g.muxes {
		mux.Update()
	}
}
