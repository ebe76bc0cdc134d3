// Package nand implements a structural digital-logic simulator: a 16-bit
// stored-program computer built entirely out of a one-bit signal cell and a
// single NAND primitive, layered up through Boolean gates, buses, an ALU,
// clocked state, and a control unit.
//
// The package owns no external resources (no files, no clock goroutine, no
// I/O). A caller wires two externally owned signals, clk and halt, to a
// Computer and drives simulation by toggling clk and calling Update.
package nand

// Signal is a one-bit storage cell: the fundamental wire of the network.
// Any nonzero value written to it reads back as 1; zero reads back as 0.
// Its observable value is unspecified until the first Set.
type Signal struct {
	value uint8
}

// Get returns the current 0/1 value of the signal.
func (s *Signal) Get() uint8 {
	return s.value
}

// Set coerces v to 0 or 1 and stores it.
func (s *Signal) Set(v uint8) {
	if v != 0 {
		s.value = 1
	} else {
		s.value = 0
	}
}

// Bus is an ordered collection of N one-bit signal cells, addressable by
// index. A Bus built with NewBus owns its cells; a Bus built with NewBusView
// aliases cells owned elsewhere, which is how a register file is bit-sliced
// into per-bit columns. Width is fixed for the lifetime of the Bus.
type Bus struct {
	cells []*Signal
}

// NewBus allocates an owning bus of width fresh, zero-valued cells.
func NewBus(width int) *Bus {
	cells := make([]*Signal, width)
	for i := range cells {
		cells[i] = &Signal{}
	}
	return &Bus{cells: cells}
}

// NewBusView builds a bus of the given width with every cell unset; callers
// fix up aliasing via SetPtr before the bus is wired into any gate.
func NewBusView(width int) *Bus {
	return &Bus{cells: make([]*Signal, width)}
}

// Width returns the number of bits in the bus.
func (b *Bus) Width() int {
	return len(b.cells)
}

// Ref returns the cell at index i. Panics if i is aliased to nil, which
// indicates a construction-time wiring bug (see SetPtr).
func (b *Bus) Ref(i int) *Signal {
	c := b.cells[i]
	if c == nil {
		panic("nand: bus index not wired")
	}
	return c
}

// SetPtr makes index i of the bus alias an externally owned cell, enabling
// bit-slicing without copying.
func (b *Bus) SetPtr(i int, cell *Signal) {
	b.cells[i] = cell
}

// Get returns the 0/1 value of bit i.
func (b *Bus) Get(i int) uint8 {
	return b.Ref(i).Get()
}

// Set stores v (coerced to 0/1) into bit i.
func (b *Bus) Set(i int, v uint8) {
	b.Ref(i).Set(v)
}

// GetInt reads the whole bus as an unsigned integer, bit 0 being the least
// significant bit.
func (b *Bus) GetInt() uint16 {
	var x uint16
	for i, c := range b.cells {
		x |= uint16(c.Get()) << uint(i)
	}
	return x
}

// SetInt writes x into the bus, bit 0 being the least significant bit. Only
// the low Width() bits of x are consumed.
func (b *Bus) SetInt(x uint16) {
	for _, c := range b.cells {
		c.Set(uint8(x & 1))
		x >>= 1
	}
}
