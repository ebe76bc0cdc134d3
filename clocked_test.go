package nand

import "testing"

func cycle(clk *Signal, g Gate) {
	clk.Set(1)
	g.Update()
	clk.Set(0)
	g.Update()
}

func TestDataLatchGateTransparentAndHolds(t *testing.T) {
	var st, d, out Signal

	g := NewDataLatchGate(&st, &d, &out)

	st.Set(1)
	d.Set(1)
	g.Update()
	if got := out.Get(); got != 1 {
		t.Fatalf("transparent latch with d=1 -> out = %d, want 1", got)
	}

	st.Set(0)
	d.Set(0)
	g.Update()
	if got := out.Get(); got != 1 {
		t.Fatalf("latched (st=0) output changed to %d despite d going to 0, want held value 1", got)
	}

	st.Set(1)
	d.Set(0)
	g.Update()
	if got := out.Get(); got != 0 {
		t.Fatalf("transparent latch with d=0 -> out = %d, want 0", got)
	}
}

func TestDataFlipFlopSamplesOnRisingEdgeOnly(t *testing.T) {
	var st, in, clk, out Signal
	st.Set(1)

	g := NewDataFlipFlop(&st, &in, &clk, &out)

	in.Set(1)
	clk.Set(1)
	g.Update()
	if got := out.Get(); got != 0 {
		t.Fatalf("output changed before falling edge: got %d, want 0", got)
	}

	clk.Set(0)
	g.Update()
	if got := out.Get(); got != 1 {
		t.Fatalf("output after falling edge = %d, want sampled value 1", got)
	}

	// Output must not react to input changes while clk stays low.
	in.Set(0)
	g.Update()
	if got := out.Get(); got != 1 {
		t.Fatalf("output changed to %d while clk held low, want still 1", got)
	}

	// Nor while clk rises again, before the next falling edge.
	clk.Set(1)
	g.Update()
	if got := out.Get(); got != 1 {
		t.Fatalf("output changed to %d on rising edge, want still 1 until next fall", got)
	}

	clk.Set(0)
	g.Update()
	if got := out.Get(); got != 0 {
		t.Fatalf("output after second falling edge = %d, want newly sampled value 0", got)
	}
}

func TestRegister16CapturesOnClockPulse(t *testing.T) {
	var st, clk Signal
	in := NewBus(16)
	out := NewBus(16)
	st.Set(1)

	g := NewRegister16(&st, in, &clk, out)

	in.SetInt(0x1234)
	cycle(&clk, g)
	if got := out.GetInt(); got != 0x1234 {
		t.Fatalf("Register16 after one cycle = %#04x, want 0x1234", got)
	}

	in.SetInt(0xffff)
	st.Set(0)
	cycle(&clk, g)
	if got := out.GetInt(); got != 0x1234 {
		t.Fatalf("Register16 captured with st=0: got %#04x, want held value 0x1234", got)
	}
}

func TestCounterIncrementsOrLoads(t *testing.T) {
	var sel, clk Signal
	x := NewBus(16)
	out := NewBus(16)

	g := NewCounter(&sel, x, &clk, out)

	sel.Set(0)
	cycle(&clk, g)
	if got := out.GetInt(); got != 1 {
		t.Fatalf("Counter after first increment = %#04x, want 1", got)
	}
	cycle(&clk, g)
	if got := out.GetInt(); got != 2 {
		t.Fatalf("Counter after second increment = %#04x, want 2", got)
	}

	x.SetInt(10)
	sel.Set(1)
	cycle(&clk, g)
	if got := out.GetInt(); got != 10 {
		t.Fatalf("Counter after load(10) = %#04x, want 10", got)
	}

	sel.Set(0)
	cycle(&clk, g)
	if got := out.GetInt(); got != 11 {
		t.Fatalf("Counter after load-then-increment = %#04x, want 11", got)
	}
}

func TestRam16x16WriteThenRead(t *testing.T) {
	var st, clk Signal
	x := NewBus(16)
	ad := NewBus(4)
	out := NewBus(16)

	g := NewRam16x16(&st, x, ad, &clk, out)

	ad.SetInt(7)
	x.SetInt(0xbeef)
	st.Set(1)
	cycle(&clk, g)

	if got := out.GetInt(); got != 0xbeef {
		t.Fatalf("Ram16x16 read back at address 7 = %#04x, want 0xbeef", got)
	}

	ad.SetInt(3)
	g.Update()
	if got := out.GetInt(); got != 0 {
		t.Fatalf("Ram16x16 read at untouched address 3 = %#04x, want 0", got)
	}

	ad.SetInt(7)
	g.Update()
	if got := out.GetInt(); got != 0xbeef {
		t.Fatalf("Ram16x16 address 7 did not persist across read of a different address: got %#04x", got)
	}
}

func TestRam16x16WriteRequiresStoreEnable(t *testing.T) {
	var st, clk Signal
	x := NewBus(16)
	ad := NewBus(4)
	out := NewBus(16)

	g := NewRam16x16(&st, x, ad, &clk, out)

	ad.SetInt(1)
	x.SetInt(0x1111)
	st.Set(0)
	cycle(&clk, g)

	if got := out.GetInt(); got != 0 {
		t.Fatalf("Ram16x16 wrote despite st=0: read back %#04x, want 0", got)
	}
}

func TestRom16x16ReadsFixedImage(t *testing.T) {
	var program [16]uint16
	for i := range program {
		program[i] = uint16(i * 17)
	}
	ad := NewBus(4)
	out := NewBus(16)

	g := NewRom16x16(program, ad, out)

	for addr := 0; addr < 16; addr++ {
		ad.SetInt(uint16(addr))
		g.Update()
		if got := out.GetInt(); got != program[addr] {
			t.Errorf("Rom16x16[%d] = %#04x, want %#04x", addr, got, program[addr])
		}
	}
}

func TestRom16x16AcceptsWideAddress(t *testing.T) {
	var program [16]uint16
	program[5] = 0xabcd
	ad := NewBus(16)
	out := NewBus(16)

	g := NewRom16x16(program, ad, out)
	ad.SetInt(0xfff5)
	g.Update()
	if got := out.GetInt(); got != 0xabcd {
		t.Fatalf("Rom16x16 with 16-bit address 0xfff5 = %#04x, want 0xabcd (only low 4 bits consulted)", got)
	}
}
