package nand

import "testing"

func truthTable2(t *testing.T, name string, build func(a, b, out *Signal) Gate, want [2][2]uint8) {
	t.Helper()
	for ai := uint8(0); ai < 2; ai++ {
		for bi := uint8(0); bi < 2; bi++ {
			var a, b, out Signal
			a.Set(ai)
			b.Set(bi)
			g := build(&a, &b, &out)
			g.Update()
			if got := out.Get(); got != want[ai][bi] {
				t.Errorf("%s(%d, %d) = %d, want %d", name, ai, bi, got, want[ai][bi])
			}
		}
	}
}

func TestNandGate(t *testing.T) {
	truthTable2(t, "NAND", func(a, b, out *Signal) Gate { return NewNandGate(a, b, out) },
		[2][2]uint8{{1, 1}, {1, 0}})
}

func TestAndGate(t *testing.T) {
	truthTable2(t, "AND", func(a, b, out *Signal) Gate { return NewAndGate(a, b, out) },
		[2][2]uint8{{0, 0}, {0, 1}})
}

func TestOrGate(t *testing.T) {
	truthTable2(t, "OR", func(a, b, out *Signal) Gate { return NewOrGate(a, b, out) },
		[2][2]uint8{{0, 1}, {1, 1}})
}

func TestXorGate(t *testing.T) {
	truthTable2(t, "XOR", func(a, b, out *Signal) Gate { return NewXorGate(a, b, out) },
		[2][2]uint8{{0, 1}, {1, 0}})
}

func TestNotGate(t *testing.T) {
	for _, in := range []uint8{0, 1} {
		var s, out Signal
		s.Set(in)
		g := NewNotGate(&s, &out)
		g.Update()
		want := uint8(1)
		if in != 0 {
			want = 0
		}
		if got := out.Get(); got != want {
			t.Errorf("NOT(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestSelectGate(t *testing.T) {
	for _, sel := range []uint8{0, 1} {
		var selS, a, b, out Signal
		selS.Set(sel)
		a.Set(1)
		b.Set(0)
		g := NewSelectGate(&selS, &a, &b, &out)
		g.Update()
		want := b.Get()
		if sel != 0 {
			want = a.Get()
		}
		if got := out.Get(); got != want {
			t.Errorf("SELECT(%d, 1, 0) = %d, want %d", sel, got, want)
		}
	}
}

func TestConnector(t *testing.T) {
	var in, out Signal
	in.Set(1)
	g := NewConnector(&in, &out)
	g.Update()
	if got := out.Get(); got != 1 {
		t.Fatalf("Connector did not pass 1 through, got %d", got)
	}
	in.Set(0)
	g.Update()
	if got := out.Get(); got != 0 {
		t.Fatalf("Connector did not pass 0 through, got %d", got)
	}
}

func TestGateUpdateIsIdempotent(t *testing.T) {
	var a, b, out Signal
	a.Set(1)
	b.Set(0)
	g := NewXorGate(&a, &b, &out)
	g.Update()
	first := out.Get()
	g.Update()
	if second := out.Get(); second != first {
		t.Fatalf("repeated Update() with unchanged inputs changed output: %d then %d", first, second)
	}
}
