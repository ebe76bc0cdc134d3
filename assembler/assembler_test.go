package assembler

import (
	"testing"

	"github.com/ianjray/nand/isa"
)

func TestAssembleConstantLoad(t *testing.T) {
	bin, err := Assemble(" LD 42\n HALT\n")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(bin) != 16 {
		t.Fatalf("assembled program has %d words, want 16", len(bin))
	}
	if bin[0] != 42 {
		t.Fatalf("bin[0] = %#04x, want 42", bin[0])
	}
	if bin[1] != isa.Halt {
		t.Fatalf("bin[1] = %#04x, want Halt", bin[1])
	}
}

func TestAssembleHexAndBinaryLiterals(t *testing.T) {
	bin, err := Assemble(" LD $2a\n LD %00101010\n HALT\n")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if bin[0] != 42 {
		t.Fatalf("bin[0] ($2a) = %d, want 42", bin[0])
	}
	if bin[1] != 42 {
		t.Fatalf("bin[1] (%%00101010) = %d, want 42", bin[1])
	}
}

func TestAssembleComputeModifiers(t *testing.T) {
	bin, err := Assemble(" ADD ZX D\n")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := isa.OpAdd | isa.ZX | isa.DestD
	if bin[0] != want {
		t.Fatalf("bin[0] = %#04x, want %#04x", bin[0], want)
	}
}

func TestAssembleModifierOrderDoesNotMatter(t *testing.T) {
	a, err := Assemble(" DEC D LT GT\n")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	b, err := Assemble(" DEC GT LT D\n")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if a[0] != b[0] {
		t.Fatalf("modifier order changed the encoding: %#04x vs %#04x", a[0], b[0])
	}
}

func TestAssembleLabelAsLDOperand(t *testing.T) {
	src := `
 LD loop
loop:
 DEC D LT GT
 HALT
`
	bin, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if bin[0] != 1 {
		t.Fatalf("LD loop resolved to %d, want 1 (loop's address)", bin[0])
	}
}

func TestAssembleSymbolAssignment(t *testing.T) {
	src := `
count=3
 LD count
 HALT
`
	bin, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if bin[0] != 3 {
		t.Fatalf("LD count resolved to %d, want 3", bin[0])
	}
}

func TestAssembleDotOrgAndDotWord(t *testing.T) {
	src := `
 .org 5
 .word $00ff
`
	bin, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if bin[5] != 0x00ff {
		t.Fatalf("bin[5] = %#04x, want 0x00ff", bin[5])
	}
}

func TestAssembleCommentsAreIgnored(t *testing.T) {
	bin, err := Assemble(" LD 1 ; load one\n HALT ; stop\n")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if bin[0] != 1 {
		t.Fatalf("bin[0] = %d, want 1", bin[0])
	}
}

func TestAssembleUnknownModifierErrors(t *testing.T) {
	if _, err := Assemble(" ADD BOGUS\n"); err == nil {
		t.Fatal("Assemble with an unknown modifier did not return an error")
	}
}

func TestAssembleUnknownMnemonicErrors(t *testing.T) {
	if _, err := Assemble(" FROB\n"); err == nil {
		t.Fatal("Assemble with an unknown mnemonic did not return an error")
	}
}

func TestAssembleLDOutOfRangeErrors(t *testing.T) {
	// Bit 15 must be clear for a constant-load word; 0x8000 does not fit.
	if _, err := Assemble(" LD $8000\n"); err == nil {
		t.Fatal("Assemble with an out-of-range LD literal did not return an error")
	}
}

func TestAssembleAddressConflictErrors(t *testing.T) {
	src := `
 .org 0
 LD 1
 .org 0
 LD 2
`
	if _, err := Assemble(src); err == nil {
		t.Fatal("Assemble with two instructions at the same address did not return an error")
	}
}

func TestAssembleCountdownProgramMatchesCanonical(t *testing.T) {
	src := `
 LD 4
 ADD ZX D
 LD 3
 DEC D LT GT
 HALT
`
	bin, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	// Only the first five words are explicit; the remaining ROM cells are
	// left at their zero value rather than padded with HALT.
	for i := 0; i < 5; i++ {
		if bin[i] != isa.CountdownProgram[i] {
			t.Fatalf("bin[%d] = %#04x, want %#04x (matching isa.CountdownProgram)", i, bin[i], isa.CountdownProgram[i])
		}
	}
}
