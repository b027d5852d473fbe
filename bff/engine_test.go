package bff

import (
	"testing"

	"github.com/reusee/soup/genomes"
	"github.com/reusee/soup/randoms"
)

func TestEngine_ZeroGenomes(t *testing.T) {
	a := make(genomes.Genome, 2)
	b := make(genomes.Genome, 2)
	outA, outB := Engine{StepLimit: DefaultStepLimit}.Interact(a, b)
	if !outA.Equal(a) || !outB.Equal(b) {
		t.Fatalf("got %v %v", outA, outB)
	}
}

func TestEngine_ZeroStepLimit(t *testing.T) {
	r := randoms.New(3)
	for range 100 {
		a := genomes.Random(r, 64)
		b := genomes.Random(r, 64)
		outA, outB := Engine{}.Interact(a, b)
		if !outA.Equal(a) || !outB.Equal(b) {
			t.Fatal("zero step limit must not change anything")
		}
	}
}

func TestEngine_InputsUntouched(t *testing.T) {
	a := Assemble("+>+>+", 8)
	b := make(genomes.Genome, 8)
	before := a.Clone()
	outA, _ := Engine{StepLimit: DefaultStepLimit}.Interact(a, b)
	if !a.Equal(before) {
		t.Fatal("input modified")
	}
	if outA.Equal(before) {
		t.Fatal("program should modify its own half")
	}
}

func TestEngine_SelfCopy(t *testing.T) {
	// copy bytes from head0 to head1 until a zero byte is reached
	template := Assemble("[.>}]", 8)
	victim := make(genomes.Genome, 8)
	outA, outB := Engine{StepLimit: DefaultStepLimit}.Interact(template, victim)
	if !outA.Equal(template) {
		t.Fatalf("got %s", Disassemble(outA))
	}
	if !outB.Equal(template) {
		t.Fatalf("got %s", Disassemble(outB))
	}
}

func TestInteractFunc(t *testing.T) {
	var f Interactor = InteractFunc(func(a, b genomes.Genome) (genomes.Genome, genomes.Genome) {
		return b, a
	})
	a, b := f.Interact(genomes.Genome{1}, genomes.Genome{2})
	if a[0] != 2 || b[0] != 1 {
		t.Fatal()
	}
}
