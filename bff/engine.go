package bff

import "github.com/reusee/soup/genomes"

const DefaultStepLimit = 2048

type Interactor interface {
	Interact(a, b genomes.Genome) (genomes.Genome, genomes.Genome)
}

// Engine runs a VM over a and b and splits the tape back into two genomes.
// Inputs are not modified.
type Engine struct {
	StepLimit int
}

var _ Interactor = Engine{}

func (e Engine) Interact(a, b genomes.Genome) (genomes.Genome, genomes.Genome) {
	vm := NewVM(a, b)
	vm.Run(e.StepLimit)
	outA, outB := vm.Split(len(a))
	return outA, outB
}

// InteractFunc adapts a function to Interactor.
type InteractFunc func(a, b genomes.Genome) (genomes.Genome, genomes.Genome)

func (f InteractFunc) Interact(a, b genomes.Genome) (genomes.Genome, genomes.Genome) {
	return f(a, b)
}
