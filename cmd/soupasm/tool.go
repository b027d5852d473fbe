package main

import (
	"fmt"
	"io"

	"github.com/reusee/soup/assay"
	"github.com/reusee/soup/bff"
	"github.com/reusee/soup/genomes"
	"github.com/reusee/soup/randoms"
)

// Tool holds the settings the commands share. Settings apply to commands
// that follow them on the command line.
type Tool struct {
	Output    io.Writer
	Length    int
	StepLimit int
	Trials    int
	Seed      uint64
	Match     assay.Match
}

func (t *Tool) SetMatch(str string) error {
	m, err := assay.ParseMatch(str)
	if err != nil {
		return err
	}
	t.Match = m
	return nil
}

func (t *Tool) Asm(program string) error {
	if t.Length < 1 {
		return fmt.Errorf("bad length %d", t.Length)
	}
	_, err := fmt.Fprintln(t.Output, bff.Assemble(program, t.Length).Hex())
	return err
}

func (t *Tool) Disasm(hex string) error {
	g, err := genomes.ParseHex(hex)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(t.Output, bff.Disassemble(g))
	return err
}

func (t *Tool) Trace(hexA string, hexB string) error {
	a, err := genomes.ParseHex(hexA)
	if err != nil {
		return err
	}
	b, err := genomes.ParseHex(hexB)
	if err != nil {
		return err
	}
	if len(a) != len(b) {
		return fmt.Errorf("genome lengths differ: %d and %d", len(a), len(b))
	}

	vm := bff.NewVM(a, b)
	halt := vm.Trace(t.StepLimit, func(step bff.Step) {
		fmt.Fprintf(t.Output, "%5d ip=%3d op=%s h0=%3d h1=%3d\n",
			step.N, step.IP, step.Op, step.Head0, step.Head1)
	})
	outA, outB := vm.Split(len(a))
	fmt.Fprintf(t.Output, "halt: %s after %d steps\n", halt, vm.Steps)
	fmt.Fprintf(t.Output, "a: %s\n", genomes.Genome(outA).Hex())
	_, err = fmt.Fprintf(t.Output, "b: %s\n", genomes.Genome(outB).Hex())
	return err
}

func (t *Tool) Assay(hex string) error {
	template, err := genomes.ParseHex(hex)
	if err != nil {
		return err
	}
	rates := assay.Assay{
		Trials: t.Trials,
		Engine: bff.Engine{
			StepLimit: t.StepLimit,
		},
		Match: t.Match,
	}.Measure(template, randoms.New(t.Seed))
	_, err = fmt.Fprintf(t.Output,
		"infect_as_A->B success_rate=%.3f  infect_as_B->A success_rate=%.3f\n",
		rates.TemplateFirst, rates.TemplateSecond)
	return err
}
