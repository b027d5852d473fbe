package main

import (
	"os"

	"github.com/reusee/soup/cmds"
)

var tool = &Tool{
	Output:    os.Stdout,
	Length:    64,
	StepLimit: 2048,
	Trials:    1000,
}

func init() {
	cmds.Define("-length", cmds.Func(func(n int) {
		tool.Length = n
	}).Desc("genome length for asm, default 64"))
	cmds.Define("-step-limit", cmds.Func(func(n int) {
		tool.StepLimit = n
	}).Desc("instruction budget, default 2048"))
	cmds.Define("-trials", cmds.Func(func(n int) {
		tool.Trials = n
	}).Desc("assay trials per orientation, default 1000"))
	cmds.Define("-seed", cmds.Func(func(n uint64) {
		tool.Seed = n
	}).Desc("assay random seed, 0 for time based"))
	cmds.Define("-match", cmds.Func(tool.SetMatch).Desc("assay success rule: either (default) or victim"))

	cmds.Define("asm", cmds.Func(tool.Asm).Desc("assemble a program into hex"))
	cmds.Define("disasm", cmds.Func(tool.Disasm).Desc("print the program of a hex genome"))
	cmds.Define("trace", cmds.Func(tool.Trace).Desc("trace the interaction of two hex genomes"))
	cmds.Define("assay", cmds.Func(tool.Assay).Desc("measure replication rates of a hex genome"))
}

func main() {
	cmds.Execute(os.Args[1:])
}
