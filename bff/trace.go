package bff

type Step struct {
	N     int
	IP    int
	Op    OpCode
	Head0 int
	Head1 int
}

// Trace runs like Run, calling fn before each instruction.
func (v *VM) Trace(limit int, fn func(Step)) Halt {
	return v.run(limit, fn)
}
