package bff

// Run executes at most limit instructions and reports why it stopped.
// Any tape content is a valid program.
func (v *VM) Run(limit int) Halt {
	return v.run(limit, nil)
}

func (v *VM) run(limit int, trace func(Step)) Halt {
	n := len(v.Tape)
	for {
		if v.Steps >= limit {
			return HaltSteps
		}
		if v.IP < 0 || v.IP >= n {
			return HaltOutOfTape
		}

		op := OpCode(v.Tape[v.IP])
		if trace != nil {
			trace(Step{
				N:     v.Steps,
				IP:    v.IP,
				Op:    op,
				Head0: v.Head0,
				Head1: v.Head1,
			})
		}

		switch op {

		case OpHead0Next:
			v.Head0 = (v.Head0 + 1) % n
			v.IP++

		case OpHead0Prev:
			v.Head0 = (v.Head0 + n - 1) % n
			v.IP++

		case OpHead1Next:
			v.Head1 = (v.Head1 + 1) % n
			v.IP++

		case OpHead1Prev:
			v.Head1 = (v.Head1 + n - 1) % n
			v.IP++

		case OpInc:
			v.Tape[v.Head0]++
			v.IP++

		case OpDec:
			v.Tape[v.Head0]--
			v.IP++

		case OpExport:
			v.Tape[v.Head1] = v.Tape[v.Head0]
			v.IP++

		case OpImport:
			v.Tape[v.Head0] = v.Tape[v.Head1]
			v.IP++

		case OpOpen:
			if v.Tape[v.Head0] == 0 {
				next := v.matchForward()
				if next < 0 {
					return HaltUnmatchedOpen
				}
				v.IP = next
			} else {
				v.IP++
			}

		case OpClose:
			if v.Tape[v.Head0] != 0 {
				next := v.matchBackward()
				if next < 0 {
					return HaltUnmatchedClose
				}
				v.IP = next
			} else {
				v.IP++
			}

		default:
			v.IP++

		}

		v.Steps++
	}
}
