package bff

// VM runs one interaction. Tape is the concatenation of two genomes; Head1
// starts at the second one.
type VM struct {
	Tape  []byte
	IP    int
	Head0 int
	Head1 int
	Steps int
}

func NewVM(a, b []byte) *VM {
	tape := make([]byte, len(a)+len(b))
	copy(tape, a)
	copy(tape[len(a):], b)
	return &VM{
		Tape:  tape,
		Head1: len(a),
	}
}

// Split returns copies of the two halves of the tape at the given length.
func (v *VM) Split(length int) ([]byte, []byte) {
	a := make([]byte, length)
	b := make([]byte, len(v.Tape)-length)
	copy(a, v.Tape[:length])
	copy(b, v.Tape[length:])
	return a, b
}

// matchForward returns the position after the ] closing the [ at ip, or -1.
func (v *VM) matchForward() int {
	depth := 1
	for pos := v.IP + 1; pos < len(v.Tape); pos++ {
		switch OpCode(v.Tape[pos]) {
		case OpOpen:
			depth++
		case OpClose:
			depth--
			if depth == 0 {
				return pos + 1
			}
		}
	}
	return -1
}

// matchBackward returns the position after the [ opening the ] at ip, or -1.
func (v *VM) matchBackward() int {
	depth := 1
	for pos := v.IP - 1; pos >= 0; pos-- {
		switch OpCode(v.Tape[pos]) {
		case OpClose:
			depth++
		case OpOpen:
			depth--
			if depth == 0 {
				return pos + 1
			}
		}
	}
	return -1
}
