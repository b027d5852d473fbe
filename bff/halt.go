package bff

type Halt uint8

const (
	HaltSteps Halt = iota + 1
	HaltOutOfTape
	HaltUnmatchedOpen
	HaltUnmatchedClose
)

func (h Halt) String() string {
	switch h {
	case HaltSteps:
		return "steps exhausted"
	case HaltOutOfTape:
		return "ip out of tape"
	case HaltUnmatchedOpen:
		return "unmatched ["
	case HaltUnmatchedClose:
		return "unmatched ]"
	}
	return "running"
}
