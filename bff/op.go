package bff

type OpCode byte

const (
	OpHead0Next OpCode = '>'
	OpHead0Prev OpCode = '<'
	OpHead1Next OpCode = '}'
	OpHead1Prev OpCode = '{'
	OpInc       OpCode = '+'
	OpDec       OpCode = '-'
	OpExport    OpCode = '.' // tape[head1] = tape[head0]
	OpImport    OpCode = ',' // tape[head0] = tape[head1]
	OpOpen      OpCode = '['
	OpClose     OpCode = ']'
)

var OpCodes = []OpCode{
	OpHead0Next,
	OpHead0Prev,
	OpHead1Next,
	OpHead1Prev,
	OpInc,
	OpDec,
	OpExport,
	OpImport,
	OpOpen,
	OpClose,
}

func (o OpCode) Valid() bool {
	switch o {
	case OpHead0Next, OpHead0Prev, OpHead1Next, OpHead1Prev,
		OpInc, OpDec, OpExport, OpImport, OpOpen, OpClose:
		return true
	}
	return false
}

func (o OpCode) String() string {
	if o.Valid() {
		return string(rune(o))
	}
	return "_"
}
