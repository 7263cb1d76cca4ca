package intcode

import "strconv"

type OpCode int64

const (
	OpAdd OpCode = iota + 1
	OpMul
	OpIn
	OpOut
	OpJumpTrue
	OpJumpFalse
	OpLess
	OpEqual
	OpAdjustBase
	OpHalt OpCode = 99
)

var opNames = map[OpCode]string{
	OpAdd:        "add",
	OpMul:        "mul",
	OpIn:         "in",
	OpOut:        "out",
	OpJumpTrue:   "jt",
	OpJumpFalse:  "jf",
	OpLess:       "lt",
	OpEqual:      "eq",
	OpAdjustBase: "arb",
	OpHalt:       "halt",
}

// number of parameters following the instruction cell
var opParams = map[OpCode]int{
	OpAdd:        3,
	OpMul:        3,
	OpIn:         1,
	OpOut:        1,
	OpJumpTrue:   2,
	OpJumpFalse:  2,
	OpLess:       3,
	OpEqual:      3,
	OpAdjustBase: 1,
	OpHalt:       0,
}

func (o OpCode) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "op(" + strconv.FormatInt(int64(o), 10) + ")"
}

// Params returns the parameter count of a known opcode.
func (o OpCode) Params() (int, bool) {
	n, ok := opParams[o]
	return n, ok
}

type Mode int64

const (
	ModePosition Mode = iota
	ModeImmediate
	ModeRelative
)

// Instruction is a raw instruction cell.
type Instruction int64

func (i Instruction) Op() OpCode {
	return OpCode(i % 100)
}

// Mode returns the addressing mode of the idx-th parameter.
func (i Instruction) Mode(idx int) Mode {
	div := int64(100)
	for range idx {
		div *= 10
	}
	return Mode(int64(i) / div % 10)
}
