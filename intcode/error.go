package intcode

import "errors"

var (
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrUnknownOpmode = errors.New("unknown opmode")
	ErrInvalidOpmode = errors.New("invalid opmode")
	ErrOutOfBounds   = errors.New("out of bounds")
	ErrEOF           = errors.New("end of input")
	ErrNoTermination = errors.New("no termination")
	ErrSyntax        = errors.New("syntax error")
)
