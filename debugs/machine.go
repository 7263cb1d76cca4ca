package debugs

import (
	"strings"

	"github.com/reusee/intcode/intcode"
)

// MachineGlobals binds a machine for a tap session.
// A clone of m is run with inputs beforehand; its interrupts and error are bound as trace and trace_err.
func MachineGlobals(m *intcode.Machine, inputs []int64) map[string]any {
	var trace []*intcode.Interrupt
	var traceErr error
	for intr, err := range m.Clone().Exec(intcode.Values(inputs...)) {
		if err != nil {
			traceErr = err
			break
		}
		trace = append(trace, intr)
	}

	return map[string]any{
		"m":         m,
		"inputs":    inputs,
		"trace":     trace,
		"trace_err": traceErr,
		"opcodes":   opcodes(m.Memory()),
		"listing": func() string {
			buf := new(strings.Builder)
			if err := intcode.Disassemble(buf, m.Memory()); err != nil {
				return err.Error()
			}
			return buf.String()
		},
	}
}

// opcodes maps the address of every cell holding a known opcode to it.
func opcodes(memory []int64) map[int]intcode.OpCode {
	ret := make(map[int]intcode.OpCode)
	for addr, cell := range memory {
		op := intcode.Instruction(cell).Op()
		if _, ok := op.Params(); ok {
			ret[addr] = op
		}
	}
	return ret
}
