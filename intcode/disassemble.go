package intcode

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Disassemble writes one line per instruction of tape.
// Cells that do not decode to a complete instruction are written as data.
func Disassemble(w io.Writer, tape []int64) error {
	for ip := 0; ip < len(tape); {
		inst := Instruction(tape[ip])
		op := inst.Op()
		n, ok := op.Params()
		if !ok || ip+n >= len(tape) {
			if _, err := fmt.Fprintf(w, "%04d  data %d\n", ip, tape[ip]); err != nil {
				return err
			}
			ip++
			continue
		}

		operands := make([]string, 0, n)
		for i := range n {
			operand, ok := formatOperand(inst.Mode(i), tape[ip+1+i])
			if !ok {
				break
			}
			operands = append(operands, operand)
		}
		if len(operands) != n {
			if _, err := fmt.Fprintf(w, "%04d  data %d\n", ip, tape[ip]); err != nil {
				return err
			}
			ip++
			continue
		}

		line := fmt.Sprintf("%04d  %s", ip, op)
		if n > 0 {
			line += " " + strings.Join(operands, ", ")
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
		ip += 1 + n
	}
	return nil
}

func formatOperand(mode Mode, raw int64) (string, bool) {
	switch mode {
	case ModePosition:
		return "[" + strconv.FormatInt(raw, 10) + "]", true
	case ModeImmediate:
		return strconv.FormatInt(raw, 10), true
	case ModeRelative:
		if raw < 0 {
			return "[rb" + strconv.FormatInt(raw, 10) + "]", true
		}
		return "[rb+" + strconv.FormatInt(raw, 10) + "]", true
	}
	return "", false
}
