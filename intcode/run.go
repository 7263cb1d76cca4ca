package intcode

import (
	"fmt"
	"iter"
)

// Input supplies input values. ok is false when no value is available now.
type Input func() (value int64, ok bool)

func Values(values ...int64) Input {
	return func() (ret int64, ok bool) {
		if len(values) == 0 {
			return
		}
		ret = values[0]
		values = values[1:]
		return ret, true
	}
}

// Exec runs the machine until it halts, fails, or starves for input.
// Every produced value is yielded as an output interrupt. On starvation InterruptNeedInput is
// yielded and the sequence ends with the machine suspended on the input instruction; a later
// Exec call resumes it. Breaking out of the loop also leaves the machine in a resumable state.
func (m *Machine) Exec(input Input) iter.Seq2[*Interrupt, error] {
	return func(yield func(*Interrupt, error) bool) {
		if m.err != nil {
			yield(nil, m.err)
			return
		}
		for !m.done {
			intr, err := m.step(input)
			if err != nil {
				m.err = fmt.Errorf("ip %d: %w", m.ip, err)
				// a value produced by the failing instruction is still delivered
				if intr != nil && !yield(intr, nil) {
					return
				}
				yield(nil, m.err)
				return
			}
			if intr == nil {
				continue
			}
			if !yield(intr, nil) {
				return
			}
			if intr.NeedInput {
				return
			}
		}
	}
}

// RunWith runs with the available input, appending produced values to output.
// Running out of input suspends the machine and is not an error.
// It returns the number of values appended.
func (m *Machine) RunWith(input []int64, output *[]int64) (n int, err error) {
	for intr, e := range m.Exec(Values(input...)) {
		if e != nil {
			return n, e
		}
		if intr.Output {
			*output = append(*output, intr.Value)
			n++
		}
	}
	return n, nil
}

// RunToEnd runs until halt using only the given input.
// Running out of input fails with ErrEOF.
func (m *Machine) RunToEnd(input []int64) (output []int64, err error) {
	for intr, e := range m.Exec(Values(input...)) {
		if e != nil {
			return output, e
		}
		if intr.NeedInput {
			m.err = fmt.Errorf("ip %d: %w", m.ip, ErrEOF)
			return output, m.err
		}
		output = append(output, intr.Value)
	}
	return output, nil
}

func (m *Machine) step(input Input) (*Interrupt, error) {
	cell, err := m.memory.Get(int64(m.ip))
	if err != nil {
		return nil, err
	}
	inst := Instruction(cell)

	switch op := inst.Op(); op {

	case OpAdd:
		return nil, m.binOp(inst, func(a, b int64) int64 {
			return a + b
		})

	case OpMul:
		return nil, m.binOp(inst, func(a, b int64) int64 {
			return a * b
		})

	case OpIn:
		dst, err := m.addr(inst, 0)
		if err != nil {
			return nil, err
		}
		var value int64
		var ok bool
		if input != nil {
			value, ok = input()
		}
		if !ok {
			// ip stays on this instruction
			return InterruptNeedInput, nil
		}
		if err := m.memory.Set(dst, value); err != nil {
			return nil, err
		}
		return nil, m.advance(2)

	case OpOut:
		value, err := m.arg(inst, 0)
		if err != nil {
			return nil, err
		}
		return &Interrupt{
			Output: true,
			Value:  value,
		}, m.advance(2)

	case OpJumpTrue:
		return nil, m.jumpIf(inst, func(v int64) bool {
			return v != 0
		})

	case OpJumpFalse:
		return nil, m.jumpIf(inst, func(v int64) bool {
			return v == 0
		})

	case OpLess:
		return nil, m.binOp(inst, func(a, b int64) int64 {
			if a < b {
				return 1
			}
			return 0
		})

	case OpEqual:
		return nil, m.binOp(inst, func(a, b int64) int64 {
			if a == b {
				return 1
			}
			return 0
		})

	case OpAdjustBase:
		value, err := m.arg(inst, 0)
		if err != nil {
			return nil, err
		}
		m.base += value
		return nil, m.advance(2)

	case OpHalt:
		m.done = true
		return nil, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOpcode, op)
	}
}

func (m *Machine) binOp(inst Instruction, fn func(a, b int64) int64) error {
	a, err := m.arg(inst, 0)
	if err != nil {
		return err
	}
	b, err := m.arg(inst, 1)
	if err != nil {
		return err
	}
	dst, err := m.addr(inst, 2)
	if err != nil {
		return err
	}
	if err := m.memory.Set(dst, fn(a, b)); err != nil {
		return err
	}
	return m.advance(4)
}

func (m *Machine) jumpIf(inst Instruction, cond func(int64) bool) error {
	value, err := m.arg(inst, 0)
	if err != nil {
		return err
	}
	target, err := m.arg(inst, 1)
	if err != nil {
		return err
	}
	if !cond(value) {
		return m.advance(3)
	}
	if target < 0 || target >= int64(len(m.memory)) {
		return fmt.Errorf("%w: jump to %d, size %d", ErrOutOfBounds, target, len(m.memory))
	}
	m.ip = int(target)
	return nil
}

func (m *Machine) advance(n int) error {
	if m.ip+n >= len(m.memory) {
		return fmt.Errorf("%w: advance %d past size %d", ErrNoTermination, n, len(m.memory))
	}
	m.ip += n
	return nil
}

// param returns the raw idx-th parameter of the current instruction.
func (m *Machine) param(idx int) (int64, error) {
	return m.memory.Get(int64(m.ip + 1 + idx))
}

// addr resolves the idx-th parameter as a write address.
func (m *Machine) addr(inst Instruction, idx int) (int64, error) {
	raw, err := m.param(idx)
	if err != nil {
		return 0, err
	}
	switch mode := inst.Mode(idx); mode {
	case ModePosition:
		return raw, nil
	case ModeRelative:
		return m.base + raw, nil
	case ModeImmediate:
		return 0, fmt.Errorf("%w: write through immediate parameter %d", ErrInvalidOpmode, idx)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownOpmode, mode)
	}
}

// arg resolves the idx-th parameter as a value.
func (m *Machine) arg(inst Instruction, idx int) (int64, error) {
	raw, err := m.param(idx)
	if err != nil {
		return 0, err
	}
	switch mode := inst.Mode(idx); mode {
	case ModeImmediate:
		return raw, nil
	case ModePosition:
		return m.memory.Get(raw)
	case ModeRelative:
		return m.memory.Get(m.base + raw)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownOpmode, mode)
	}
}
