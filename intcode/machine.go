package intcode

import "slices"

// Machine is an Intcode interpreter instance.
// A machine owns its memory; use Clone to explore independent runs from the same state.
type Machine struct {
	memory Memory
	ip     int
	base   int64
	done   bool
	err    error
}

func New(tape []int64) *Machine {
	return WithInitialSize(tape, 0)
}

// WithInitialSize creates a machine whose memory is zero-padded to capacity.
// Tapes longer than capacity are kept whole.
func WithInitialSize(tape []int64, capacity int) *Machine {
	memory := make(Memory, max(len(tape), capacity))
	copy(memory, tape)
	return &Machine{
		memory: memory,
	}
}

func (m *Machine) Clone() *Machine {
	ret := *m
	ret.memory = slices.Clone(m.memory)
	return &ret
}

// Done reports whether the halt instruction was executed.
func (m *Machine) Done() bool {
	return m.done
}

// Err returns the error that terminated the machine, if any.
func (m *Machine) Err() error {
	return m.err
}

func (m *Machine) IP() int {
	return m.ip
}

func (m *Machine) RelativeBase() int64 {
	return m.base
}

// Memory returns a copy of the current memory.
func (m *Machine) Memory() []int64 {
	return slices.Clone(m.memory)
}
