package intcode

import "fmt"

// Memory is the integer tape of a machine.
// All accesses from the interpreter go through Get and Set.
type Memory []int64

func (m Memory) Get(addr int64) (int64, error) {
	if addr < 0 || addr >= int64(len(m)) {
		return 0, fmt.Errorf("%w: read %d, size %d", ErrOutOfBounds, addr, len(m))
	}
	return m[addr], nil
}

func (m Memory) Set(addr int64, value int64) error {
	if addr < 0 || addr >= int64(len(m)) {
		return fmt.Errorf("%w: write %d, size %d", ErrOutOfBounds, addr, len(m))
	}
	m[addr] = value
	return nil
}
