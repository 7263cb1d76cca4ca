package scripts

import (
	"fmt"
	"strings"

	"github.com/reusee/intcode/intcode"
	"go.starlark.net/starlark"
)

// Machine wraps an intcode machine as a Starlark value.
type Machine struct {
	m *intcode.Machine
}

func NewMachine(m *intcode.Machine) *Machine {
	return &Machine{m: m}
}

var (
	_ starlark.Value    = new(Machine)
	_ starlark.HasAttrs = new(Machine)
)

func (m *Machine) String() string {
	state := "running"
	switch {
	case m.m.Err() != nil:
		state = "failed"
	case m.m.Done():
		state = "done"
	}
	return fmt.Sprintf("<intcode.machine ip=%d %s>", m.m.IP(), state)
}

func (m *Machine) Type() string {
	return "intcode.machine"
}

func (m *Machine) Freeze() {}

func (m *Machine) Truth() starlark.Bool {
	return starlark.True
}

func (m *Machine) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %s", m.Type())
}

var machineMethods = map[string]func(m *Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error){

	"run": func(m *Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		inputs, err := unpackInputs(b, args, kwargs)
		if err != nil {
			return nil, err
		}
		output, err := m.m.RunToEnd(inputs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		return toList(output), nil
	},

	"run_with": func(m *Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		inputs, err := unpackInputs(b, args, kwargs)
		if err != nil {
			return nil, err
		}
		var output []int64
		if _, err := m.m.RunWith(inputs, &output); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		return toList(output), nil
	},

	"done": func(m *Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		return starlark.Bool(m.m.Done()), nil
	},

	"clone": func(m *Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		return &Machine{m: m.m.Clone()}, nil
	},

	"memory": func(m *Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		return toList(m.m.Memory()), nil
	},

	"disassemble": func(m *Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		buf := new(strings.Builder)
		if err := intcode.Disassemble(buf, m.m.Memory()); err != nil {
			return nil, err
		}
		return starlark.String(buf.String()), nil
	},
}

func (m *Machine) Attr(name string) (starlark.Value, error) {
	method, ok := machineMethods[name]
	if !ok {
		return nil, nil
	}
	return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return method(m, b, args, kwargs)
	}), nil
}

func (m *Machine) AttrNames() []string {
	return []string{"clone", "disassemble", "done", "memory", "run", "run_with"}
}

func unpackInputs(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) ([]int64, error) {
	var inputs starlark.Iterable = starlark.NewList(nil)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "inputs?", &inputs); err != nil {
		return nil, err
	}
	return toInts(b.Name(), inputs)
}
