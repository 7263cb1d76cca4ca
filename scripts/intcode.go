package scripts

import (
	"fmt"
	"strings"

	"github.com/reusee/intcode/amplifiers"
	"github.com/reusee/intcode/intcode"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// Intcode is the predeclared intcode module of driver scripts.
var Intcode = &starlarkstruct.Module{
	Name: "intcode",
	Members: starlark.StringDict{
		"parse":    starlark.NewBuiltin("parse", parse),
		"load":     starlark.NewBuiltin("load", load),
		"machine":  starlark.NewBuiltin("machine", newMachine),
		"chain":    starlark.NewBuiltin("chain", scoreBuiltin(amplifiers.Chain)),
		"feedback": starlark.NewBuiltin("feedback", scoreBuiltin(amplifiers.Feedback)),
		"best":     starlark.NewBuiltin("best", best),
	},
}

func parse(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "text", &text); err != nil {
		return nil, err
	}
	tape, err := intcode.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return toList(tape), nil
}

func load(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var path string
	var capacity int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "path", &path, "capacity?", &capacity); err != nil {
		return nil, err
	}
	m, err := intcode.Load(path, capacity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return &Machine{m: m}, nil
}

func newMachine(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var tapeValue starlark.Iterable
	var capacity int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "tape", &tapeValue, "capacity?", &capacity); err != nil {
		return nil, err
	}
	tape, err := toInts(b.Name(), tapeValue)
	if err != nil {
		return nil, err
	}
	return &Machine{m: intcode.WithInitialSize(tape, capacity)}, nil
}

func unpackSetting(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, extra ...any) (*Machine, []int64, error) {
	var m *Machine
	var phasesValue starlark.Iterable
	pairs := append([]any{"machine", &m, "phases", &phasesValue}, extra...)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, pairs...); err != nil {
		return nil, nil, err
	}
	phases, err := toInts(b.Name(), phasesValue)
	if err != nil {
		return nil, nil, err
	}
	return m, phases, nil
}

// scoreBuiltin returns None for impossible settings.
func scoreBuiltin(score amplifiers.Score) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		m, phases, err := unpackSetting(b, args, kwargs)
		if err != nil {
			return nil, err
		}
		signal, ok, err := score(m.m, phases)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		if !ok {
			return starlark.None, nil
		}
		return starlark.MakeInt64(signal), nil
	}
}

func best(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var feedback bool
	m, phases, err := unpackSetting(b, args, kwargs, "feedback?", &feedback)
	if err != nil {
		return nil, err
	}
	score := amplifiers.Score(amplifiers.Chain)
	if feedback {
		score = amplifiers.Feedback
	}
	signal, setting, ok, err := amplifiers.Best(m.m, phases, score)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	if !ok {
		return starlark.None, nil
	}
	return starlark.Tuple{starlark.MakeInt64(signal), toList(setting)}, nil
}
