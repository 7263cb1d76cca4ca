package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/scripts"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive Starlark session over the given values.
// The intcode module is always predeclared; machines are bound as script machine values.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := bindings(globals)

		thread := &starlark.Thread{
			Name: what,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg)
			},
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
		}, thread, mappings)
	}
}

func bindings(globals map[string]any) starlark.StringDict {
	ret := starlark.StringDict{
		"intcode": scripts.Intcode,
	}
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}
