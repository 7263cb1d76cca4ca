package scripts

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Exec runs a driver script with the intcode module predeclared.
// src is anything accepted by starlark.ExecFileOptions: a string, []byte, or io.Reader; nil reads the file name.
func Exec(thread *starlark.Thread, name string, src any) (starlark.StringDict, error) {
	return starlark.ExecFileOptions(
		&syntax.FileOptions{
			While:           true,
			Recursion:       true,
			TopLevelControl: true,
			GlobalReassign:  true,
		},
		thread,
		name,
		src,
		starlark.StringDict{
			"intcode": Intcode,
		},
	)
}

type RunScript func(ctx context.Context, name string, src any) (starlark.StringDict, error)

func (Module) RunScript(
	logger logs.Logger,
	newSpan logs.NewSpan,
) RunScript {
	return func(ctx context.Context, name string, src any) (starlark.StringDict, error) {
		ctx, _ = newSpan(ctx, "")
		logger.InfoContext(ctx, "run script", "name", name)

		thread := &starlark.Thread{
			Name: name,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg, "script", name)
			},
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		globals, err := Exec(thread, name, src)
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		return globals, nil
	}
}
