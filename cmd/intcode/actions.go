package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reusee/intcode/amplifiers"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/runconfigs"
	"github.com/reusee/intcode/scripts"
	"github.com/samber/lo"
)

func formatInts(values []int64) string {
	return strings.Join(lo.Map(values, func(v int64, _ int) string {
		return strconv.FormatInt(v, 10)
	}), ",")
}

func runAction(ctx context.Context, w io.Writer, path string) func(logs.Logger, runconfigs.Capacity, runconfigs.Inputs) {
	return func(
		logger logs.Logger,
		capacity runconfigs.Capacity,
		inputs runconfigs.Inputs,
	) {
		ce(run(ctx, logger, w, path, int(capacity), inputs))
	}
}

func run(ctx context.Context, logger logs.Logger, w io.Writer, path string, capacity int, inputs []int64) error {
	m, err := intcode.Load(path, capacity)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "run",
		"path", path,
		"capacity", capacity,
		"inputs", len(inputs),
	)
	output, err := m.RunToEnd(inputs)
	if len(output) > 0 {
		fmt.Fprintln(w, formatInts(output))
	}
	if err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	return nil
}

func amplifyAction(ctx context.Context, w io.Writer, path string) func(amplifiers.Amplify, runconfigs.Capacity, runconfigs.Phases, runconfigs.Feedback) {
	return func(
		amplify amplifiers.Amplify,
		capacity runconfigs.Capacity,
		phases runconfigs.Phases,
		feedback runconfigs.Feedback,
	) {
		ce(amplifyFile(ctx, amplify, w, path, int(capacity), phases, bool(feedback)))
	}
}

func amplifyFile(ctx context.Context, amplify amplifiers.Amplify, w io.Writer, path string, capacity int, phases []int64, feedback bool) error {
	m, err := intcode.Load(path, capacity)
	if err != nil {
		return err
	}
	if len(phases) == 0 {
		// puzzle defaults
		phases = []int64{0, 1, 2, 3, 4}
		if feedback {
			phases = []int64{5, 6, 7, 8, 9}
		}
	}
	signal, setting, err := amplify(ctx, m, phases, feedback)
	if err != nil {
		return fmt.Errorf("amplify %s: %w", path, err)
	}
	fmt.Fprintf(w, "%d %s\n", signal, formatInts(setting))
	return nil
}

func scriptAction(ctx context.Context, path string) func(scripts.RunScript) {
	return func(
		runScript scripts.RunScript,
	) {
		_, err := runScript(ctx, path, nil)
		ce(err)
	}
}

func disassembleAction(ctx context.Context, w io.Writer, path string) func(runconfigs.Capacity) {
	return func(
		capacity runconfigs.Capacity,
	) {
		m, err := intcode.Load(path, int(capacity))
		ce(err)
		ce(intcode.Disassemble(w, m.Memory()))
	}
}

func replAction(ctx context.Context, path string) func(debugs.Tap, runconfigs.Capacity, runconfigs.Inputs) {
	return func(
		tap debugs.Tap,
		capacity runconfigs.Capacity,
		inputs runconfigs.Inputs,
	) {
		m, err := intcode.Load(path, int(capacity))
		ce(err)
		tap(ctx, path, debugs.MachineGlobals(m, inputs))
	}
}
