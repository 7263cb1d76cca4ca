package main

import (
	"context"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/modes"
)

var (
	runPath     = cmds.Var[string]("run")
	amplifyPath = cmds.Var[string]("amplify")
	scriptPath  = cmds.Var[string]("script")
	disPath     = cmds.Var[string]("dis")
	replPath    = cmds.Var[string]("repl")
)

func main() {
	ce(cmds.Execute(os.Args[1:]))
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var actions int
	if *disPath != "" {
		scope.Call(disassembleAction(ctx, os.Stdout, *disPath))
		actions++
	}
	if *runPath != "" {
		scope.Call(runAction(ctx, os.Stdout, *runPath))
		actions++
	}
	if *amplifyPath != "" {
		scope.Call(amplifyAction(ctx, os.Stdout, *amplifyPath))
		actions++
	}
	if *scriptPath != "" {
		scope.Call(scriptAction(ctx, *scriptPath))
		actions++
	}
	if *replPath != "" {
		scope.Call(replAction(ctx, *replPath))
		actions++
	}
	if actions == 0 {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
}

func ce(err error) {
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}
}
