package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/amplifiers"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/runconfigs"
	"github.com/reusee/intcode/scripts"
)

type Module struct {
	dscope.Module
	Configs    runconfigs.Module
	Amplifiers amplifiers.Module
	Scripts    scripts.Module
	Debugs     debugs.Module
}
