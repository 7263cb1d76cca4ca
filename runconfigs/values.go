package runconfigs

import (
	"fmt"

	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/vars"
	"github.com/samber/lo"
)

type Capacity int

type Inputs []int64

type Phases []int64

type Feedback bool

var (
	capacityFlag = cmds.Var[int]("-capacity")
	inputsFlag   = cmds.Collect[[]int64]("-input")
	phasesFlag   = cmds.Var[[]int64]("-phases")
	feedbackFlag = cmds.Switch("-feedback")
)

func (Module) Capacity(
	loader configs.Loader,
) Capacity {
	return Capacity(vars.FirstNonZero(
		*capacityFlag,
		first[int](loader, "capacity"),
	))
}

func (Module) Inputs(
	loader configs.Loader,
) Inputs {
	return vars.FirstNonEmpty(
		lo.Flatten(*inputsFlag),
		first[[]int64](loader, "inputs"),
	)
}

// Phases takes the flag over the first config file defining phases.
// Every config layer is checked, including shadowed ones.
func (Module) Phases(
	loader configs.Loader,
) Phases {
	phases := *phasesFlag
	checkPhases(phases, "-phases")
	for layer, err := range configs.All[[]int64](loader, "phases") {
		if err != nil {
			panic(err)
		}
		checkPhases(layer, "config")
		if len(phases) == 0 {
			phases = layer
		}
	}
	return phases
}

func checkPhases(phases []int64, from string) {
	if len(lo.Uniq(phases)) != len(phases) {
		panic(fmt.Errorf("duplicated phase setting from %s: %v", from, phases))
	}
}

func (Module) Feedback(
	loader configs.Loader,
) Feedback {
	return Feedback(*feedbackFlag || first[bool](loader, "feedback"))
}

func first[T any](loader configs.Loader, path string) T {
	value, err := configs.First[T](loader, path)
	if err != nil {
		panic(err)
	}
	return value
}
