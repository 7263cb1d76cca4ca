package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// Module provides the running mode, and the running test in development mode.
type Module struct {
	dscope.Module
	mode Mode
	t    *testing.T
}

func ForProduction() Module {
	return Module{
		mode: ModeProduction,
	}
}

func ForTest(t *testing.T) Module {
	return Module{
		mode: ModeDevelopment,
		t:    t,
	}
}

func (m Module) T() *testing.T {
	return m.t
}

func (m Module) Mode() Mode {
	return m.mode
}
