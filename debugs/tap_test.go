package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/modes"
	"go.starlark.net/starlark"
)

func TestTapProvided(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		if tap == nil {
			t.Fatal("no tap")
		}
	})
}

func TestBindings(t *testing.T) {
	predeclared := bindings(map[string]any{
		"m":      intcode.New([]int64{3, 0, 4, 0, 99}),
		"inputs": []int64{42},
	})
	thread := &starlark.Thread{
		Name: t.Name(),
	}
	globals, err := starlark.ExecFile(thread, "tap.star", `
out = m.run(inputs)
tape = intcode.parse("1,0,0,0,99")
`, predeclared)
	if err != nil {
		t.Fatal(err)
	}
	if str := globals["out"].String(); str != "[42]" {
		t.Fatalf("got %s", str)
	}
	if str := globals["tape"].String(); str != "[1, 0, 0, 0, 99]" {
		t.Fatalf("got %s", str)
	}
}

func TestMachineGlobals(t *testing.T) {
	m := intcode.New([]int64{3, 0, 4, 0, 99})
	predeclared := bindings(MachineGlobals(m, []int64{42}))
	if _, ok := predeclared["listing"].(starlark.Callable); !ok {
		t.Fatalf("got %T", predeclared["listing"])
	}

	thread := &starlark.Thread{
		Name: t.Name(),
	}
	globals, err := starlark.ExecFile(thread, "tap.star", `
first = trace[0]
ops = [opcodes[0], opcodes[2], opcodes[4]]
failed = trace_err != None
`, predeclared)
	if err != nil {
		t.Fatal(err)
	}
	first := globals["first"].(starlark.HasAttrs)
	value, err := first.Attr("value")
	if err != nil {
		t.Fatal(err)
	}
	if value.String() != "42" {
		t.Fatalf("got %v", value)
	}
	if str := globals["ops"].String(); str != `["in", "out", "halt"]` {
		t.Fatalf("got %s", str)
	}
	if globals["failed"] != starlark.False {
		t.Fatalf("got %v", globals["failed"])
	}

	// the bound machine itself is not run
	if m.IP() != 0 || m.Done() {
		t.Fatal("machine mutated")
	}
}

func TestMachineGlobalsStarving(t *testing.T) {
	globals := MachineGlobals(intcode.New([]int64{3, 0, 99}), nil)
	trace := globals["trace"].([]*intcode.Interrupt)
	if len(trace) != 1 || !trace[0].NeedInput {
		t.Fatalf("got %v", trace)
	}
	if globals["trace_err"] != nil {
		t.Fatalf("got %v", globals["trace_err"])
	}
}
