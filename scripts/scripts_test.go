package scripts

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/modes"
	"go.starlark.net/starlark"
)

func exec(t *testing.T, src string) starlark.StringDict {
	t.Helper()
	globals, err := Exec(&starlark.Thread{Name: t.Name()}, "test.star", src)
	if err != nil {
		t.Fatal(err)
	}
	return globals
}

func TestMachineRun(t *testing.T) {
	globals := exec(t, `
m = intcode.machine([3, 0, 4, 0, 99])
out = m.run([123])
done = m.done()
mem = m.memory()
`)
	if str := globals["out"].String(); str != "[123]" {
		t.Fatalf("got %s", str)
	}
	if globals["done"] != starlark.True {
		t.Fatalf("got %v", globals["done"])
	}
	if str := globals["mem"].String(); str != "[123, 0, 4, 0, 99]" {
		t.Fatalf("got %s", str)
	}
}

func TestMachineResume(t *testing.T) {
	globals := exec(t, `
m = intcode.machine([3, 11, 3, 12, 1, 11, 12, 13, 4, 13, 99], capacity = 14)
first = m.run_with([5])
suspended = not m.done()
second = m.run_with(inputs = [3])
`)
	if str := globals["first"].String(); str != "[]" {
		t.Fatalf("got %s", str)
	}
	if globals["suspended"] != starlark.True {
		t.Fatal("expected suspended")
	}
	if str := globals["second"].String(); str != "[8]" {
		t.Fatalf("got %s", str)
	}
}

func TestMachineClone(t *testing.T) {
	globals := exec(t, `
m = intcode.machine([1, 0, 0, 0, 99])
c = m.clone()
c.run()
original = m.memory()
cloned = c.memory()
desc = str(c)
`)
	if str := globals["original"].String(); str != "[1, 0, 0, 0, 99]" {
		t.Fatalf("got %s", str)
	}
	if str := globals["cloned"].String(); str != "[2, 0, 0, 0, 99]" {
		t.Fatalf("got %s", str)
	}
	if str := globals["desc"].String(); str != `"<intcode.machine ip=4 done>"` {
		t.Fatalf("got %s", str)
	}
}

func TestDisassemble(t *testing.T) {
	globals := exec(t, `
text = intcode.machine([1002, 4, 3, 4, 33]).disassemble()
`)
	text, ok := starlark.AsString(globals["text"])
	if !ok {
		t.Fatal("expected string")
	}
	if !strings.HasPrefix(text, "0000  mul [4], 3, [4]\n") {
		t.Fatalf("got %s", text)
	}
}

func TestAmplifierBuiltins(t *testing.T) {
	globals := exec(t, `
impossible = intcode.chain(intcode.machine([3, 0, 3, 0, 99]), [0, 1])
result = intcode.best(intcode.machine([3, 0, 3, 0, 99]), [0, 1])
`)
	if globals["impossible"] != starlark.None {
		t.Fatalf("got %v", globals["impossible"])
	}
	if globals["result"] != starlark.None {
		t.Fatalf("got %v", globals["result"])
	}
}

func TestScriptErrors(t *testing.T) {
	for _, src := range []string{
		`intcode.machine([3, 0, 99]).run()`,
		`intcode.machine([42]).run()`,
		`intcode.machine(["a"])`,
		`intcode.parse("1,x")`,
		`intcode.machine([99]).foo()`,
		`intcode.load("testdata/missing.txt")`,
		`{intcode.machine([99]): 1}`,
	} {
		_, err := Exec(&starlark.Thread{}, "test.star", src)
		if err == nil {
			t.Fatalf("%s: should error", src)
		}
	}

	_, err := Exec(&starlark.Thread{}, "test.star", `intcode.machine([3, 0, 99]).run()`)
	if !strings.Contains(err.Error(), "end of input") {
		t.Fatalf("got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.txt")
	if err := os.WriteFile(path, []byte("104,1125899906842624,99\n"), 0644); err != nil {
		t.Fatal(err)
	}
	globals := exec(t, "out = intcode.load("+strconv.Quote(path)+", capacity = 8).run()")
	if str := globals["out"].String(); str != "[1125899906842624]" {
		t.Fatalf("got %s", str)
	}
}

func TestRunScript(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		runScript RunScript,
	) {
		globals, err := runScript(context.Background(), "testdata/amplify.star", nil)
		if err != nil {
			t.Fatal(err)
		}
		if str := globals["signal"].String(); str != "43210" {
			t.Fatalf("got %s", str)
		}
		if str := globals["setting"].String(); str != "[4, 3, 2, 1, 0]" {
			t.Fatalf("got %s", str)
		}
		if str := globals["loop_signal"].String(); str != "139629729" {
			t.Fatalf("got %s", str)
		}
		if !strings.Contains(buf.String(), "feedback 139629729") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestRunScriptCanceled(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	).Call(func(
		runScript RunScript,
	) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := runScript(ctx, "loop.star", `
while True:
    pass
`)
		if err == nil {
			t.Fatal("should error")
		}
	})
}
