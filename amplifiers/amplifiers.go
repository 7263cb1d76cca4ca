package amplifiers

import (
	"fmt"

	"github.com/reusee/intcode/intcode"
)

// Score runs one phase setting against a program, reporting false when the setting is impossible.
type Score func(m *intcode.Machine, phases []int64) (signal int64, ok bool, err error)

var (
	_ Score = Chain
	_ Score = Feedback
)

// Chain runs one clone of m per phase in series.
// Each clone gets its phase and the previous signal, starting from 0, and passes on its first output.
// ok is false when some clone produces no output.
func Chain(m *intcode.Machine, phases []int64) (signal int64, ok bool, err error) {
	for i, phase := range phases {
		output, err := m.Clone().RunToEnd([]int64{phase, signal})
		if err != nil {
			return 0, false, fmt.Errorf("amplifier %d: %w", i, err)
		}
		if len(output) == 0 {
			return 0, false, nil
		}
		signal = output[0]
	}
	return signal, true, nil
}

// Feedback connects one clone of m per phase in a loop.
// Every clone is seeded with its phase and the first also gets the initial 0 signal.
// Clones are resumed round-robin, each turn's outputs becoming the next clone's input, until all have halted.
// ok is false when a clone produces nothing on its turn.
// The result is the last signal fed back to the first clone.
func Feedback(m *intcode.Machine, phases []int64) (signal int64, ok bool, err error) {
	if len(phases) == 0 {
		return 0, false, nil
	}

	amps := make([]*intcode.Machine, len(phases))
	pending := make([][]int64, len(phases))
	for i, phase := range phases {
		amps[i] = m.Clone()
		pending[i] = []int64{phase}
	}
	signals := []int64{0}

	for !allDone(amps) {
		for i, amp := range amps {
			input := append(pending[i], signals...)
			pending[i] = nil
			var output []int64
			if _, err := amp.RunWith(input, &output); err != nil {
				return 0, false, fmt.Errorf("amplifier %d: %w", i, err)
			}
			if len(output) == 0 {
				return 0, false, nil
			}
			signals = output
		}
	}

	return signals[len(signals)-1], true, nil
}

func allDone(amps []*intcode.Machine) bool {
	for _, amp := range amps {
		if !amp.Done() {
			return false
		}
	}
	return true
}
