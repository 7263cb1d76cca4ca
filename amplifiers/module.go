package amplifiers

import (
	"context"
	"errors"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

var ErrImpossible = errors.New("no possible phase setting")

// Amplify searches the phase setting producing the highest signal.
type Amplify func(
	ctx context.Context,
	m *intcode.Machine,
	phases []int64,
	feedback bool,
) (signal int64, setting []int64, err error)

func (Module) Amplify(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Amplify {
	return func(ctx context.Context, m *intcode.Machine, phases []int64, feedback bool) (int64, []int64, error) {
		ctx, _ = newSpan(ctx, "")

		score := Score(Chain)
		if feedback {
			score = Feedback
		}
		logger.InfoContext(ctx, "amplify",
			"phases", phases,
			"feedback", feedback,
		)

		tried := 0
		best, setting, ok, err := Best(m, phases, func(m *intcode.Machine, phases []int64) (int64, bool, error) {
			if err := ctx.Err(); err != nil {
				return 0, false, err
			}
			tried++
			signal, ok, err := score(m, phases)
			if err != nil {
				return 0, false, err
			}
			logger.DebugContext(ctx, "setting",
				"phases", phases,
				"signal", signal,
				"possible", ok,
			)
			return signal, ok, nil
		})
		if err != nil {
			return 0, nil, logs.WrapSpan(ctx, err)
		}
		if !ok {
			return 0, nil, logs.WrapSpan(ctx, ErrImpossible)
		}

		logger.InfoContext(ctx, "best setting",
			"setting", setting,
			"signal", best,
			"tried", tried,
		)
		return best, setting, nil
	}
}
