package recite

import (
	"fmt"
	"strings"
)

// validate checks the Result invariants against the attempt it was produced
// from and returns an error on the first violation. Verify itself never
// fails; this is a test hook.
func (r Result) validate(attempt string) error {
	var concat strings.Builder
	for i, run := range r.Runs {
		switch run.State {
		case StateMatch, StateMismatch, StateNeutral:
		default:
			return fmt.Errorf("run[%d]: unknown state %d", i, int(run.State))
		}
		if run.Text == "" {
			return fmt.Errorf("run[%d]: empty text", i)
		}
		if i > 0 && r.Runs[i-1].State == run.State {
			return fmt.Errorf("run[%d]: adjacent runs share state %s", i, run.State)
		}
		concat.WriteString(run.Text)
	}
	if concat.String() != attempt {
		return fmt.Errorf("runs do not reconstruct the attempt")
	}

	if r.MatchedMiddle != nil {
		if r.MatchedMiddle.Start < 0 || r.MatchedMiddle.End < r.MatchedMiddle.Start {
			return fmt.Errorf("matched middle span [%d, %d) is invalid", r.MatchedMiddle.Start, r.MatchedMiddle.End)
		}
	}
	if r.MissingHead != nil {
		if r.MissingHead.Offset != 0 || r.MissingHead.Text == "" {
			return fmt.Errorf("missing head must be non-empty text at offset 0")
		}
	}
	if r.MissingTail != nil {
		if r.MissingTail.Text == "" {
			return fmt.Errorf("missing tail must be non-empty")
		}
		if r.MatchedMiddle == nil || r.MissingTail.Offset != r.MatchedMiddle.End {
			return fmt.Errorf("missing tail must start where the matched middle ends")
		}
	}
	return nil
}
