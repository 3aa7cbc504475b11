package recite

// buildRuns folds the LCS mask and unit raw ranges into minimal runs over the
// raw attempt. Raw spans not covered by any kept unit (dropped clusters,
// trimmed edges) come out neutral; kept units come out match or mismatch per
// the mask. Adjacent spans sharing a state merge into one run.
func buildRuns(attempt string, units []unit, mask []bool) []Run {
	if attempt == "" {
		return nil
	}
	var runs []Run
	emit := func(text string, state MatchState) {
		if text == "" {
			return
		}
		if n := len(runs); n > 0 && runs[n-1].State == state {
			runs[n-1].Text += text
			return
		}
		runs = append(runs, Run{Text: text, State: state})
	}

	pos := 0
	for i, u := range units {
		if u.start > pos {
			emit(attempt[pos:u.start], StateNeutral)
		}
		state := StateMismatch
		if mask[i] {
			state = StateMatch
		}
		emit(attempt[u.start:u.end], state)
		pos = u.end
	}
	if pos < len(attempt) {
		emit(attempt[pos:], StateNeutral)
	}
	return runs
}
