package recite

import "github.com/danjhk/scripture-srs/internal/q/uni"

// Verifier verifies attempts with a chosen grapheme segmenter.
type Verifier struct {
	seg uni.Segmenter
}

// NewVerifier returns a Verifier using seg. A nil seg selects UAX #29
// grapheme clustering (uni.Graphemes).
func NewVerifier(seg uni.Segmenter) *Verifier {
	if seg == nil {
		seg = uni.Graphemes{}
	}
	return &Verifier{seg: seg}
}

// Verify checks attempt against reference under cfg using the default
// grapheme segmenter. See the package documentation for the shape of the
// Result.
func Verify(attempt, reference string, cfg Config) Result {
	return NewVerifier(nil).Verify(attempt, reference, cfg)
}

// Verify checks attempt against reference under cfg. It is pure and total:
// any pair of strings and any Config produce a Result, never an error.
func (v *Verifier) Verify(attempt, reference string, cfg Config) Result {
	typed := normalize(v.seg, attempt, cfg)
	ref := normalize(v.seg, reference, cfg)

	mask := lcsMask(typed, ref)

	res := Result{
		Runs:  buildRuns(attempt, typed, mask),
		Exact: sameKeys(typed, ref),
	}

	a, ok := locateAnchor(typed, ref)
	if !ok {
		return res
	}

	res.MatchedMiddle = &RefSpan{Start: ref[a.s].start, End: ref[a.s+a.m-1].end}

	if a.s > 0 {
		head := reference[:ref[a.s].start]
		if v.recitable(head, cfg) {
			res.MissingHead = &RefText{Text: head, Offset: 0}
		}
	}

	// A tail claim is only honest when the whole attempt aligned
	// contiguously; a body mismatch is an accuracy failure, not a truncation.
	if a.m == len(typed) {
		if after := ref[a.s+a.m-1].end; after < len(reference) {
			tail := reference[after:]
			if v.recitable(tail, cfg) {
				res.MissingTail = &RefText{Text: tail, Offset: after}
			}
		}
	}
	return res
}

// recitable reports whether text still contains comparison units under cfg,
// i.e. whether omitting it could matter to the recitation. Keeps trailing
// whitespace and other elided residue from being reported as omitted text.
func (v *Verifier) recitable(text string, cfg Config) bool {
	return len(normalize(v.seg, text, cfg)) > 0
}

// sameKeys reports whether two unit sequences have identical keys.
func sameKeys(a, b []unit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].key != b[i].key {
			return false
		}
	}
	return true
}
