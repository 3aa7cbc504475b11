package recite

// MatchState classifies one run of the attempt.
type MatchState int

// Match states for a Run.
const (
	StateMatch    MatchState = iota // aligned with the reference
	StateMismatch                   // survived normalization but did not align
	StateNeutral                    // elided by normalization (never compared)
)

// String returns the lowercase name of the state.
func (s MatchState) String() string {
	switch s {
	case StateMatch:
		return "match"
	case StateMismatch:
		return "mismatch"
	case StateNeutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// Run is a contiguous span of the raw attempt sharing one MatchState.
type Run struct {
	Text  string     // Exact substring of the attempt.
	State MatchState // Classification of every cluster in Text.
}

// RefText is raw reference text the attempt omitted, with the byte offset in
// the reference where it starts.
type RefText struct {
	Text   string
	Offset int
}

// RefSpan is a half-open byte range [Start, End) into the reference string.
type RefSpan struct {
	Start int
	End   int
}

// Result is the outcome of verifying one attempt against one reference under
// one Config. It is immutable and a pure function of those three inputs.
//
// Invariants:
//   - concat(Runs.Text) == the attempt, byte for byte
//   - adjacent Runs differ in State
//   - MissingHead, MissingTail, and MatchedMiddle index into the reference
type Result struct {
	// Runs covers the whole raw attempt with no gaps or overlaps.
	Runs []Run

	// Exact is true iff the attempt and reference comparison-key sequences
	// are identical in length and content.
	Exact bool

	// MissingHead is the reference text preceding the best contiguous
	// alignment of the attempt; nil when the alignment starts at the
	// beginning of the reference (or no alignment anchor was found).
	MissingHead *RefText

	// MissingTail is the reference text following the alignment. It is
	// asserted only when the entire attempt aligned contiguously: a body
	// mismatch is an accuracy failure, not a truncation, and is never
	// reported as one.
	MissingTail *RefText

	// MatchedMiddle is the raw reference span covered by the contiguous
	// alignment; nil when nothing aligned.
	MatchedMiddle *RefSpan
}
