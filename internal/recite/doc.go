// Package recite verifies a free-text recitation attempt against a canonical
// reference text and reports exactly which contiguous spans of the typed text
// matched, which did not, and whether a leading or trailing portion of the
// reference was omitted entirely.
//
// Pipeline: both strings are split into grapheme clusters, each cluster is
// normalized under a Config into a comparison key (some clusters are elided),
// the two key sequences are aligned with a longest-common-subsequence mask,
// the whole attempt is additionally matched as a contiguous window of the
// reference to detect omitted head/tail text, and finally the mask is folded
// back into minimal colorable runs over the exact original attempt.
//
// Representation: a Result holds ordered Runs that, when concatenated,
// reconstruct the attempt byte for byte. Each run has a MatchState:
//   - StateMatch: the covered clusters participate in the alignment
//   - StateMismatch: the covered clusters survived normalization but do not align
//   - StateNeutral: the covered bytes were elided by normalization
//
// Invariants:
//   - concat(Runs.Text) == attempt
//   - adjacent Runs never share a MatchState (runs are minimal)
//   - MissingHead/MissingTail/MatchedMiddle index into the reference string;
//     Runs index into the attempt
//
// Verify is a pure function of (attempt, reference, Config): no shared state,
// no I/O, safe to call concurrently and on every keystroke. It is total over
// all string inputs, including empty strings and invalid UTF-8.
//
// Matching is exact equality of normalized keys. There is no fuzzy or
// typo-tolerant matching; leniency comes only from the Config toggles.
package recite
