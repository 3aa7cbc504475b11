// Package uni provides grapheme-cluster segmentation and terminal text-width
// helpers.
//
// Segmentation is exposed as the Segmenter interface so callers can choose
// between full UAX #29 grapheme clustering (Graphemes, the default) and a
// plain code-point splitter (CodePoints). The code-point splitter is a
// documented approximation: it may split a visually single character (for
// example a base letter followed by a combining mark) into multiple clusters,
// but it is deterministic and total over arbitrary byte content.
package uni

import (
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Cluster is one user-perceived character: a byte range [Start, End) into the
// source string plus the raw substring it covers.
type Cluster struct {
	Start int
	End   int
	Text  string
}

// Segmenter splits a string into an ordered, gap-free, non-overlapping
// sequence of clusters covering the whole string. Implementations must be
// total: any byte content, including invalid UTF-8 and the empty string, must
// segment without error.
type Segmenter interface {
	Segment(s string) []Cluster
}

// Graphemes segments by UAX #29 extended grapheme clusters. This is the
// default segmenter: combining marks, emoji ZWJ sequences, and other
// multi-code-point clusters come back as single clusters.
type Graphemes struct{}

func (Graphemes) Segment(s string) []Cluster {
	if s == "" {
		return nil
	}
	var out []Cluster
	iter := graphemes.FromString(s)
	for iter.Next() {
		out = append(out, Cluster{Start: iter.Start(), End: iter.End(), Text: iter.Value()})
	}
	return out
}

// CodePoints segments by individual code points. Invalid UTF-8 bytes become
// one single-byte cluster each, so the output still covers the input exactly.
type CodePoints struct{}

func (CodePoints) Segment(s string) []Cluster {
	if s == "" {
		return nil
	}
	var out []Cluster
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size == 0 {
			break
		}
		out = append(out, Cluster{Start: i, End: i + size, Text: s[i : i+size]})
		i += size
	}
	return out
}

// TextWidth returns the text width of str for monospace fonts in terminals.
// Locale is assumed to be non-East Asian.
func TextWidth(str string) int {
	return newCondition().StringWidth(str)
}

// TruncateToWidth cuts str so its terminal width is at most maxWidth,
// appending tail (e.g. "…") when anything was cut. Cuts happen only on
// grapheme-cluster boundaries, so no cluster is ever split. maxWidth <= 0
// returns the empty string.
func TruncateToWidth(str string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	cond := newCondition()
	if cond.StringWidth(str) <= maxWidth {
		return str
	}
	budget := maxWidth - cond.StringWidth(tail)
	if budget < 0 {
		budget = 0
	}
	width := 0
	end := 0
	iter := graphemes.FromString(str)
	for iter.Next() {
		w := cond.StringWidth(iter.Value())
		if width+w > budget {
			break
		}
		width += w
		end = iter.End()
	}
	return str[:end] + tail
}

func newCondition() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}
