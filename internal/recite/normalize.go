package recite

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/danjhk/scripture-srs/internal/q/uni"
)

// unitClass classifies a normalized cluster.
type unitClass int

const (
	classContent unitClass = iota
	classWhitespace
	classPunct
)

// unit is a comparison unit: a grapheme cluster that survived elision,
// carrying its comparison key and its raw byte range in the source string.
// Within one source, unit ranges are strictly increasing and non-overlapping;
// dropped clusters leave gaps between them.
type unit struct {
	key   string
	start int
	end   int
	class unitClass
}

// normalize tokenizes src with seg and runs the normalization pipeline under
// cfg, returning the ordered comparison-unit sequence.
//
// Per cluster, in fixed order: strip-invisible, quote/hyphen-fold, case-fold,
// canonical composition, classification, punctuation-drop. Then, over the
// surviving sequence: whitespace-collapse and edge-trim. The same pipeline
// runs on both the attempt and the reference.
func normalize(seg uni.Segmenter, src string, cfg Config) []unit {
	clusters := seg.Segment(src)
	if len(clusters) == 0 {
		return nil
	}

	// Casers are stateful; build one per call, never shared.
	var lower *cases.Caser
	if cfg.FoldCase {
		c := cases.Lower(language.Und)
		lower = &c
	}

	units := make([]unit, 0, len(clusters))
	for _, cl := range clusters {
		key := cl.Text
		if cfg.StripInvisible {
			key = stripInvisible(key)
		}
		if cfg.FoldQuotes {
			key = foldGlyphVariants(key)
		}
		if lower != nil {
			key = lower.String(key)
		}
		if cfg.ComposeCanonical {
			key = norm.NFC.String(key)
		}
		if key == "" {
			// The cluster was entirely invisible; elide it.
			continue
		}
		cls := classify(key)
		if cfg.DropPunctuation && cls == classPunct {
			continue
		}
		units = append(units, unit{key: key, start: cl.Start, end: cl.End, class: cls})
	}

	if cfg.CollapseWhitespace {
		units = collapseWhitespace(units)
	}
	if cfg.TrimEdges {
		units = trimEdges(units)
	}
	return units
}

// stripInvisible removes zero-width marks and converts no-break spaces to
// plain spaces.
func stripInvisible(s string) string {
	var b strings.Builder
	changed := false
	for _, r := range s {
		switch r {
		case '\u200b', '\u200c', '\u200d', '\u200e', '\u200f', '\u2060', '\ufeff', '\u00ad':
			changed = true
		case '\u00a0', '\u202f':
			b.WriteByte(' ')
			changed = true
		default:
			b.WriteRune(r)
		}
	}
	if !changed {
		return s
	}
	return b.String()
}

// foldGlyphVariants maps quote, dash, and ellipsis glyph variants to their
// plain ASCII forms.
func foldGlyphVariants(s string) string {
	var b strings.Builder
	changed := false
	for _, r := range s {
		switch r {
		case '\u2018', '\u2019', '\u201a', '\u201b', '\u2039', '\u203a', '\u02bc':
			b.WriteByte('\'')
			changed = true
		case '\u201c', '\u201d', '\u201e', '\u201f', '\u00ab', '\u00bb':
			b.WriteByte('"')
			changed = true
		case '\u2010', '\u2011', '\u2012', '\u2013', '\u2014', '\u2015', '\u2212':
			b.WriteByte('-')
			changed = true
		case '\u2026':
			b.WriteString("...")
			changed = true
		default:
			b.WriteRune(r)
		}
	}
	if !changed {
		return s
	}
	return b.String()
}

// classify buckets a non-empty comparison key as whitespace,
// punctuation/symbol-only, or content.
func classify(key string) unitClass {
	ws, punct := true, true
	for _, r := range key {
		if !unicode.IsSpace(r) {
			ws = false
		}
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			punct = false
		}
	}
	if ws {
		return classWhitespace
	}
	if punct {
		return classPunct
	}
	return classContent
}

// collapseWhitespace reduces each run of consecutive surviving whitespace
// units to the run's first unit with a single-space key; the extras are
// dropped (their raw bytes become neutral).
func collapseWhitespace(units []unit) []unit {
	out := make([]unit, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u.class != classWhitespace {
			out = append(out, u)
			continue
		}
		u.key = " "
		out = append(out, u)
		for i+1 < len(units) && units[i+1].class == classWhitespace {
			i++
		}
	}
	return out
}

// trimEdges drops leading and trailing whitespace units from the kept
// sequence.
func trimEdges(units []unit) []unit {
	start := 0
	for start < len(units) && units[start].class == classWhitespace {
		start++
	}
	end := len(units)
	for end > start && units[end-1].class == classWhitespace {
		end--
	}
	return units[start:end]
}
