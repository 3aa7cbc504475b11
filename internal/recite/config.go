package recite

// Config holds the seven independently toggleable normalization rules. The
// zero value disables everything; use DefaultConfig for the standard
// leniencies. Config is passed explicitly on every Verify call and is never
// held as process state.
type Config struct {
	// StripInvisible removes zero-width marks (ZWSP, ZWNJ, ZWJ, BOM,
	// directional marks, word joiner, soft hyphen) and converts no-break
	// spaces to plain spaces.
	StripInvisible bool

	// FoldQuotes maps curly/angled quote variants to straight quotes, em/en
	// dash and minus-sign variants to hyphen-minus, and the ellipsis glyph to
	// three periods.
	FoldQuotes bool

	// FoldCase lowercases comparison keys. The raw text is untouched.
	FoldCase bool

	// ComposeCanonical applies canonical Unicode composition (NFC) to
	// comparison keys.
	ComposeCanonical bool

	// DropPunctuation elides clusters consisting only of punctuation or
	// symbols.
	DropPunctuation bool

	// CollapseWhitespace collapses a run of consecutive surviving whitespace
	// clusters to a single space key.
	CollapseWhitespace bool

	// TrimEdges drops leading and trailing whitespace units from the kept
	// sequence. Applied last, after the other rules have settled which units
	// survive.
	TrimEdges bool
}

// DefaultConfig returns the standard leniencies: invisible characters
// stripped, quote/hyphen glyph variants folded, canonical composition on, and
// edges trimmed. Case, punctuation, and inner whitespace remain significant.
func DefaultConfig() Config {
	return Config{
		StripInvisible:   true,
		FoldQuotes:       true,
		ComposeCanonical: true,
		TrimEdges:        true,
	}
}
