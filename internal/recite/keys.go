package recite

// Key is one comparison unit as seen by the aligner: the normalized
// comparison key plus the raw byte range it represents. Exposed for
// debugging surfaces; Verify itself works on the internal sequence.
type Key struct {
	Key   string
	Start int
	End   int
}

// Keys returns the comparison-unit sequence text produces under cfg, using
// the default grapheme segmenter.
func Keys(text string, cfg Config) []Key {
	return NewVerifier(nil).Keys(text, cfg)
}

// Keys returns the comparison-unit sequence text produces under cfg.
func (v *Verifier) Keys(text string, cfg Config) []Key {
	units := normalize(v.seg, text, cfg)
	if len(units) == 0 {
		return nil
	}
	out := make([]Key, len(units))
	for i, u := range units {
		out[i] = Key{Key: u.key, Start: u.start, End: u.end}
	}
	return out
}
