package recite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danjhk/scripture-srs/internal/q/uni"
)

const genesis = "In the beginning God created the heavens and the earth."

func TestVerifyExactLenient(t *testing.T) {
	// Reference with case and punctuation differences; lenient config.
	ref := "The Lord is my shepherd; I shall not want."
	att := "the lord is my shepherd I shall not want"

	cfg := DefaultConfig()
	cfg.FoldCase = true
	cfg.DropPunctuation = true

	res := Verify(att, ref, cfg)
	require.NoError(t, res.validate(att))

	assert.True(t, res.Exact)
	assert.Equal(t, []Run{{Text: att, State: StateMatch}}, res.Runs)
}

func TestVerifyOmittedHead(t *testing.T) {
	att := "God created the heavens and the earth."

	res := Verify(att, genesis, DefaultConfig())
	require.NoError(t, res.validate(att))

	assert.False(t, res.Exact)
	assert.Equal(t, []Run{{Text: att, State: StateMatch}}, res.Runs)

	require.NotNil(t, res.MissingHead)
	assert.Equal(t, "In the beginning ", res.MissingHead.Text)
	assert.Equal(t, 0, res.MissingHead.Offset)

	require.NotNil(t, res.MatchedMiddle)
	assert.Equal(t, strings.Index(genesis, "God"), res.MatchedMiddle.Start)
	assert.Equal(t, len(genesis), res.MatchedMiddle.End)

	assert.Nil(t, res.MissingTail)
}

func TestVerifySubstitutedWord(t *testing.T) {
	att := "God maked the heavens and the earth."

	res := Verify(att, genesis, DefaultConfig())
	require.NoError(t, res.validate(att))

	assert.False(t, res.Exact)

	// Cluster-level LCS still matches the letters of "maked" that occur, in
	// order, inside "created" (a, e, d); only m and k come out mismatched.
	assert.Equal(t, []Run{
		{Text: "God ", State: StateMatch},
		{Text: "m", State: StateMismatch},
		{Text: "a", State: StateMatch},
		{Text: "k", State: StateMismatch},
		{Text: "ed the heavens and the earth.", State: StateMatch},
	}, res.Runs)

	// The contiguous alignment stops at the substitution: head is still
	// honestly omitted, but no tail claim spans the error.
	require.NotNil(t, res.MissingHead)
	assert.Equal(t, "In the beginning ", res.MissingHead.Text)
	assert.Nil(t, res.MissingTail)

	require.NotNil(t, res.MatchedMiddle)
	start := strings.Index(genesis, "God ")
	assert.Equal(t, &RefSpan{Start: start, End: start + len("God ")}, res.MatchedMiddle)
}

func TestVerifyOmittedHeadAndTail(t *testing.T) {
	ref := "One two three four"
	att := "two three"

	res := Verify(att, ref, DefaultConfig())
	require.NoError(t, res.validate(att))

	assert.False(t, res.Exact)
	require.NotNil(t, res.MissingHead)
	assert.Equal(t, RefText{Text: "One ", Offset: 0}, *res.MissingHead)
	require.NotNil(t, res.MissingTail)
	assert.Equal(t, RefText{Text: " four", Offset: len("One two three")}, *res.MissingTail)
	require.NotNil(t, res.MatchedMiddle)
	assert.Equal(t, RefSpan{Start: 4, End: len("One two three")}, *res.MatchedMiddle)
}

func TestVerifyEmptyAttempt(t *testing.T) {
	for _, cfg := range []Config{{}, DefaultConfig(), allOn()} {
		res := Verify("", genesis, cfg)
		require.NoError(t, res.validate(""))

		assert.False(t, res.Exact)
		assert.Empty(t, res.Runs)
		assert.Nil(t, res.MissingHead)
		assert.Nil(t, res.MissingTail)
		assert.Nil(t, res.MatchedMiddle)
	}
}

func TestVerifyBothEmpty(t *testing.T) {
	res := Verify("", "", DefaultConfig())
	require.NoError(t, res.validate(""))
	assert.True(t, res.Exact)
	assert.Empty(t, res.Runs)
}

func TestVerifySelfIdentity(t *testing.T) {
	inputs := []string{
		"",
		"Jesus wept.",
		"  padded with spaces  ",
		"naïve — “quoted”…",
		"zero​width and nbsp",
		"é composed vs decomposed é",
		"\xffinvalid bytes\xfe",
	}
	for _, cfg := range []Config{{}, DefaultConfig(), allOn()} {
		for _, in := range inputs {
			res := Verify(in, in, cfg)
			require.NoError(t, res.validate(in))

			assert.True(t, res.Exact, "input %q", in)
			for _, run := range res.Runs {
				assert.NotEqual(t, StateMismatch, run.State, "input %q", in)
			}
		}
	}
}

func TestVerifyDeterminism(t *testing.T) {
	att := "God maked the heavens and the earth."
	a := Verify(att, genesis, DefaultConfig())
	b := Verify(att, genesis, DefaultConfig())
	assert.Equal(t, a, b)
}

func TestVerifyMonotonicLeniency(t *testing.T) {
	// Enabling any order-independent relaxation on an already-exact pair
	// keeps it exact.
	pairs := [][2]string{
		{"Jesus wept.", "Jesus wept."},
		{"Love one another", "Love one another"},
	}
	relaxations := []func(*Config){
		func(c *Config) { c.FoldCase = true },
		func(c *Config) { c.DropPunctuation = true },
		func(c *Config) { c.CollapseWhitespace = true },
		func(c *Config) { c.FoldQuotes = true },
	}
	for _, pair := range pairs {
		base := DefaultConfig()
		require.True(t, Verify(pair[0], pair[1], base).Exact)
		for _, relax := range relaxations {
			cfg := base
			relax(&cfg)
			assert.True(t, Verify(pair[0], pair[1], cfg).Exact)
		}
	}
}

func TestVerifyInvisibleAndNBSP(t *testing.T) {
	// NBSP folds to a plain space; a zero-width cluster is elided and its
	// bytes come back as a neutral run.
	res := Verify("Jesus wept.", "Jesus wept.", DefaultConfig())
	assert.True(t, res.Exact)

	att := "Jesus wept.​"
	res = Verify(att, "Jesus wept.", DefaultConfig())
	require.NoError(t, res.validate(att))
	assert.True(t, res.Exact)
	require.Len(t, res.Runs, 2)
	assert.Equal(t, Run{Text: "\u200b", State: StateNeutral}, res.Runs[1])
}

func TestVerifyQuoteAndDashFold(t *testing.T) {
	ref := "“I am” — he said, ‘go’"
	att := "\"I am\" - he said, 'go'"
	res := Verify(att, ref, DefaultConfig())
	assert.True(t, res.Exact)

	cfg := DefaultConfig()
	cfg.FoldQuotes = false
	assert.False(t, Verify(att, ref, cfg).Exact)
}

func TestVerifyCaseFold(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, Verify("HELLO", "hello", cfg).Exact)
	cfg.FoldCase = true
	assert.True(t, Verify("HELLO", "hello", cfg).Exact)
}

func TestVerifyCanonicalComposition(t *testing.T) {
	composed := "café"
	decomposed := "café"

	assert.True(t, Verify(composed, decomposed, DefaultConfig()).Exact)

	cfg := DefaultConfig()
	cfg.ComposeCanonical = false
	assert.False(t, Verify(composed, decomposed, cfg).Exact)
}

func TestVerifyWhitespaceCollapse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CollapseWhitespace = true

	att := "a  b"
	res := Verify(att, "a b", cfg)
	require.NoError(t, res.validate(att))
	assert.True(t, res.Exact)
	assert.Equal(t, []Run{
		{Text: "a ", State: StateMatch},
		{Text: " ", State: StateNeutral},
		{Text: "b", State: StateMatch},
	}, res.Runs)

	// A newline and a space compare equal once collapsed.
	assert.True(t, Verify("a\nb", "a b", cfg).Exact)
}

func TestVerifyEdgeTrim(t *testing.T) {
	att := "  hello"
	res := Verify(att, "hello", DefaultConfig())
	require.NoError(t, res.validate(att))
	assert.True(t, res.Exact)
	assert.Equal(t, []Run{
		{Text: "  ", State: StateNeutral},
		{Text: "hello", State: StateMatch},
	}, res.Runs)

	cfg := DefaultConfig()
	cfg.TrimEdges = false
	assert.False(t, Verify(att, "hello", cfg).Exact)
}

func TestVerifyPunctuationDrop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DropPunctuation = true
	assert.True(t, Verify("Amen", "Amen!", cfg).Exact)
}

func TestVerifyElidedTailNotClaimed(t *testing.T) {
	// The reference's trailing space is trimmed away by the config, so
	// omitting it is not reported.
	res := Verify("hello", "hello ", DefaultConfig())
	assert.True(t, res.Exact)
	assert.Nil(t, res.MissingTail)
}

func TestVerifyNoAnchor(t *testing.T) {
	att := "zzz"
	res := Verify(att, "aaa", DefaultConfig())
	require.NoError(t, res.validate(att))

	assert.False(t, res.Exact)
	assert.Equal(t, []Run{{Text: att, State: StateMismatch}}, res.Runs)
	assert.Nil(t, res.MissingHead)
	assert.Nil(t, res.MissingTail)
	assert.Nil(t, res.MatchedMiddle)
}

func TestVerifyLosslessness(t *testing.T) {
	attempts := []string{
		"",
		" ",
		"God created the heavens and the earth.",
		"  spaced out​ text, with. punctuation!  ",
		"“curly” — and… more",
		"\xff\xfeinvalid",
	}
	references := []string{"", genesis, "short"}
	for _, cfg := range []Config{{}, DefaultConfig(), allOn()} {
		for _, att := range attempts {
			for _, ref := range references {
				res := Verify(att, ref, cfg)
				require.NoError(t, res.validate(att), "attempt %q vs %q", att, ref)
			}
		}
	}
}

func TestVerifyCodePointSegmenter(t *testing.T) {
	v := NewVerifier(uni.CodePoints{})

	att := "café latte"
	res := v.Verify(att, att, DefaultConfig())
	require.NoError(t, res.validate(att))
	assert.True(t, res.Exact)

	// The fallback treats the base letter and the combining mark as separate
	// units, so per-unit NFC cannot join them with the precomposed form.
	assert.False(t, v.Verify("café", "café", DefaultConfig()).Exact)
	assert.True(t, Verify("café", "café", DefaultConfig()).Exact)
}

func allOn() Config {
	return Config{
		StripInvisible:     true,
		FoldQuotes:         true,
		FoldCase:           true,
		ComposeCanonical:   true,
		DropPunctuation:    true,
		CollapseWhitespace: true,
		TrimEdges:          true,
	}
}
