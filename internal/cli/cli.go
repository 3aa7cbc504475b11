// Package cli wires the scripture-srs command tree: verifying recitation
// attempts against reference passages and inspecting how texts normalize.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danjhk/scripture-srs/internal/cardtext"
	"github.com/danjhk/scripture-srs/internal/q/cli"
	"github.com/danjhk/scripture-srs/internal/q/uni"
	"github.com/danjhk/scripture-srs/internal/recite"
)

// Main runs the CLI with os.Args and returns the process exit code.
func Main() int {
	return cli.Run(context.Background(), Root(), cli.Options{Args: os.Args[1:]})
}

// Root builds the scripture-srs command tree.
func Root() *cli.Command {
	root := &cli.Command{
		Name:  "scripture-srs",
		Short: "verify recitation attempts against reference passages",
		Long: "scripture-srs checks a typed recitation attempt against a canonical\n" +
			"reference text, tolerant of configurable normalization differences, and\n" +
			"reports which spans matched and whether the head or tail of the\n" +
			"reference was omitted.",
	}
	root.AddCommand(newVerifyCommand(), newNormalizeCommand())
	return root
}

// configFlags binds the seven normalization toggles, defaulted per
// recite.DefaultConfig.
type configFlags struct {
	stripInvisible *bool
	foldQuotes     *bool
	foldCase       *bool
	compose        *bool
	dropPunct      *bool
	collapseWS     *bool
	trimEdges      *bool
}

func bindConfigFlags(fs *cli.FlagSet) configFlags {
	def := recite.DefaultConfig()
	return configFlags{
		stripInvisible: fs.Bool("strip-invisible", def.StripInvisible, "strip zero-width marks, fold no-break spaces"),
		foldQuotes:     fs.Bool("fold-quotes", def.FoldQuotes, "fold curly quotes, dashes, and ellipses to ASCII"),
		foldCase:       fs.Bool("fold-case", def.FoldCase, "ignore letter case"),
		compose:        fs.Bool("compose", def.ComposeCanonical, "apply canonical Unicode composition"),
		dropPunct:      fs.Bool("drop-punctuation", def.DropPunctuation, "ignore punctuation-only characters"),
		collapseWS:     fs.Bool("collapse-whitespace", def.CollapseWhitespace, "treat whitespace runs as single spaces"),
		trimEdges:      fs.Bool("trim-edges", def.TrimEdges, "ignore leading and trailing whitespace"),
	}
}

func (f configFlags) config() recite.Config {
	return recite.Config{
		StripInvisible:     *f.stripInvisible,
		FoldQuotes:         *f.foldQuotes,
		FoldCase:           *f.foldCase,
		ComposeCanonical:   *f.compose,
		DropPunctuation:    *f.dropPunct,
		CollapseWhitespace: *f.collapseWS,
		TrimEdges:          *f.trimEdges,
	}
}

// loadReference reads a reference passage from path. Markdown files go
// through cardtext so headings and markup are not part of the expected
// recitation; anything else is taken verbatim.
func loadReference(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read reference: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".md" || ext == ".markdown" {
		text, err := cardtext.Extract(data)
		if err != nil {
			return "", fmt.Errorf("load reference %s: %w", path, err)
		}
		return text, nil
	}
	return string(data), nil
}

func segmenter(codepoints bool) uni.Segmenter {
	if codepoints {
		return uni.CodePoints{}
	}
	return uni.Graphemes{}
}
