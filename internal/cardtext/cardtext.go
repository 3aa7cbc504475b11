// Package cardtext extracts the recitable plain text from a markdown card
// file. Memorization cards are commonly kept as markdown notes: a title
// heading, the passage itself as paragraphs or a blockquote, and sometimes
// code fences or comments. Only the passage text is recited, so headings,
// code blocks, raw HTML, and inline markup are stripped.
package cardtext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Extract returns the plain text of the markdown card body src: the flattened
// text of paragraphs (including those inside blockquotes and lists), with one
// newline between blocks. Soft and hard line breaks within a block become
// newlines.
func Extract(src []byte) (string, error) {
	md := goldmark.New()
	root := md.Parser().Parse(gmtext.NewReader(src))
	if root == nil {
		return "", errors.New("cardtext: parse markdown: nil document")
	}

	var blocks []string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading:
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock:
			if text := inlineText(src, n); text != "" {
				blocks = append(blocks, text)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("cardtext: walk markdown: %w", err)
	}
	return strings.Join(blocks, "\n"), nil
}

// inlineText flattens the inline children of a block node, dropping markup
// but keeping line breaks.
func inlineText(src []byte, block ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(block, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimRight(b.String(), "\n")
}
