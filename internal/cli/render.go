package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/danjhk/scripture-srs/internal/q/uni"
	"github.com/danjhk/scripture-srs/internal/recite"
)

const (
	matchBG    = "\x1b[48;5;194m" // light green
	mismatchBG = "\x1b[48;5;224m" // light pink
	ansiDim    = "\x1b[2m"
	ansiReset  = "\x1b[0m"
)

// useColor decides whether to emit ANSI colors for mode ("auto", "always",
// "never"). Auto colors only when out is a terminal.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column width of out, or 80 when out is not a
// terminal or the size can't be read.
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return 80
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// writeReport renders a verification result: the attempt with matched and
// mismatched spans highlighted, then any omitted reference head/tail.
func writeReport(out io.Writer, res recite.Result, color bool, width int) {
	for _, run := range res.Runs {
		fmt.Fprint(out, paintRun(run, color))
	}
	if len(res.Runs) > 0 {
		fmt.Fprintln(out)
	}

	if res.MissingHead != nil {
		writeOmission(out, "missing from start:", res.MissingHead.Text, color, width)
	}
	if res.MissingTail != nil {
		writeOmission(out, "missing from end:  ", res.MissingTail.Text, color, width)
	}
	if res.Exact {
		fmt.Fprintln(out, "exact")
	}
}

func paintRun(run recite.Run, color bool) string {
	if !color {
		switch run.State {
		case recite.StateMismatch:
			return "[" + run.Text + "]"
		default:
			return run.Text
		}
	}
	switch run.State {
	case recite.StateMatch:
		return matchBG + run.Text + ansiReset
	case recite.StateMismatch:
		return mismatchBG + run.Text + ansiReset
	default:
		return run.Text
	}
}

func writeOmission(out io.Writer, label, text string, color bool, width int) {
	line := fmt.Sprintf("%s %s", label, preview(text, width))
	if color {
		line = ansiDim + line + ansiReset
	}
	fmt.Fprintln(out, line)
}

// preview renders omitted text on one line, truncated to fit the terminal.
func preview(text string, width int) string {
	oneLine := strings.ReplaceAll(text, "\n", " ")
	max := width - 20
	if max < 10 {
		max = 10
	}
	return fmt.Sprintf("%q", uni.TruncateToWidth(oneLine, max, "..."))
}
