package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danjhk/scripture-srs/internal/q/cli"
	"github.com/danjhk/scripture-srs/internal/recite"
	"github.com/danjhk/scripture-srs/internal/simplelogger"
)

func newVerifyCommand() *cli.Command {
	cmd := &cli.Command{
		Name:  "verify",
		Short: "check a recitation attempt against a reference file",
		Long: "verify reads an attempt (stdin by default) and checks it against the\n" +
			"reference passage in the given file. Matched spans render green,\n" +
			"mismatched spans pink; omitted reference head/tail text is listed.\n" +
			"Exits 0 when the attempt is exact under the active settings, 1 otherwise.",
		Example: "echo 'Jesus wept.' | scripture-srs verify john-11-35.md\n" +
			"scripture-srs verify --fold-case --drop-punctuation psalm-23.txt --attempt 'the lord is my shepherd'",
	}

	fs := cmd.Flags()
	attempt := fs.String("attempt", "", "attempt text (default: read stdin)")
	attemptFile := fs.String("attempt-file", "", "read the attempt from a file")
	colorMode := fs.String("color", "auto", "colorize output: auto, always, never")
	codepoints := fs.Bool("codepoints", false, "segment by code points instead of grapheme clusters")
	cfgFlags := bindConfigFlags(fs)

	cmd.Run = func(c *cli.Context) error {
		if len(c.Args) != 1 {
			return cli.UsageError{Message: "verify needs exactly one reference file"}
		}
		reference, err := loadReference(c.Args[0])
		if err != nil {
			return err
		}
		att, err := readAttempt(c, *attempt, *attemptFile)
		if err != nil {
			return err
		}

		cfg := cfgFlags.config()
		res := recite.NewVerifier(segmenter(*codepoints)).Verify(att, reference, cfg)
		simplelogger.Log("verify: reference=%s attempt_bytes=%d exact=%v runs=%d",
			c.Args[0], len(att), res.Exact, len(res.Runs))

		writeReport(c.Out, res, useColor(*colorMode, c.Out), terminalWidth(c.Out))
		if !res.Exact {
			return cli.ExitError{Code: 1}
		}
		return nil
	}
	return cmd
}

// readAttempt resolves the attempt text: the --attempt flag wins, then
// --attempt-file, then stdin. One trailing newline is dropped from stdin so
// line-buffered input compares cleanly even with edge trimming off.
func readAttempt(c *cli.Context, attempt, attemptFile string) (string, error) {
	if attempt != "" && attemptFile != "" {
		return "", cli.UsageError{Message: "--attempt and --attempt-file are mutually exclusive"}
	}
	if attempt != "" {
		return attempt, nil
	}
	if attemptFile != "" {
		data, err := os.ReadFile(attemptFile)
		if err != nil {
			return "", fmt.Errorf("read attempt: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(c.In)
	if err != nil {
		return "", fmt.Errorf("read attempt from stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
