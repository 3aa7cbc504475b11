package cli

import (
	"fmt"

	"github.com/danjhk/scripture-srs/internal/q/cli"
	"github.com/danjhk/scripture-srs/internal/recite"
)

func newNormalizeCommand() *cli.Command {
	cmd := &cli.Command{
		Name:  "normalize",
		Short: "print the comparison keys a file normalizes to",
		Long: "normalize shows how a text is seen by the verifier under the active\n" +
			"settings: one comparison key per line with the raw byte range it was\n" +
			"derived from. Useful for diagnosing why two texts do or don't match.",
		Example: "scripture-srs normalize --fold-case --collapse-whitespace psalm-23.txt",
	}

	fs := cmd.Flags()
	codepoints := fs.Bool("codepoints", false, "segment by code points instead of grapheme clusters")
	cfgFlags := bindConfigFlags(fs)

	cmd.Run = func(c *cli.Context) error {
		if len(c.Args) != 1 {
			return cli.UsageError{Message: "normalize needs exactly one file"}
		}
		text, err := loadReference(c.Args[0])
		if err != nil {
			return err
		}
		keys := recite.NewVerifier(segmenter(*codepoints)).Keys(text, cfgFlags.config())
		for _, k := range keys {
			fmt.Fprintf(c.Out, "%4d..%-4d %q\n", k.Start, k.End, k.Key)
		}
		return nil
	}
	return cmd
}
