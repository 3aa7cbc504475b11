package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Options configure one Run invocation.
type Options struct {
	// Args is the argv excluding the program name (typically os.Args[1:]).
	Args []string

	// In/Out/Err override standard I/O. If nil, defaults are used.
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Context is passed to a command handler. Flag values are read via the
// pointers bound at command construction time.
type Context struct {
	context.Context

	Command *Command
	Args    []string

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes a command tree as a CLI program and returns a process exit
// code.
func Run(ctx context.Context, root *Command, opts Options) int {
	if root == nil || root.Name == "" {
		panic("cli: Run needs a named root command")
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	selected, args, err := parse(root, opts.Args, out)
	if err != nil {
		if errors.Is(err, errHelpPrinted) {
			return 0
		}
		return fail(root, selected, err, errOut)
	}

	if selected.Run == nil {
		if len(args) == 0 {
			return fail(root, selected, usageErrorf("missing required subcommand"), errOut)
		}
		return fail(root, selected, usageErrorf("unknown subcommand: %s", args[0]), errOut)
	}

	c := &Context{
		Context: ctx,
		Command: selected,
		Args:    args,
		In:      in,
		Out:     out,
		Err:     errOut,
	}
	if err := selected.Run(c); err != nil {
		var ec ExitCoder
		if errors.As(err, &ec) {
			if ec.ExitCode() == 2 {
				return fail(root, selected, err, errOut)
			}
			if msg := err.Error(); msg != "" {
				fmt.Fprintln(errOut, msg)
			}
			return ec.ExitCode()
		}
		fmt.Fprintln(errOut, err.Error())
		return 1
	}
	return 0
}

var errHelpPrinted = errors.New("help printed")

func parse(root *Command, argv []string, out io.Writer) (*Command, []string, error) {
	selected := root
	selectionOpen := true
	var positional []string

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		if token == "--" {
			positional = append(positional, argv[i+1:]...)
			break
		}

		if token == "-h" || token == "--help" {
			writeHelp(out, root, selected)
			return selected, nil, errHelpPrinted
		}

		if strings.HasPrefix(token, "-") && token != "-" {
			name := strings.TrimLeft(token, "-")
			value := ""
			hasValue := false
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				name, value, hasValue = name[:eq], name[eq+1:], true
			}
			def := selected.Flags().lookup(name)
			if def == nil {
				def = root.Flags().lookup(name)
			}
			if def == nil {
				return selected, nil, usageErrorf("unknown flag: %s", token)
			}
			if !hasValue {
				if def.kind == flagBool {
					value = "true"
				} else {
					if i+1 >= len(argv) {
						return selected, nil, usageErrorf("flag needs a value: %s", token)
					}
					i++
					value = argv[i]
				}
			}
			if err := def.set(value); err != nil {
				return selected, nil, usageErrorf("invalid value for --%s: %v", name, err)
			}
			continue
		}

		if selectionOpen {
			if child := selected.child(token); child != nil {
				selected = child
				continue
			}
			selectionOpen = false
		}
		positional = append(positional, token)
	}
	return selected, positional, nil
}

func fail(root, cmd *Command, err error, errOut io.Writer) int {
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(errOut, msg)
		fmt.Fprintln(errOut)
	}
	writeHelp(errOut, root, cmd)
	return 2
}
