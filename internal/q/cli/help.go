package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

func writeHelp(w io.Writer, root, cmd *Command) {
	name := root.Name
	if cmd != root {
		name += " " + cmd.Name
	}
	if cmd.Short != "" {
		fmt.Fprintf(w, "%s - %s\n", name, cmd.Short)
	} else {
		fmt.Fprintln(w, name)
	}

	if cmd.Long != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimRight(cmd.Long, "\n"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	usage := name
	if len(cmd.flagDefs()) > 0 {
		usage += " [flags]"
	}
	if len(cmd.children) > 0 {
		usage += " <command>"
	}
	if cmd.Run != nil {
		usage += " [args]"
	}
	fmt.Fprintf(w, "  %s\n", usage)

	if len(cmd.children) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Commands:")
		children := append([]*Command(nil), cmd.children...)
		sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })
		for _, child := range children {
			fmt.Fprintf(w, "  %s\t%s\n", child.Name, child.Short)
		}
	}

	if defs := cmd.flagDefs(); len(defs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		for _, def := range defs {
			line := "  --" + def.name
			if kind := def.kindName(); kind != "" {
				line += " <" + kind + ">"
			}
			if def.usage != "" {
				line += "\t" + def.usage
			}
			fmt.Fprintln(w, line)
		}
	}

	if cmd.Example != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Example:")
		for _, line := range strings.Split(strings.TrimRight(cmd.Example, "\n"), "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

func (c *Command) flagDefs() []*flagDef {
	if c.flags == nil {
		return nil
	}
	defs := append([]*flagDef(nil), c.flags.defs...)
	sort.Slice(defs, func(i, j int) bool { return defs[i].name < defs[j].name })
	return defs
}
