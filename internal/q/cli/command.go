// Package cli is a minimal command/flag framework: a flat command tree,
// typed flags, generated help, and exit-code-aware errors.
package cli

// RunFunc is a command handler.
type RunFunc func(c *Context) error

// Command defines one CLI command. The root command typically has no Run and
// only dispatches to children.
type Command struct {
	Name    string
	Short   string
	Long    string
	Example string

	Run RunFunc // optional on the root

	children []*Command
	flags    *FlagSet
}

// AddCommand adds child commands under c.
func (c *Command) AddCommand(children ...*Command) {
	for _, child := range children {
		if child == nil {
			panic("cli: AddCommand called with nil child")
		}
		if child.Name == "" {
			panic("cli: AddCommand called with a child with empty Name")
		}
		c.children = append(c.children, child)
	}
}

// Flags returns c's flag set, creating it on first use.
func (c *Command) Flags() *FlagSet {
	if c.flags == nil {
		c.flags = newFlagSet()
	}
	return c.flags
}

func (c *Command) child(token string) *Command {
	for _, child := range c.children {
		if child.Name == token {
			return child
		}
	}
	return nil
}
