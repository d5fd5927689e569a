// Package cli is a small command tree on top of pflag: each command owns a
// flag set, and the first positional argument selects a subcommand.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// ErrUsage marks errors caused by how the command was invoked. The message
// already tells the user what to do.
var ErrUsage = errors.New("usage error")

type Command struct {
	// Name is the word typed by the user, e.g. "project".
	Name string
	// Summary is the one-line description shown in the parent's help.
	Summary string
	// Usage overrides the synthesized usage line.
	Usage string

	// Flags returns a fresh flag set. Nil means the command takes no flags.
	Flags func() *pflag.FlagSet

	Subcommands []*Command

	// Run receives the positional arguments left after flag parsing.
	Run func(args []string) error

	parent *Command
}

// Execute dispatches args through the tree. Help goes to out.
func (c *Command) Execute(args []string, out io.Writer) error {
	if len(args) > 0 && c.isHelpRequest(args[0]) {
		c.PrintHelp(out)
		return nil
	}

	if len(c.Subcommands) > 0 && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		for _, sub := range c.Subcommands {
			if sub.Name == args[0] {
				sub.parent = c
				return sub.Execute(args[1:], out)
			}
		}
		return fmt.Errorf("%w: unknown command %q\n\nRun '%s --help' for usage.", ErrUsage, args[0], c.fullName())
	}

	if len(c.Subcommands) > 0 && c.Run == nil {
		c.PrintHelp(out)
		return fmt.Errorf("%w: subcommand required", ErrUsage)
	}

	if c.Flags != nil {
		flagSet := c.Flags()
		flagSet.SetOutput(io.Discard)
		if err := flagSet.Parse(args); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				c.PrintHelp(out)
				return nil
			}
			return fmt.Errorf("%w: %s\n\nRun '%s --help' for usage.", ErrUsage, err, c.fullName())
		}
		args = flagSet.Args()
	}

	if c.Run == nil {
		c.PrintHelp(out)
		return fmt.Errorf("%w: no action defined for %q", ErrUsage, c.fullName())
	}
	return c.Run(args)
}

// ExactArgs returns a usage error unless args has n elements.
func (c *Command) ExactArgs(args []string, n int) error {
	if len(args) == n {
		return nil
	}
	return fmt.Errorf("%w: %s expects %d argument(s), got %d\n\nUsage:\n  %s",
		ErrUsage, c.fullName(), n, len(args), c.usage())
}

// UsageErrorf reports a problem with how the command was invoked.
func (c *Command) UsageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s\n\nUsage:\n  %s", ErrUsage, fmt.Sprintf(format, args...), c.usage())
}

func (c *Command) PrintHelp(w io.Writer) {
	if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}
	fmt.Fprintf(w, "Usage:\n  %s\n", c.usage())

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	if c.Flags != nil {
		var flagHelp strings.Builder
		flagSet := c.Flags()
		flagSet.SetOutput(&flagHelp)
		flagSet.PrintDefaults()
		if flagHelp.Len() > 0 {
			fmt.Fprintf(w, "\nFlags:\n%s", flagHelp.String())
		}
	}
}

func (c *Command) usage() string {
	if c.Usage != "" {
		return c.Usage
	}
	if len(c.Subcommands) > 0 {
		return c.fullName() + " <command> [flags]"
	}
	return c.fullName() + " [flags]"
}

func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

// isHelpRequest treats the bare word "help" as a request only where it could
// not be a positional argument, i.e. on commands that select a subcommand.
func (c *Command) isHelpRequest(arg string) bool {
	if arg == "-h" || arg == "--help" {
		return true
	}
	return arg == "help" && len(c.Subcommands) > 0
}
