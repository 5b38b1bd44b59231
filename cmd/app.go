// Package cmd implements the CLI application to compute capital gains from
// broker statements.
package cmd

import (
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&calcCmd{}, "gains")
	c.Register(&holdingsCmd{}, "gains")

	c.Register(&topicCmd{}, "documentation")
	c.Register(c.HelpCommand(), "documentation")
	c.Register(c.FlagsCommand(), "documentation")
}
