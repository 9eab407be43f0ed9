package domain

import "strings"

// Command is an external process invocation.
type Command struct {
	Name string
	Args []string
	// Env holds "KEY=VALUE" entries applied on top of the inherited environment.
	Env []string
	Dir string
}

// NewCommand builds a Command from an argv-style slice.
func NewCommand(argv []string, extra ...string) (Command, error) {
	if len(argv) == 0 || argv[0] == "" {
		return Command{}, ErrEmptyCommand
	}
	args := make([]string, 0, len(argv)-1+len(extra))
	args = append(args, argv[1:]...)
	args = append(args, extra...)
	return Command{Name: argv[0], Args: args}, nil
}

// String renders the command line for logs.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}
