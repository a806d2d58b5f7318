package main

import (
	"fmt"
	"io"
	"sort"
)

// Command interface that all pogoutil commands must implement
type Command interface {
	Name() string
	Usage() string
	Description() string
	Run(args []string) error
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns a sorted list of all registered commands
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// PrintHelp writes the usage information to w
func (r *Registry) PrintHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: pogoutil <command> [args...]")
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range r.List() {
		fmt.Fprintf(w, "  %-32s %s\n", cmd.Usage(), cmd.Description())
	}
}
