package registry

import (
	"fmt"
)

type CommandIndex struct {
	Commands map[string]*Command
}

func (r *Registry) CommandIndex(api string) *CommandIndex {
	index := &CommandIndex{
		Commands: make(map[string]*Command),
	}
	for _, command := range r.Commands {
		if !Supports(command.Api, api) {
			continue
		}
		index.Commands[command.Name()] = command
	}
	return index
}

// Lookup returns the prototype for a command name, following alias entries to their final target.
func (r *CommandIndex) Lookup(name string) (*Command, error) {
	visited := make(map[string]bool)
	current := name
	for {
		command, ok := r.Commands[current]
		if !ok {
			if current == name {
				return nil, fmt.Errorf("unknown command %s", name)
			}
			return nil, fmt.Errorf("command %s aliases unknown command %s", name, current)
		}
		if command.Alias == "" {
			return command, nil
		}
		if visited[current] {
			return nil, fmt.Errorf("command %s has an alias cycle through %s", name, current)
		}
		visited[current] = true
		current = command.Alias
	}
}
