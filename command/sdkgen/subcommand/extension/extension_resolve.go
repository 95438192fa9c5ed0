package extension

import (
	"go.scnd.dev/open/sdkgen/utility/condition"
)

// Resolve moves every command referenced by more than one group into a disjunction group of all its owners.
func (r *Index) Resolve() {
	// * command to referencing groups
	owners := make(map[string][]string)
	order := make([]string, 0)
	for _, key := range r.Groups.Keys() {
		for _, command := range r.Groups.Get(key).Commands {
			if _, ok := owners[command]; !ok {
				order = append(order, command)
			}
			owners[command] = append(owners[command], key)
		}
	}

	// * keep single owner commands
	for _, key := range r.Groups.Keys() {
		r.Groups.Get(key).Retain(func(command string) bool {
			return len(owners[command]) == 1
		})
	}

	// * synthesize disjunction groups
	for _, command := range order {
		if len(owners[command]) == 1 {
			continue
		}
		r.Groups.Append(condition.Or(owners[command]), command)
	}
}
