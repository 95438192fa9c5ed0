package extension

import (
	"sort"

	"go.scnd.dev/open/sdkgen/utility/condition"
	"go.scnd.dev/open/sdkgen/utility/registry"
)

// Group is an ordered, de-duplicated list of commands sharing one preprocessor condition.
type Group struct {
	Key      string
	Commands []string
	members  map[string]bool
}

func (r *Group) Append(command string) {
	if r.members[command] {
		return
	}
	r.members[command] = true
	r.Commands = append(r.Commands, command)
}

func (r *Group) Retain(keep func(command string) bool) {
	commands := make([]string, 0, len(r.Commands))
	for _, command := range r.Commands {
		if keep(command) {
			commands = append(commands, command)
			continue
		}
		delete(r.members, command)
	}
	r.Commands = commands
}

// Sorted returns a lexicographically sorted copy of the commands.
func (r *Group) Sorted() []string {
	sorted := append([]string(nil), r.Commands...)
	sort.Strings(sorted)
	return sorted
}

// Groups keeps groups in first insertion order.
type Groups struct {
	keys   []string
	groups map[string]*Group
}

func NewGroups() *Groups {
	return &Groups{
		keys:   make([]string, 0),
		groups: make(map[string]*Group),
	}
}

func (r *Groups) Keys() []string {
	return r.keys
}

func (r *Groups) Get(key string) *Group {
	return r.groups[key]
}

func (r *Groups) Ensure(key string) *Group {
	if group, ok := r.groups[key]; ok {
		return group
	}
	group := &Group{
		Key:      key,
		Commands: make([]string, 0),
		members:  make(map[string]bool),
	}
	r.keys = append(r.keys, key)
	r.groups[key] = group
	return group
}

func (r *Groups) Append(key string, command string) {
	r.Ensure(key).Append(command)
}

type Index struct {
	Groups   *Groups
	Instance map[string]bool
}

type Options struct {
	Api             string
	Beta            bool
	CommandVersions map[string]int
	Excludes        map[string]bool
	DefinePrefix    string
	PointerPrefix   string
}

// NewIndex groups the commands of every feature and extension available to the api by their condition key.
func NewIndex(reg *registry.Registry, options *Options) *Index {
	index := &Index{
		Groups:   NewGroups(),
		Instance: make(map[string]bool),
	}

	// * core versions
	for _, feature := range reg.Features {
		if feature.Api == "" || !registry.Supports(feature.Api, options.Api) {
			continue
		}
		group := index.Groups.Ensure(feature.Name)
		for _, require := range feature.Requires {
			if !registry.Supports(require.Api, options.Api) {
				continue
			}
			for _, command := range require.Commands {
				group.Append(command.Name)
			}
		}
	}

	// * extensions sorted by name
	extensions := append([]*registry.Extension(nil), reg.Extensions...)
	sort.SliceStable(extensions, func(i, j int) bool {
		return extensions[i].Name < extensions[j].Name
	})

	for _, extension := range extensions {
		if !registry.Supports(extension.Supported, options.Api) || extension.Supported == "" {
			continue
		}
		if extension.IsProvisional() && !options.Beta {
			continue
		}

		for _, require := range extension.Requires {
			if !registry.Supports(require.Api, options.Api) {
				continue
			}

			key := condition.Defined(extension.Name)
			if require.Feature != "" {
				key = condition.AndDefined(key, require.Feature)
			}
			if require.Extension != "" {
				key = condition.AndDefined(key, require.Extension)
			}
			if require.Depends != "" {
				key = condition.AndDepends(key, require.Depends)
			}

			for _, command := range require.Commands {
				if version := options.CommandVersions[command.Name]; version > 0 {
					index.Groups.Append(condition.AndSpecVersion(key, extension.Name, version), command.Name)
				} else {
					index.Groups.Append(key, command.Name)
				}
				if extension.IsInstance() {
					index.Instance[command.Name] = true
				}
			}
		}
	}

	return index
}
