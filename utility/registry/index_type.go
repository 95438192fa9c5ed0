package registry

type TypeIndex struct {
	Types map[string]*Type
}

func (r *Registry) TypeIndex(api string) *TypeIndex {
	index := &TypeIndex{
		Types: make(map[string]*Type),
	}
	for _, typ := range r.Types {
		if typ.Name == "" || !Supports(typ.Api, api) {
			continue
		}
		index.Types[typ.Name] = typ
	}
	return index
}

// IsDescendant reports whether name equals base or any parent chain of name reaches base.
func (r *TypeIndex) IsDescendant(name string, base string) bool {
	return r.descendant(name, base, make(map[string]bool))
}

func (r *TypeIndex) descendant(name string, base string, visited map[string]bool) bool {
	if name == base {
		return true
	}
	if visited[name] {
		return false
	}
	visited[name] = true

	typ, ok := r.Types[name]
	if !ok {
		return false
	}
	if typ.Alias != "" && r.descendant(typ.Alias, base, visited) {
		return true
	}
	for _, parent := range typ.Parents {
		if r.descendant(parent, base, visited) {
			return true
		}
	}
	return false
}
