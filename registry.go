package deprecate

// Registry is the ordered, immutable mapping from deprecated parameter name
// to warning message. It is built once in New and may be read concurrently.
type Registry struct {
	entries []entry
	index   map[string]int
}

func newRegistry(entries []entry) *Registry {
	r := &Registry{
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		r.index[e.name] = i
	}
	return r
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int { return len(r.entries) }

// Names returns the registered parameter names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

// Message returns the warning message registered for name.
func (r *Registry) Message(name string) (string, bool) {
	i, ok := r.index[name]
	if !ok {
		return "", false
	}
	return r.entries[i].message, true
}

// Messages returns the warning messages in registry order.
func (r *Registry) Messages() []string {
	msgs := make([]string, len(r.entries))
	for i, e := range r.entries {
		msgs[i] = e.message
	}
	return msgs
}
