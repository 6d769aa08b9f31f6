package keymap

// Resolver maps key strings to actions and groups bindings by context for
// the help listing.
type Resolver struct {
	actions  map[string]Action    // key -> action
	contexts []string             // in declaration order
	help     map[string][]Binding // context -> bindings, keys deduplicated
}

// NewResolver creates a resolver from bindings. Bindings without an action
// are listed in help but never resolve. When a key is bound twice the first
// binding wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		help:    make(map[string][]Binding),
	}
	for _, b := range bindings {
		if _, ok := r.help[b.Context]; !ok {
			r.contexts = append(r.contexts, b.Context)
		}
		b.Keys = dedupe(b.Keys)
		r.help[b.Context] = append(r.help[b.Context], b)

		if b.Action == "" {
			continue
		}
		for _, key := range b.Keys {
			if _, taken := r.actions[key]; !taken {
				r.actions[key] = b.Action
			}
		}
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// Contexts returns the binding contexts in the order they were declared.
func (r *Resolver) Contexts() []string {
	return r.contexts
}

// Help returns the bindings of a context in declaration order.
func (r *Resolver) Help(context string) []Binding {
	return r.help[context]
}

func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
