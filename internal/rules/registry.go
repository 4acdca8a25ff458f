package rules

import (
	"fmt"
	"slices"
)

// Registry maps rule set names to rule sets.
type Registry struct {
	sets map[string]RuleSet
}

// NewRegistry returns a registry holding the built-in variants.
func NewRegistry() *Registry {
	r := &Registry{sets: make(map[string]RuleSet)}
	r.Register(RPSLS())
	r.Register(Classic())
	return r
}

// Register adds rs, replacing any rule set with the same name.
func (r *Registry) Register(rs RuleSet) {
	r.sets[rs.Name()] = rs
}

func (r *Registry) Lookup(name string) (RuleSet, error) {
	rs, ok := r.sets[name]
	if !ok {
		return nil, fmt.Errorf("unknown rule set %q (known: %v)", name, r.Names())
	}
	return rs, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
