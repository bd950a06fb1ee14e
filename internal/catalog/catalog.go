// Package catalog holds the registry of built-in drills. Every drill is a
// self-contained snippet: nothing in the catalog shares state with anything
// else, so each entry can be read and run in isolation.
package catalog

import (
	"fmt"
	"sort"

	"drills/pkg/drill"
)

// Registry is an ordered collection of drills with unique IDs.
type Registry struct {
	order []string
	byID  map[string]drill.Drill
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: map[string]drill.Drill{}}
}

// Register adds a drill, rejecting duplicate or empty IDs.
func (r *Registry) Register(d drill.Drill) error {
	if d.ID == "" {
		return fmt.Errorf("drill has empty ID")
	}
	if _, ok := r.byID[d.ID]; ok {
		return fmt.Errorf("drill %q already registered", d.ID)
	}

	r.byID[d.ID] = d
	r.order = append(r.order, d.ID)

	return nil
}

// Get returns the drill with the given ID.
func (r *Registry) Get(id string) (drill.Drill, bool) {
	d, ok := r.byID[id]

	return d, ok
}

// All returns every drill in registration order.
func (r *Registry) All() []drill.Drill {
	out := make([]drill.Drill, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}

	return out
}

// ByTopic returns the drills of a single topic in registration order.
func (r *Registry) ByTopic(topic drill.Topic) []drill.Drill {
	var out []drill.Drill
	for _, id := range r.order {
		if d := r.byID[id]; d.Topic == topic {
			out = append(out, d)
		}
	}

	return out
}

// Topics returns the distinct topics present, sorted.
func (r *Registry) Topics() []drill.Topic {
	seen := map[drill.Topic]bool{}
	for _, d := range r.byID {
		seen[d.Topic] = true
	}

	out := make([]drill.Topic, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Builtin returns a registry populated with the full drill set. It panics on
// a duplicate ID, which can only happen from a programming mistake in this
// package.
func Builtin() *Registry {
	r := NewRegistry()

	all := []drill.Drill{}
	all = append(all, errorDrills()...)
	all = append(all, fileDrills()...)
	all = append(all, loggingDrills()...)
	all = append(all, memoryDrills()...)

	for _, d := range all {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}

	return r
}
