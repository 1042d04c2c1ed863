// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package registry // import "github.com/sysstat/sapcp/registry"

//go:generate go run ./gengroups groups.json tables.go

import (
	"fmt"

	"github.com/sysstat/sapcp/pmi"
)

func (a Activity) String() string {
	if a < 0 || a >= numActivities {
		return fmt.Sprintf("activity(%d)", int32(a))
	}
	return activityNames[a]
}

// ParseActivity is the inverse of Activity.String.
func ParseActivity(s string) (Activity, error) {
	for a := Activity(0); a < numActivities; a++ {
		if activityNames[a] == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown activity %q", s)
}

// Activities lists all activities in declaration order.
func Activities() []Activity {
	acts := make([]Activity, numActivities)
	for i := range acts {
		acts[i] = Activity(i)
	}
	return acts
}

// groupSpec is one generated groupTable row.
type groupSpec struct {
	name  string
	descs []pmi.Desc
}

// Group is one metric group: the named, ordered descriptor set of a
// single activity, registered and written together.
type Group struct {
	act   Activity
	name  string
	descs []pmi.Desc
}

// Act returns the activity the group belongs to.
func (g *Group) Act() Activity { return g.act }

// Name returns the group's external name.
func (g *Group) Name() string { return g.name }

// Len returns the number of metrics in the group.
func (g *Group) Len() int { return len(g.descs) }

// Metric returns the descriptor at index i. Indexes are compile time
// constants, so an out of range index is a table defect and panics.
func (g *Group) Metric(i int) pmi.Desc {
	if i < 0 || i >= len(g.descs) {
		panic(fmt.Sprintf("registry: metric index %d out of range in group %s", i, g.name))
	}
	return g.descs[i]
}

// Metrics returns the group's descriptors in index order. The returned
// slice is shared and must not be modified.
func (g *Group) Metrics() []pmi.Desc { return g.descs }

// Binding locates one metric inside its owning group.
type Binding struct {
	Act   Activity
	Index int
	Desc  pmi.Desc
}

// Registry resolves metric identity in both directions: activity and
// index to descriptor when writing, numeric id or name back to the
// owning group when reading.
type Registry struct {
	groups [numActivities]Group
	byID   map[pmi.ID]Binding
	byName map[string]Binding
}

// New builds the Registry from the generated tables. It panics on any
// identity defect: an empty group, a numeric id registered twice, or a
// name registered twice within one group. A name shared across groups
// is legal; the first registration wins the name lookup.
func New() *Registry {
	n := 0
	for _, spec := range groupTable {
		n += len(spec.descs)
	}
	r := &Registry{
		byID:   make(map[pmi.ID]Binding, n),
		byName: make(map[string]Binding, n),
	}
	for a := Activity(0); a < numActivities; a++ {
		spec := groupTable[a]
		if len(spec.descs) == 0 {
			panic(fmt.Sprintf("registry: group %s has no metrics", spec.name))
		}
		r.groups[a] = Group{act: a, name: spec.name, descs: spec.descs}
		seen := make(map[string]struct{}, len(spec.descs))
		for i, d := range spec.descs {
			if _, dup := seen[d.Name]; dup {
				panic(fmt.Sprintf("registry: metric %s declared twice in group %s", d.Name, spec.name))
			}
			seen[d.Name] = struct{}{}
			if prev, dup := r.byID[d.ID]; dup {
				panic(fmt.Sprintf("registry: pmid %s of %s already registered by %s",
					d.ID, d.Name, prev.Desc.Name))
			}
			b := Binding{Act: a, Index: i, Desc: d}
			r.byID[d.ID] = b
			if _, taken := r.byName[d.Name]; !taken {
				r.byName[d.Name] = b
			}
		}
	}
	return r
}

// Group returns the group of activity a.
func (r *Registry) Group(a Activity) *Group {
	if a < 0 || a >= numActivities {
		panic(fmt.Sprintf("registry: no group for %s", a))
	}
	return &r.groups[a]
}

// Lookup resolves a numeric metric id to its binding.
func (r *Registry) Lookup(id pmi.ID) (Binding, bool) {
	b, ok := r.byID[id]
	return b, ok
}

// LookupName resolves a metric name to its binding.
func (r *Registry) LookupName(name string) (Binding, bool) {
	b, ok := r.byName[name]
	return b, ok
}

// Len returns the total number of registered metrics.
func (r *Registry) Len() int { return len(r.byID) }
