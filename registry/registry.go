// Package registry maps family identifiers to their builder and destination.
//
// A Registry is built once from a static table and never changes; the
// driver receives it explicitly, so tests can pass their own.
package registry

import (
	"sort"
	"strings"

	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/schema"
)

// Builder constructs one tree family. Builders are pure: no I/O, no shared state.
type Builder func() (*schema.Family, error)

// Entry registers one family
type Entry struct {
	// ID is the name used on the command line
	ID string

	// Build constructs the family
	Build Builder

	// Destination is the output path, relative to the generation root.
	// Its extension selects the target language.
	Destination string
}

// Registry is an immutable set of entries unique by ID
type Registry struct {
	entries map[string]Entry
	ids     []string
}

// New builds a registry. Every entry needs an ID, a builder and a
// destination; two entries with the same ID fail with ErrDuplicateFamily.
func New(entries ...Entry) (*Registry, error) {
	r := &Registry{entries: make(map[string]Entry, len(entries))}

	var dups []string
	for _, e := range entries {
		switch {
		case strings.TrimSpace(e.ID) == "":
			return nil, errors.Newf("registry entry for %q has no id", e.Destination)
		case e.Build == nil:
			return nil, errors.Newf("family %s has no builder", e.ID)
		case strings.TrimSpace(e.Destination) == "":
			return nil, errors.Newf("family %s has no destination", e.ID)
		}

		if _, exists := r.entries[e.ID]; exists {
			dups = append(dups, e.ID)
			continue
		}
		r.entries[e.ID] = e
		r.ids = append(r.ids, e.ID)
	}

	if len(dups) > 0 {
		return nil, errors.Mark(
			errors.Newf("family registered more than once: %s", strings.Join(dups, ", ")),
			errors.ErrDuplicateFamily,
		)
	}

	sort.Strings(r.ids)
	return r, nil
}

// MustNew is New for static tables; it panics on an invalid table
func MustNew(entries ...Entry) *Registry {
	r, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup resolves id. Unknown ids fail with ErrUnknownFamily and the error
// lists the valid choices.
func (r *Registry) Lookup(id string) (Entry, error) {
	e, ok := r.entries[id]
	if !ok {
		return Entry{}, errors.NewUnknownFamilyError(id, r.IDs())
	}
	return e, nil
}

// IDs returns every registered id in sorted order
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Entries returns every entry sorted by id
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.entries[id])
	}
	return out
}

// Len returns the number of registered families
func (r *Registry) Len() int { return len(r.ids) }
