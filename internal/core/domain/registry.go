// Package domain contains the core domain models for target resolution and build orchestration.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// AllTargets is the reserved selection token that expands to every registered target.
const AllTargets = "all"

// Alias is the short, human-chosen name of a build target, e.g. "linux".
type Alias string

// Triple identifies a compilation target, e.g. "x86_64-unknown-linux-gnu".
type Triple string

// String returns the triple as a plain string.
func (t Triple) String() string {
	return string(t)
}

// Target pairs an alias with the triple it stands for.
type Target struct {
	Alias  Alias
	Triple Triple
}

// Registry is an ordered, read-only mapping from alias to triple.
type Registry struct {
	targets []Target
	index   map[Alias]Triple
}

// NewRegistry builds a registry from targets in their declared order.
// Every alias must be non-empty, unique and different from "all"; every triple must be non-empty.
func NewRegistry(targets ...Target) (*Registry, error) {
	if len(targets) == 0 {
		return nil, ErrEmptyRegistry
	}

	r := &Registry{
		targets: make([]Target, 0, len(targets)),
		index:   make(map[Alias]Triple, len(targets)),
	}

	for _, t := range targets {
		switch {
		case t.Alias == "":
			return nil, invalidTarget(ErrEmptyAlias, t)
		case t.Alias == AllTargets:
			return nil, invalidTarget(ErrReservedAlias, t)
		case t.Triple == "":
			return nil, invalidTarget(ErrEmptyTriple, t)
		}
		if _, exists := r.index[t.Alias]; exists {
			return nil, invalidTarget(ErrDuplicateAlias, t)
		}

		r.index[t.Alias] = t.Triple
		r.targets = append(r.targets, t)
	}

	return r, nil
}

// invalidTarget keeps sentinel as the cause so errors.Is matches it.
func invalidTarget(sentinel error, t Target) error {
	err := zerr.Wrap(sentinel, "invalid target registry")
	err = zerr.With(err, "alias", string(t.Alias))
	return zerr.With(err, "triple", t.Triple.String())
}

// MustRegistry is like NewRegistry but panics on invalid input.
// It is intended for static tables known to be valid.
func MustRegistry(targets ...Target) *Registry {
	r, err := NewRegistry(targets...)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry returns the built-in target table.
func DefaultRegistry() *Registry {
	return MustRegistry(
		Target{Alias: "linux", Triple: "x86_64-unknown-linux-gnu"},
		Target{Alias: "windows", Triple: "x86_64-pc-windows-gnu"},
		Target{Alias: "mac", Triple: "x86_64-apple-darwin"},
		Target{Alias: "rpi", Triple: "armv7-unknown-linux-gnueabihf"},
		Target{Alias: "rpi-legacy", Triple: "arm-unknown-linux-gnueabihf"},
		Target{Alias: "rpi64", Triple: "aarch64-unknown-linux-gnu"},
	)
}

// Lookup returns the triple registered for alias.
func (r *Registry) Lookup(alias Alias) (Triple, bool) {
	t, ok := r.index[alias]
	return t, ok
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	return len(r.targets)
}

// Targets returns an iterator over the registered targets in declared order.
func (r *Registry) Targets() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, t := range r.targets {
			if !yield(t) {
				return
			}
		}
	}
}
