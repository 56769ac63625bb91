// Package model defines the data structures for build script grouping.
package model

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownPath is returned when a path is encoded against a universe that
// does not contain it.
var ErrUnknownPath = errors.New("path not in universe")

// Path identifies a prerequisite resource a build script depends on.
type Path string

// Universe is the sorted, deduplicated set of every path referenced in a run.
// It fixes the width of every membership vector.
type Universe struct {
	paths []Path
	index map[Path]int
}

// NewUniverse builds a universe from arbitrary paths.
func NewUniverse(paths []Path) *Universe {
	sorted := sortedUnique(paths)

	index := make(map[Path]int, len(sorted))
	for i, p := range sorted {
		index[p] = i
	}

	return &Universe{paths: sorted, index: index}
}

// CollectUniverse builds the universe from the union of all items' paths.
func CollectUniverse(items []WorkItem) *Universe {
	var all []Path
	for _, item := range items {
		all = append(all, item.paths...)
	}

	return NewUniverse(all)
}

// Len returns the number of paths, i.e. the vector width.
func (u *Universe) Len() int {
	return len(u.paths)
}

// Paths returns a copy of the sorted paths.
func (u *Universe) Paths() []Path {
	return slices.Clone(u.paths)
}

// Index returns the position of p in the universe.
func (u *Universe) Index(p Path) (int, bool) {
	i, ok := u.index[p]
	return i, ok
}

// Vector encodes paths as a membership vector. Every path must belong to the
// universe; otherwise no vector is produced.
func (u *Universe) Vector(paths []Path) (Vector, error) {
	v := NewVector(u.Len())

	for _, p := range paths {
		i, ok := u.index[p]
		if !ok {
			return Vector{}, fmt.Errorf("%w: %q", ErrUnknownPath, p)
		}

		v.Set(i)
	}

	return v, nil
}

func sortedUnique(paths []Path) []Path {
	out := slices.Clone(paths)
	slices.Sort(out)

	return slices.Compact(out)
}
