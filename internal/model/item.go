package model

import "slices"

// WorkItem is a build script: an immutable set of prerequisite paths.
type WorkItem struct {
	Name  string
	paths []Path
}

// NewWorkItem sorts and deduplicates paths so equal sets compare equal.
func NewWorkItem(name string, paths ...Path) WorkItem {
	return WorkItem{Name: name, paths: sortedUnique(paths)}
}

// Paths returns a copy of the sorted prerequisite paths.
func (w WorkItem) Paths() []Path {
	return slices.Clone(w.paths)
}

// Vector returns the membership vector of the item against u.
func (w WorkItem) Vector(u *Universe) (Vector, error) {
	return u.Vector(w.paths)
}
