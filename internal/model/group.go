package model

import (
	"errors"
	"fmt"
	"slices"
)

// ErrEmptyGroup is returned when an operation needs at least one member.
var ErrEmptyGroup = errors.New("group has no members")

// Group is a build script group: its members plus the AND of their membership
// vectors. The intersection is updated on every Add and never recomputed from
// the member list.
type Group struct {
	universe     *Universe
	members      []WorkItem
	intersection Vector
}

// NewGroup creates a group over u holding items in order.
func NewGroup(u *Universe, items ...WorkItem) (*Group, error) {
	g := &Group{
		universe:     u,
		members:      make([]WorkItem, 0, len(items)),
		intersection: AllOnes(u.Len()),
	}

	for _, item := range items {
		if err := g.Add(item); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Singletons wraps every item in its own group.
func Singletons(u *Universe, items []WorkItem) ([]*Group, error) {
	groups := make([]*Group, 0, len(items))

	for _, item := range items {
		g, err := NewGroup(u, item)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", item.Name, err)
		}

		groups = append(groups, g)
	}

	return groups, nil
}

// MergeGroups returns a new group with the members of a followed by those of
// b. Neither input is modified.
func MergeGroups(a, b *Group) *Group {
	if a.universe != b.universe {
		panic("model: merging groups over different universes")
	}

	members := make([]WorkItem, 0, len(a.members)+len(b.members))
	members = append(members, a.members...)
	members = append(members, b.members...)

	return &Group{
		universe:     a.universe,
		members:      members,
		intersection: a.intersection.And(b.intersection),
	}
}

// Add appends item and narrows the intersection to the paths it shares.
func (g *Group) Add(item WorkItem) error {
	v, err := item.Vector(g.universe)
	if err != nil {
		return err
	}

	g.members = append(g.members, item)
	g.intersection = g.intersection.And(v)

	return nil
}

// Universe returns the universe the group is encoded against.
func (g *Group) Universe() *Universe {
	return g.universe
}

// Members returns a copy of the members in insertion order.
func (g *Group) Members() []WorkItem {
	return slices.Clone(g.members)
}

// MemberCount returns the number of members.
func (g *Group) MemberCount() int {
	return len(g.members)
}

// Intersection returns the paths common to every member as a vector.
func (g *Group) Intersection() Vector {
	return g.intersection.Clone()
}

// IntersectionBitCount returns the number of paths common to every member.
func (g *Group) IntersectionBitCount() int {
	return g.intersection.Count()
}

// CommonPaths decodes the intersection vector back into paths.
func (g *Group) CommonPaths() []Path {
	indices := g.intersection.Indices()

	paths := make([]Path, 0, len(indices))
	for _, i := range indices {
		paths = append(paths, g.universe.paths[i])
	}

	return paths
}

// MemberNames returns the member names in insertion order.
func (g *Group) MemberNames() []string {
	names := make([]string, 0, len(g.members))
	for _, item := range g.members {
		names = append(names, item.Name)
	}

	return names
}

// Dot returns the number of paths set in both groups' intersections.
func (g *Group) Dot(o *Group) int {
	return g.intersection.Dot(o.intersection)
}

// Hamming returns the number of positions where the two intersections differ.
func (g *Group) Hamming(o *Group) int {
	return g.intersection.Hamming(o.intersection)
}

// UnionCount returns the number of paths set in either intersection.
func (g *Group) UnionCount(o *Group) int {
	return g.intersection.UnionCount(o.intersection)
}
