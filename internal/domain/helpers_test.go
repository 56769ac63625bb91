package domain

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	m "cigroup.dev/pkg/cigroup/internal/model"
)

// singletonGroups builds one group per path list; items are named I1..In.
func singletonGroups(t *testing.T, specs ...[]m.Path) []*m.Group {
	t.Helper()

	items := make([]m.WorkItem, 0, len(specs))
	for i, paths := range specs {
		items = append(items, m.NewWorkItem(fmt.Sprintf("I%d", i+1), paths...))
	}

	groups, err := m.Singletons(m.CollectUniverse(items), items)
	require.NoError(t, err)

	return groups
}

// abcGroups is the universe {A,B,C} with I1={A,B}, I2={A,B,C}, I3={C}.
func abcGroups(t *testing.T) []*m.Group {
	t.Helper()

	return singletonGroups(t,
		[]m.Path{"A", "B"},
		[]m.Path{"A", "B", "C"},
		[]m.Path{"C"},
	)
}

func randomGroups(t *testing.T, seed int64, scripts int) []*m.Group {
	t.Helper()

	workload, err := GenerateWorkload(NewRand(seed), GenerateArgs{
		Scripts:  scripts,
		Paths:    30,
		MinPaths: 5,
		MaxPaths: 20,
		Seed:     seed,
	})
	require.NoError(t, err)

	groups, err := m.Singletons(workload.Universe, workload.Items)
	require.NoError(t, err)

	return groups
}

func memberNames(groups []*m.Group) [][]string {
	out := make([][]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.MemberNames())
	}

	return out
}

func flatSortedNames(groups []*m.Group) []string {
	var names []string
	for _, g := range groups {
		names = append(names, g.MemberNames()...)
	}

	slices.Sort(names)

	return names
}

func groupSizes(groups []*m.Group) []int {
	sizes := make([]int, 0, len(groups))
	for _, g := range groups {
		sizes = append(sizes, g.MemberCount())
	}

	return sizes
}
