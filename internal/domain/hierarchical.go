package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	m "cigroup.dev/pkg/cigroup/internal/model"
)

// HierarchicalOptions configures agglomerative clustering.
type HierarchicalOptions struct {
	// Metric scores cluster pairs. Nil selects HammingDistance.
	Metric Metric
	// Workers bounds the goroutines computing the initial dissimilarities.
	// Zero or less means no limit.
	Workers int
}

type cluster struct {
	id    int
	group *m.Group
}

// pairDissimilarity is one cache entry. The cache is kept in insertion order
// so the earliest inserted pair wins ties.
type pairDissimilarity struct {
	a, b  int
	value float64
}

func (p pairDissimilarity) touches(id int) bool {
	return p.a == id || p.b == id
}

// Hierarchical returns an Algorithm that repeatedly merges the closest pair of
// clusters until a single cluster remains or the closest pair is further
// apart than threshold.
func Hierarchical(opts HierarchicalOptions) Algorithm {
	metric := opts.Metric
	if metric == nil {
		metric = HammingDistance
	}

	return func(ctx context.Context, groups []*m.Group, threshold float64) ([]*m.Group, error) {
		return hierarchicalClustering(ctx, groups, threshold, metric, opts.Workers)
	}
}

func hierarchicalClustering(ctx context.Context, groups []*m.Group, threshold float64, metric Metric, workers int) ([]*m.Group, error) {
	live := make([]cluster, 0, len(groups))

	for i, g := range groups {
		if g.MemberCount() == 0 {
			return nil, fmt.Errorf("cluster %d: %w", i, m.ErrEmptyGroup)
		}

		live = append(live, cluster{id: i, group: g})
	}

	nextID := len(groups)

	cache, err := initialDissimilarities(ctx, live, metric, workers)
	if err != nil {
		return nil, err
	}

	for len(live) > 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		closest := nearestPair(cache)
		if closest.value > threshold {
			break
		}

		var a, b cluster

		live, a = takeCluster(live, closest.a)
		live, b = takeCluster(live, closest.b)

		merged := cluster{id: nextID, group: m.MergeGroups(a.group, b.group)}
		nextID++

		slog.Debug("hierarchical merge",
			"left", a.id, "right", b.id, "into", merged.id, "dissimilarity", closest.value)

		cache = slices.DeleteFunc(cache, func(p pairDissimilarity) bool {
			return p.touches(a.id) || p.touches(b.id)
		})

		for _, c := range live {
			cache = append(cache, pairDissimilarity{
				a:     merged.id,
				b:     c.id,
				value: metric(merged.group, c.group),
			})
		}

		live = append(live, merged)
	}

	out := make([]*m.Group, 0, len(live))
	for _, c := range live {
		out = append(out, c.group)
	}

	return out, nil
}

// initialDissimilarities scores every pair of live clusters. Each row is
// computed by its own goroutine and written to a fixed slot, so the result
// does not depend on scheduling.
func initialDissimilarities(ctx context.Context, live []cluster, metric Metric, workers int) ([]pairDissimilarity, error) {
	n := len(live)
	if n < 2 {
		return nil, nil
	}

	cache := make([]pairDissimilarity, n*(n-1)/2)

	group, groupCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	offset := 0

	for i := range n - 1 {
		row, start := i, offset
		offset += n - i - 1

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			for j := row + 1; j < n; j++ {
				cache[start+j-row-1] = pairDissimilarity{
					a:     live[row].id,
					b:     live[j].id,
					value: metric(live[row].group, live[j].group),
				}
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return cache, nil
}

func nearestPair(cache []pairDissimilarity) pairDissimilarity {
	best := cache[0]
	for _, p := range cache[1:] {
		if p.value < best.value {
			best = p
		}
	}

	return best
}

func takeCluster(live []cluster, id int) ([]cluster, cluster) {
	i := slices.IndexFunc(live, func(c cluster) bool { return c.id == id })
	if i < 0 {
		panic(fmt.Sprintf("domain: cluster %d is not live", id))
	}

	c := live[i]

	return slices.Delete(live, i, i+1), c
}
