package domain

import (
	"context"
	"errors"
	"fmt"

	m "cigroup.dev/pkg/cigroup/internal/model"
)

// ErrUnknownAlgorithm is returned for an unsupported algorithm name.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm reduces a list of groups by merging the ones close enough under
// threshold. Implementations return a new slice and never modify the input
// groups.
type Algorithm func(ctx context.Context, groups []*m.Group, threshold float64) ([]*m.Group, error)

// Algorithm names accepted by ResolveAlgorithm.
const (
	AlgorithmGreedy       = "greedy"
	AlgorithmHierarchical = "hierarchical"
)

// AlgorithmNames lists the supported algorithm names.
func AlgorithmNames() []string {
	return []string{AlgorithmGreedy, AlgorithmHierarchical}
}

// AlgorithmOptions carries the settings some algorithms need.
type AlgorithmOptions struct {
	Metric  string
	Workers int
}

// ResolveAlgorithm maps an algorithm name to its implementation.
func ResolveAlgorithm(name string, opts AlgorithmOptions) (Algorithm, error) {
	switch name {
	case AlgorithmGreedy:
		return GreedyMerge, nil
	case AlgorithmHierarchical:
		metric, err := ParseMetric(opts.Metric)
		if err != nil {
			return nil, err
		}

		return Hierarchical(HierarchicalOptions{Metric: metric, Workers: opts.Workers}), nil
	default:
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownAlgorithm, name, AlgorithmNames())
	}
}
