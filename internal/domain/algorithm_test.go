package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAlgorithm(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		metric    string
		threshold float64
		wantSizes []int
	}{
		{"greedy", AlgorithmGreedy, "", 2, []int{2, 1}},
		{"hierarchical default metric", AlgorithmHierarchical, "", 1, []int{1, 2}},
		{"hierarchical jaccard", AlgorithmHierarchical, MetricJaccard, 0.5, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			algorithm, err := ResolveAlgorithm(tt.algorithm, AlgorithmOptions{Metric: tt.metric})
			require.NoError(t, err)

			groups, err := algorithm(context.Background(), abcGroups(t), tt.threshold)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSizes, groupSizes(groups))
		})
	}
}

func TestResolveAlgorithm_Errors(t *testing.T) {
	_, err := ResolveAlgorithm("kmeans", AlgorithmOptions{})
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), "kmeans")

	_, err = ResolveAlgorithm(AlgorithmHierarchical, AlgorithmOptions{Metric: "cosine"})
	require.ErrorIs(t, err, ErrUnknownMetric)

	// Greedy does not use a metric, so an unknown one is ignored.
	_, err = ResolveAlgorithm(AlgorithmGreedy, AlgorithmOptions{Metric: "cosine"})
	require.NoError(t, err)
}
