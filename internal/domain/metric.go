package domain

import (
	"errors"
	"fmt"
	"sort"

	m "cigroup.dev/pkg/cigroup/internal/model"
)

// ErrUnknownMetric is returned for an unsupported dissimilarity metric name.
var ErrUnknownMetric = errors.New("unknown dissimilarity metric")

// Metric scores how far apart two groups are; lower means more similar.
type Metric func(a, b *m.Group) float64

// Metric names accepted by ParseMetric.
const (
	MetricHamming       = "hamming"
	MetricComplementDot = "complement-dot"
	MetricJaccard       = "jaccard"
)

// DefaultMetric is used when no metric is configured.
const DefaultMetric = MetricHamming

var metrics = map[string]Metric{
	MetricHamming:       HammingDistance,
	MetricComplementDot: ComplementDot,
	MetricJaccard:       JaccardDistance,
}

// HammingDistance counts the paths common to exactly one of the two groups.
func HammingDistance(a, b *m.Group) float64 {
	return float64(a.Hamming(b))
}

// ComplementDot is the universe size minus the number of paths common to both
// groups.
func ComplementDot(a, b *m.Group) float64 {
	return float64(a.Universe().Len() - a.Dot(b))
}

// JaccardDistance is 1 - |A∩B|/|A∪B| over the groups' common paths. Two groups
// with no common paths at all are at distance 0.
func JaccardDistance(a, b *m.Group) float64 {
	union := a.UnionCount(b)
	if union == 0 {
		return 0
	}

	return 1 - float64(a.Dot(b))/float64(union)
}

// ParseMetric resolves a metric by name. An empty name selects DefaultMetric.
func ParseMetric(name string) (Metric, error) {
	if name == "" {
		name = DefaultMetric
	}

	metric, ok := metrics[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownMetric, name, MetricNames())
	}

	return metric, nil
}

// MetricNames lists the supported metric names in sorted order.
func MetricNames() []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
