package domain

import (
	"context"
	"log/slog"

	m "cigroup.dev/pkg/cigroup/internal/model"
)

// GreedyMerge pairs groups in a single left-to-right pass. Each group is
// compared with every group still waiting behind it by the dot product of
// their intersection vectors; the first best match is merged in when its score
// reaches threshold. A group takes part in at most one merge per call and a
// merged group is not compared again.
func GreedyMerge(ctx context.Context, groups []*m.Group, threshold float64) ([]*m.Group, error) {
	merged := make([]*m.Group, 0, len(groups))

	// consumed[i] marks groups already taken off the worklist.
	consumed := make([]bool, len(groups))

	for i, current := range groups {
		if consumed[i] {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		consumed[i] = true

		best, bestScore := -1, 0

		for j := i + 1; j < len(groups); j++ {
			if consumed[j] {
				continue
			}

			if score := current.Dot(groups[j]); score > bestScore {
				best, bestScore = j, score
			}
		}

		if best < 0 || float64(bestScore) < threshold {
			merged = append(merged, current)
			continue
		}

		consumed[best] = true

		slog.Debug("greedy merge", "left", i, "right", best, "score", bestScore)

		merged = append(merged, m.MergeGroups(current, groups[best]))
	}

	return merged, nil
}
