package domain

import m "cigroup.dev/pkg/cigroup/internal/model"

// Evaluate computes per-group counts and averages over the final groups.
// Similarity is the mean of common paths per member.
func Evaluate(groups []*m.Group) m.Evaluation {
	eval := m.Evaluation{
		TotalGroups: len(groups),
		Groups:      make([]m.GroupStats, 0, len(groups)),
	}

	var commonTotal, similarityTotal float64

	for i, g := range groups {
		members := g.MemberCount()
		common := g.IntersectionBitCount()

		stats := m.GroupStats{
			Index:       i + 1,
			Members:     members,
			CommonPaths: common,
			MemberNames: g.MemberNames(),
			Common:      g.CommonPaths(),
		}

		if members > 0 {
			stats.CommonPerMember = float64(common) / float64(members)
		}

		eval.TotalItems += members
		commonTotal += float64(common)
		similarityTotal += stats.CommonPerMember

		eval.Groups = append(eval.Groups, stats)
	}

	if len(groups) == 0 {
		return eval
	}

	n := float64(len(groups))
	eval.AvgMembers = float64(eval.TotalItems) / n
	eval.AvgCommonPaths = commonTotal / n
	eval.AvgSimilarity = similarityTotal / n

	return eval
}
