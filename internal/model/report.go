package model

// GroupStats holds the reporter's view of a single group.
type GroupStats struct {
	Index           int      `yaml:"index"`
	Members         int      `yaml:"members"`
	CommonPaths     int      `yaml:"common_paths"`
	CommonPerMember float64  `yaml:"common_per_member"`
	MemberNames     []string `yaml:"member_names,omitempty"`
	Common          []Path   `yaml:"common,omitempty"`
}

// Evaluation aggregates statistics over a final list of groups.
type Evaluation struct {
	TotalGroups    int          `yaml:"total_groups"`
	TotalItems     int          `yaml:"total_items"`
	AvgMembers     float64      `yaml:"avg_members"`
	AvgCommonPaths float64      `yaml:"avg_common_paths"`
	AvgSimilarity  float64      `yaml:"avg_similarity"`
	Groups         []GroupStats `yaml:"groups"`
}

// GenerateSettings records how a workload was generated.
type GenerateSettings struct {
	Scripts  int   `yaml:"scripts"`
	Paths    int   `yaml:"paths"`
	MinPaths int   `yaml:"min_paths"`
	MaxPaths int   `yaml:"max_paths"`
	Seed     int64 `yaml:"seed"`
}

// RunReport is the persisted result of a single clustering run.
type RunReport struct {
	Algorithm    string           `yaml:"algorithm"`
	Metric       string           `yaml:"metric,omitempty"`
	Threshold    float64          `yaml:"threshold"`
	Generate     GenerateSettings `yaml:"generate"`
	UniverseSize int              `yaml:"universe_size"`
	Evaluation   Evaluation       `yaml:"evaluation"`
}

// SweepPoint holds the seed-averaged metrics for one threshold.
type SweepPoint struct {
	Threshold      float64 `yaml:"threshold"`
	Runs           int     `yaml:"runs"`
	AvgGroups      float64 `yaml:"avg_groups"`
	AvgMembers     float64 `yaml:"avg_members"`
	AvgCommonPaths float64 `yaml:"avg_common_paths"`
	AvgSimilarity  float64 `yaml:"avg_similarity"`
}

// SweepReport is the persisted result of a threshold sweep.
type SweepReport struct {
	Algorithm string           `yaml:"algorithm"`
	Metric    string           `yaml:"metric,omitempty"`
	Seeds     []int64          `yaml:"seeds"`
	Generate  GenerateSettings `yaml:"generate"`
	Points    []SweepPoint     `yaml:"points"`
}
