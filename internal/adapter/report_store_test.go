package adapter

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cigroup.dev/pkg/cigroup/internal/model"
)

func TestLocalReportStore_RunRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	store := NewReportStore()

	report := m.RunReport{
		Algorithm:    "greedy",
		Threshold:    2,
		Generate:     m.GenerateSettings{Scripts: 3, Paths: 3, MinPaths: 1, MaxPaths: 3, Seed: 7},
		UniverseSize: 3,
		Evaluation: m.Evaluation{
			TotalGroups: 2,
			TotalItems:  3,
			AvgMembers:  1.5,
			Groups: []m.GroupStats{
				{Index: 1, Members: 2, CommonPaths: 2, CommonPerMember: 1, MemberNames: []string{"I1", "I2"}, Common: []m.Path{"A", "B"}},
				{Index: 2, Members: 1, CommonPaths: 1, CommonPerMember: 1, MemberNames: []string{"I3"}, Common: []m.Path{"C"}},
			},
		},
	}

	require.NoError(t, store.SaveRun(dir, report))

	loaded, err := store.LoadRun(dir)
	require.NoError(t, err)
	assert.Equal(t, report, loaded)

	data, err := os.ReadFile(filepath.Join(dir, RunReportFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "algorithm: greedy")
}

func TestLocalReportStore_SweepRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewReportStore()

	report := m.SweepReport{
		Algorithm: "hierarchical",
		Metric:    "hamming",
		Seeds:     []int64{0, 1},
		Points: []m.SweepPoint{
			{Threshold: 1, Runs: 2, AvgGroups: 4, AvgMembers: 2.5, AvgCommonPaths: 3, AvgSimilarity: 1.25},
			{Threshold: 5, Runs: 2, AvgGroups: 1, AvgMembers: 10, AvgCommonPaths: 0, AvgSimilarity: 0},
		},
	}

	require.NoError(t, store.SaveSweep(dir, report))

	loaded, err := store.LoadSweep(dir)
	require.NoError(t, err)
	assert.Equal(t, report, loaded)
}

func TestLocalReportStore_MissingReport(t *testing.T) {
	store := NewReportStore()

	_, err := store.LoadRun(t.TempDir())
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = store.LoadSweep(t.TempDir())
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLocalReportStore_CorruptReport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, RunReportFile), []byte("algorithm: [unterminated"), 0o600))

	_, err := NewReportStore().LoadRun(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
