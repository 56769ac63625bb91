// Package adapter contains infrastructure adapters for the cigroup CLI.
package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "cigroup.dev/pkg/cigroup/internal/model"
)

// Report file names inside a reports directory.
const (
	RunReportFile   = "run.yaml"
	SweepReportFile = "sweep.yaml"
)

// ReportStore persists run and sweep reports in a reports directory.
// Loading a report that was never saved returns an error wrapping
// fs.ErrNotExist.
type ReportStore interface {
	SaveRun(dir string, report m.RunReport) error
	LoadRun(dir string) (m.RunReport, error)
	SaveSweep(dir string, report m.SweepReport) error
	LoadSweep(dir string) (m.SweepReport, error)
}

// LocalReportStore stores reports as YAML files on the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveRun writes report to dir/run.yaml.
func (s *LocalReportStore) SaveRun(dir string, report m.RunReport) error {
	return writeYAML(filepath.Join(dir, RunReportFile), report)
}

// LoadRun reads dir/run.yaml.
func (s *LocalReportStore) LoadRun(dir string) (m.RunReport, error) {
	var report m.RunReport
	err := readYAML(filepath.Join(dir, RunReportFile), &report)

	return report, err
}

// SaveSweep writes report to dir/sweep.yaml.
func (s *LocalReportStore) SaveSweep(dir string, report m.SweepReport) error {
	return writeYAML(filepath.Join(dir, SweepReportFile), report)
}

// LoadSweep reads dir/sweep.yaml.
func (s *LocalReportStore) LoadSweep(dir string) (m.SweepReport, error) {
	var report m.SweepReport
	err := readYAML(filepath.Join(dir, SweepReportFile), &report)

	return report, err
}

func writeYAML(path string, value any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		slog.Error("failed to create reports directory", "path", path, "error", err)
		return fmt.Errorf("create reports directory: %w", err)
	}

	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		slog.Error("failed to write report", "path", path, "error", err)
		return fmt.Errorf("write %s: %w", path, err)
	}

	slog.Debug("saved report", "path", path, "bytes", len(data))

	return nil
}

func readYAML(path string, value any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, value); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	slog.Debug("loaded report", "path", path)

	return nil
}
