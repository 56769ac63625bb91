// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	m "cigroup.dev/pkg/cigroup/internal/model"
)

// MockReportStore is a mock implementation of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// NewMockReportStore creates a MockReportStore whose expectations are
// asserted when the test finishes.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	store := &MockReportStore{}
	store.Mock.Test(t)

	t.Cleanup(func() { store.AssertExpectations(t) })

	return store
}

// SaveRun provides a mock function.
func (s *MockReportStore) SaveRun(dir string, report m.RunReport) error {
	args := s.Called(dir, report)
	return args.Error(0)
}

// LoadRun provides a mock function.
func (s *MockReportStore) LoadRun(dir string) (m.RunReport, error) {
	args := s.Called(dir)
	return args.Get(0).(m.RunReport), args.Error(1)
}

// SaveSweep provides a mock function.
func (s *MockReportStore) SaveSweep(dir string, report m.SweepReport) error {
	args := s.Called(dir, report)
	return args.Error(0)
}

// LoadSweep provides a mock function.
func (s *MockReportStore) LoadSweep(dir string) (m.SweepReport, error) {
	args := s.Called(dir)
	return args.Get(0).(m.SweepReport), args.Error(1)
}
