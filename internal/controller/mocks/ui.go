// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "cigroup.dev/pkg/cigroup/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a MockUI whose expectations are asserted when the test
// finishes.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	ui := &MockUI{}
	ui.Mock.Test(t)

	t.Cleanup(func() { ui.AssertExpectations(t) })

	return ui
}

// DisplayRun provides a mock function.
func (u *MockUI) DisplayRun(ctx context.Context, report m.RunReport) error {
	args := u.Called(ctx, report)
	return args.Error(0)
}

// DisplaySweep provides a mock function.
func (u *MockUI) DisplaySweep(ctx context.Context, report m.SweepReport) error {
	args := u.Called(ctx, report)
	return args.Error(0)
}
