// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cigroup.dev/pkg/cigroup/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted when
// the test finishes.
func NewMockWorkflow(t testingT) *MockWorkflow {
	wf := &MockWorkflow{}
	wf.Mock.Test(t)

	t.Cleanup(func() { wf.AssertExpectations(t) })

	return wf
}

// Run provides a mock function.
func (w *MockWorkflow) Run(ctx context.Context, args domain.RunArgs) error {
	ret := w.Called(ctx, args)
	return ret.Error(0)
}

// Sweep provides a mock function.
func (w *MockWorkflow) Sweep(ctx context.Context, args domain.SweepArgs) error {
	ret := w.Called(ctx, args)
	return ret.Error(0)
}

// View provides a mock function.
func (w *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := w.Called(ctx, args)
	return ret.Error(0)
}

// MockGenerator is a mock implementation of domain.Generator.
type MockGenerator struct {
	mock.Mock
}

// NewMockGenerator creates a MockGenerator whose expectations are asserted
// when the test finishes.
func NewMockGenerator(t testingT) *MockGenerator {
	gen := &MockGenerator{}
	gen.Mock.Test(t)

	t.Cleanup(func() { gen.AssertExpectations(t) })

	return gen
}

// Generate provides a mock function.
func (g *MockGenerator) Generate(args domain.GenerateArgs) (domain.Workload, error) {
	ret := g.Called(args)
	return ret.Get(0).(domain.Workload), ret.Error(1)
}
