package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	domainmocks "cigroup.dev/pkg/cigroup/internal/domain/mocks"
)

// newTestRoot builds a fresh root with sub attached and swaps the package
// workflow for a mock until the test ends.
func newTestRoot(t *testing.T, sub *cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd, mockWorkflow
}

func logFileArgs(t *testing.T) []string {
	t.Helper()

	return []string{"--log-file", filepath.Join(t.TempDir(), "cigroup.log")}
}
