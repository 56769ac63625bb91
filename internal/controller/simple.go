package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "cigroup.dev/pkg/cigroup/internal/model"
)

// SimpleUI implements UI by printing to the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRun prints the group table and global statistics.
func (s *SimpleUI) DisplayRun(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(renderRun(report))
}

// DisplaySweep prints the sweep table and chart.
func (s *SimpleUI) DisplaySweep(ctx context.Context, report m.SweepReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(renderSweep(report))
}

func (s *SimpleUI) print(text string) error {
	_, err := fmt.Fprint(s.cmd.OutOrStdout(), text)
	return err
}
