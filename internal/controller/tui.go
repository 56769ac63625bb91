package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	m "cigroup.dev/pkg/cigroup/internal/model"
)

// pagerChrome is the number of lines taken by the pager header and footer.
const pagerChrome = 3

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5B8DEF")).
			Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// TUI implements UI with a scrollable Bubble Tea pager. Output that fits on
// the screen is printed directly.
type TUI struct {
	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// DisplayRun shows the group table and statistics.
func (t *TUI) DisplayRun(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page(ctx, "cigroup · "+report.Algorithm, renderRun(report))
}

// DisplaySweep shows the sweep table and chart.
func (t *TUI) DisplaySweep(ctx context.Context, report m.SweepReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page(ctx, "cigroup · sweep", renderSweep(report))
}

func (t *TUI) page(ctx context.Context, title, content string) error {
	out := t.cmd.OutOrStdout()

	width, height, ok := terminalSize(out)
	if !ok || strings.Count(content, "\n")+pagerChrome <= height {
		_, err := fmt.Fprint(out, content)
		return err
	}

	model := newPagerModel(title, content, width, height)

	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}

func terminalSize(w io.Writer) (int, int, bool) {
	f, ok := w.(*os.File)
	if !ok || !IsTTY(f) {
		return 0, 0, false
	}

	width, height, err := term.GetSize(f.Fd())
	if err != nil || height <= 0 {
		return 0, 0, false
	}

	return width, height, true
}

// pagerModel is the Bubble Tea model scrolling a rendered report.
type pagerModel struct {
	title    string
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChrome, 1))
	vp.SetContent(content)

	return pagerModel{title: title, viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChrome, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := footerStyle.Render(fmt.Sprintf("%3.f%% · ↑/↓ scroll · q quit", pm.viewport.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(pm.title),
		pm.viewport.View(),
		footer,
	)
}
