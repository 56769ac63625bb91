package controller

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUI_SelectsImplementation(t *testing.T) {
	cmd, _ := newBufferedCmd()

	_, isTUI := NewUI(cmd, true).(*TUI)
	assert.True(t, isTUI)

	_, isSimple := NewUI(cmd, false).(*SimpleUI)
	assert.True(t, isSimple)
}

func TestIsTTY_NonTerminal(t *testing.T) {
	assert.False(t, IsTTY(nil))
}

func TestTUI_DisplayRun_PrintsWhenNotATerminal(t *testing.T) {
	cmd, buf := newBufferedCmd()

	err := NewTUI(cmd).DisplayRun(context.Background(), sampleRunReport())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "algorithm=greedy")
	assert.Contains(t, buf.String(), "I1, I2")
}

func TestTUI_DisplaySweep_PrintsWhenNotATerminal(t *testing.T) {
	cmd, buf := newBufferedCmd()

	err := NewTUI(cmd).DisplaySweep(context.Background(), sampleSweepReport())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Threshold sweep: hierarchical")
}

func TestPagerModel_View(t *testing.T) {
	content := strings.Repeat("row\n", 50)
	model := newPagerModel("cigroup · greedy", content, 80, 10)

	view := model.View()
	assert.Contains(t, view, "cigroup · greedy")
	assert.Contains(t, view, "q quit")
	assert.Contains(t, view, "row")
}

func TestPagerModel_WindowResize(t *testing.T) {
	model := newPagerModel("t", "content", 80, 10)

	updated, cmd := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)

	pm, ok := updated.(pagerModel)
	require.True(t, ok)
	assert.Equal(t, 120, pm.viewport.Width)
	assert.Equal(t, 40-pagerChrome, pm.viewport.Height)
}

func TestPagerModel_QuitKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := newPagerModel("t", "content", 80, 10)

			updated, cmd := model.Update(tt.msg)
			require.NotNil(t, cmd)

			pm, ok := updated.(pagerModel)
			require.True(t, ok)
			assert.True(t, pm.quitting)
			assert.Empty(t, pm.View())
		})
	}
}

func TestPagerModel_ScrollsDown(t *testing.T) {
	content := strings.Repeat("line\n", 100)
	model := newPagerModel("t", content, 80, 13)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})

	pm, ok := updated.(pagerModel)
	require.True(t, ok)
	assert.Equal(t, 1, pm.viewport.YOffset)
}
