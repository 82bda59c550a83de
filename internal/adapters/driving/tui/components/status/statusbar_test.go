package status

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ictam/agmsite/internal/adapters/driving/tui/keymap"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/styles"
)

func TestNewBar_Defaults(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Zero(t, bar.ResultCount())
	assert.Equal(t, 80, bar.Width())
}

func TestBar_ViewFillsWidth(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())
	bar.SetWidth(100)

	assert.Equal(t, 100, lipgloss.Width(bar.View()))
}

func TestBar_MessageOverridesCount(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateResults)
	bar.SetResultCount(4)
	bar.SetMessage("Filtered to speakers")

	view := bar.View()

	assert.Contains(t, view, "Filtered to speakers")
	assert.NotContains(t, view, "4 results")
}

func TestBar_ViewByState(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		message  string
		count    int
		contains []string
	}{
		{"ready", StateReady, "", 0, []string{"Ready", "q: quit"}},
		{"searching", StateSearching, "", 0, []string{"Searching..."}},
		{"error with message", StateError, "content unavailable", 0, []string{"Error: content unavailable"}},
		{"error bare", StateError, "", 0, []string{"Error"}},
		{"help", StateHelp, "", 0, []string{"Help"}},
		{"one result", StateResults, "", 1, []string{"1 result", "n: new search", "tab: filter kind"}},
		{"many results", StateResults, "", 7, []string{"7 results"}},
		{"programme", StateProgramme, "Day 1 of 3", 0, []string{"Day 1 of 3", "next day"}},
		{"info", StateInfo, "Opened /speakers/ama-mensah", 0, []string{"Opened /speakers/ama-mensah"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(140)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)
			bar.SetResultCount(tt.count)

			view := bar.View()
			for _, want := range tt.contains {
				assert.Contains(t, view, want)
			}
		})
	}
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetResultCount(3)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Zero(t, bar.ResultCount())
}
