// Package history lists locally recorded practice sessions.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aslanbek/kazlearn/internal/screen"
	"github.com/aslanbek/kazlearn/internal/store"
	"github.com/aslanbek/kazlearn/internal/ui/layout"
	"github.com/aslanbek/kazlearn/internal/ui/theme"
)

// loadedMsg carries the history query result.
type loadedMsg struct {
	Sessions []store.SessionRecord
	Err      error
}

// HistoryScreen shows past sessions, newest first.
type HistoryScreen struct {
	hist     *store.Store
	sessions []store.SessionRecord
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen. hist may be nil.
func New(hist *store.Store) *HistoryScreen {
	return &HistoryScreen{hist: hist}
}

func (h *HistoryScreen) Init() tea.Cmd {
	if h.hist == nil {
		return nil
	}
	hist := h.hist
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		sessions, err := hist.RecentSessions(ctx, 20)
		return loadedMsg{Sessions: sessions, Err: err}
	}
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if loaded, ok := msg.(loadedMsg); ok {
		h.loaded = true
		if loaded.Err != nil {
			h.errMsg = loaded.Err.Error()
		} else {
			h.sessions = loaded.Sessions
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	if h.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  Could not load history: " + h.errMsg)
	}
	if !h.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(h.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")
	header := fmt.Sprintf("%-12s %-10s %-12s %-10s %s",
		"Date", "Type", "Correct", "Accuracy", "Duration")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", lipgloss.Width(header)))))
	b.WriteString("\n")

	for _, s := range h.sessions {
		mins := s.DurationSec / 60
		secs := s.DurationSec % 60
		line := fmt.Sprintf("%-12s %-10s %-12s %-10s %d:%02d",
			s.FinishedAt.Local().Format("Jan 02"),
			s.SessionType,
			fmt.Sprintf("%d/%d", s.CorrectCount, s.TotalCount),
			fmt.Sprintf("%d%%", s.AccuracyPct),
			mins, secs)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
