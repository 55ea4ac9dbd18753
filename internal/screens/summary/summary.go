package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aslanbek/kazlearn/internal/practice"
	"github.com/aslanbek/kazlearn/internal/router"
	"github.com/aslanbek/kazlearn/internal/screen"
	"github.com/aslanbek/kazlearn/internal/store"
	"github.com/aslanbek/kazlearn/internal/ui/layout"
	"github.com/aslanbek/kazlearn/internal/ui/theme"
)

// SummaryScreen displays the finished session's results.
type SummaryScreen struct {
	summary *practice.Summary
	words   []practice.Word
	hist    *store.Store
	saveErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// savedMsg reports the local history write.
type savedMsg struct {
	Err error
}

// New creates a SummaryScreen. hist may be nil, in which case the
// session is not recorded locally.
func New(summary *practice.Summary, words []practice.Word, hist *store.Store) *SummaryScreen {
	return &SummaryScreen{summary: summary, words: words, hist: hist}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.hist == nil || s.summary == nil {
		return nil
	}
	hist, sum, words := s.hist, s.summary, s.words
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := hist.RecordSummary(ctx, sum, words, time.Now())
		return savedMsg{Err: err}
	}
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saveErr = msg.Err
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Жарайсың! Session complete!"))
	b.WriteString("\n\n")

	mins := sum.DurationSec / 60
	secs := sum.DurationSec % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Words: %d        Correct: %d        Accuracy: %d%%",
		sum.TotalCount, sum.CorrectCount, sum.AccuracyPct)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Words")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, res := range sum.Results {
		var prompt, expected string
		if i < len(s.words) {
			prompt = s.words[i].Prompt
			expected = s.words[i].Answer
		}

		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		detail := ""
		if !res.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
			if res.Submitted == practice.SkippedAnswer {
				detail = "skipped"
			} else {
				detail = fmt.Sprintf("wrote %q", res.Submitted)
			}
		}

		line := fmt.Sprintf("%s  %-15s %-15s %s", mark, prompt, expected, detail)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not save to local history: " + s.saveErr.Error()))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
