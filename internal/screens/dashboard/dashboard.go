// Package dashboard renders the learner's remote progress overview.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aslanbek/kazlearn/internal/api"
	"github.com/aslanbek/kazlearn/internal/screen"
	"github.com/aslanbek/kazlearn/internal/ui/components"
	"github.com/aslanbek/kazlearn/internal/ui/layout"
	"github.com/aslanbek/kazlearn/internal/ui/theme"
)

// loadedMsg carries the dashboard fetch result.
type loadedMsg struct {
	Dashboard *api.Dashboard
	Err       error
}

// DashboardScreen shows overall stats, the streak and per-category
// progress.
type DashboardScreen struct {
	client *api.Client
	data   *api.Dashboard
	errMsg string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen.
func New(client *api.Client) *DashboardScreen {
	return &DashboardScreen{client: client}
}

func (d *DashboardScreen) Init() tea.Cmd {
	client := d.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dash, err := client.Dashboard(ctx)
		return loadedMsg{Dashboard: dash, Err: err}
	}
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if loaded, ok := msg.(loadedMsg); ok {
		if loaded.Err != nil {
			d.errMsg = loaded.Err.Error()
		} else {
			d.data = loaded.Dashboard
		}
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	if d.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  Could not load dashboard: " + d.errMsg)
	}
	if d.data == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading your progress...")
	}

	stats := d.data.Stats
	var b strings.Builder

	statsLine := fmt.Sprintf("Words in list: %d        This week: %d sessions        Accuracy: %.0f%%",
		stats.TotalWords, stats.SessionsThisWeek, stats.AccuracyRate*100)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	streakLine := fmt.Sprintf("Streak: %d days        Due today: %d", stats.CurrentStreak, d.data.WordsDueToday)
	if d.data.Streak != nil && d.data.Streak.LongestStreak > stats.CurrentStreak {
		streakLine += fmt.Sprintf("        Best: %d days", d.data.Streak.LongestStreak)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(streakLine))
	b.WriteString("\n\n")

	if len(d.data.CategoryProgress) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Categories")))
		b.WriteString("\n\n")

		barWidth := min(width-10, 50)
		for _, cp := range d.data.CategoryProgress {
			bar := components.NewProgressBar(
				fmt.Sprintf("%-16s", cp.CategoryName),
				cp.CompletionRate,
				true,
				barWidth,
			)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(d.data.RecentSessions) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent sessions")))
		b.WriteString("\n\n")

		for i, s := range d.data.RecentSessions {
			if i >= 5 {
				break
			}
			line := fmt.Sprintf("%-10s %d/%d correct", s.SessionType, s.CorrectAnswers, s.WordsStudied)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
