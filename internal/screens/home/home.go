// Package home is the landing screen: a navigation menu plus a
// best-effort snapshot of the learner's streak and due reviews.
package home

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aslanbek/kazlearn/internal/api"
	"github.com/aslanbek/kazlearn/internal/config"
	"github.com/aslanbek/kazlearn/internal/notify"
	"github.com/aslanbek/kazlearn/internal/practice"
	"github.com/aslanbek/kazlearn/internal/router"
	"github.com/aslanbek/kazlearn/internal/screen"
	"github.com/aslanbek/kazlearn/internal/screens/dashboard"
	"github.com/aslanbek/kazlearn/internal/screens/history"
	sessionscreen "github.com/aslanbek/kazlearn/internal/screens/session"
	"github.com/aslanbek/kazlearn/internal/store"
	"github.com/aslanbek/kazlearn/internal/ui/components"
	"github.com/aslanbek/kazlearn/internal/ui/theme"
)

// greetingLoadedMsg carries the best-effort home stats fetch.
type greetingLoadedMsg struct {
	Streak int
	Due    int
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu   components.Menu
	client *api.Client
	streak int
	due    int
	loaded bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen wired to the given collaborators.
func New(client *api.Client, hist *store.Store, cfg config.Config, notices *notify.Latest) *HomeScreen {
	startOpts := func(sessionType string) practice.StartOptions {
		return practice.StartOptions{
			SessionType:   sessionType,
			WordCount:     cfg.WordCount,
			IncludeReview: cfg.IncludeReview,
			LanguageCode:  cfg.LanguageCode,
		}
	}

	items := []components.MenuItem{
		{Label: "PRACTICE", Hint: "Start a practice session with new words", Action: func() tea.Cmd {
			return func() tea.Msg {
				svc := api.NewPracticeService(client)
				return router.PushScreenMsg{
					Screen: sessionscreen.New(svc, startOpts(practice.SessionTypePractice), notices, hist),
				}
			}
		}},
		{Label: "REVIEW DUE WORDS", Hint: "Review words that are due today", Action: func() tea.Cmd {
			return func() tea.Msg {
				svc := api.NewPracticeService(client)
				return router.PushScreenMsg{
					Screen: sessionscreen.New(svc, startOpts(practice.SessionTypeReview), notices, hist),
				}
			}
		}},
		{Label: "DASHBOARD", Hint: "Progress, streak and category stats", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(client)}
			}
		}},
		{Label: "HISTORY", Hint: "Past sessions on this device", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(hist)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:   components.NewMenu(items),
		client: client,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadGreeting()
}

// loadGreeting fetches streak and due counts. Failures are silent; the
// menu works without them.
func (h *HomeScreen) loadGreeting() tea.Cmd {
	client := h.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var msg greetingLoadedMsg
		if streak, err := client.Streak(ctx); err == nil {
			msg.Streak = streak.CurrentStreak
		}
		if sched, err := client.ReviewSchedule(ctx); err == nil {
			msg.Due = sched.DueNow
		}
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if loaded, ok := msg.(greetingLoadedMsg); ok {
		h.streak = loaded.Streak
		h.due = loaded.Due
		h.loaded = true
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Қазақша үйренейік!"))

	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Learn Kazakh, one word at a time"))

	if h.loaded {
		stats := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(statLine(h.streak, h.due))
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, stats))
	}

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return "\n\n" + strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// Streak returns the loaded streak count for the header.
func (h *HomeScreen) Streak() int { return h.streak }

// Due returns the loaded due-review count for the header.
func (h *HomeScreen) Due() int { return h.due }

func statLine(streak, due int) string {
	parts := []string{}
	if streak > 0 {
		parts = append(parts, pluralDays(streak)+" streak")
	}
	if due > 0 {
		parts = append(parts, pluralWords(due)+" due for review")
	}
	if len(parts) == 0 {
		return "No reviews due. Great time to learn new words!"
	}
	return strings.Join(parts, "    ")
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return strconv.Itoa(n) + " days"
}

func pluralWords(n int) string {
	if n == 1 {
		return "1 word"
	}
	return strconv.Itoa(n) + " words"
}
