package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aslanbek/kazlearn/internal/api"
	"github.com/aslanbek/kazlearn/internal/config"
	"github.com/aslanbek/kazlearn/internal/notify"
	"github.com/aslanbek/kazlearn/internal/router"
	"github.com/aslanbek/kazlearn/internal/screen"
	"github.com/aslanbek/kazlearn/internal/screens/home"
	"github.com/aslanbek/kazlearn/internal/store"
	"github.com/aslanbek/kazlearn/internal/ui/layout"
)

// Deps are the collaborators the TUI needs.
type Deps struct {
	Client  *api.Client
	History *store.Store
	Config  config.Config
	Notices *notify.Latest
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	home   *home.HomeScreen
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(deps.Client, deps.History, deps.Config, deps.Notices)
	return AppModel{
		router: router.New(homeScreen),
		home:   homeScreen,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.home.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens with their own esc handling sit above the home
			// screen; only pop for screens that did not consume it.
			if m.router.Depth() > 1 {
				if _, ok := m.router.Active().(escHandler); !ok {
					return m, func() tea.Msg { return router.PopScreenMsg{} }
				}
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// escHandler marks screens that consume the escape key themselves.
type escHandler interface {
	HandlesEscape() bool
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.home.Streak(), m.home.Due(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok && hp.KeyHints() != nil {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
