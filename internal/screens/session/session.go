package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aslanbek/kazlearn/internal/notify"
	"github.com/aslanbek/kazlearn/internal/practice"
	"github.com/aslanbek/kazlearn/internal/router"
	"github.com/aslanbek/kazlearn/internal/screen"
	"github.com/aslanbek/kazlearn/internal/screens/summary"
	"github.com/aslanbek/kazlearn/internal/store"
	"github.com/aslanbek/kazlearn/internal/ui/components"
	"github.com/aslanbek/kazlearn/internal/ui/layout"
)

// SessionScreen drives one practice run from loading through the
// per-word answer/reveal loop to the summary hand-off.
type SessionScreen struct {
	ctrl    *practice.Controller
	svc     practice.SessionService
	opts    practice.StartOptions
	hist    *store.Store
	notices *notify.Latest

	input       components.TextInput
	elapsed     time.Duration
	startedAt   time.Time
	showQuit    bool
	notice      string
	noticeIsErr bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen. The controller's background submissions
// report through notices; hist receives the finished summary and may be
// nil.
func New(svc practice.SessionService, opts practice.StartOptions, notices *notify.Latest, hist *store.Store) *SessionScreen {
	ctrl := practice.NewController(svc, practice.SystemClock(), notices, practice.NewDispatcher())
	return &SessionScreen{
		ctrl:    ctrl,
		svc:     svc,
		opts:    opts,
		hist:    hist,
		notices: notices,
		input:   components.NewTextInput("Type the translation...", 60),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	s.ctrl.Begin()
	return tea.Batch(
		s.startSession(),
		s.input.Init(),
	)
}

// HandlesEscape reports that escape drives the quit confirm dialog
// instead of router navigation.
func (s *SessionScreen) HandlesEscape() bool { return true }

func (s *SessionScreen) Title() string {
	if s.opts.SessionType == practice.SessionTypeReview {
		return "Review"
	}
	return "Practice"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.ctrl.Phase() {
	case practice.PhaseRevealed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next word"},
		}
	case practice.PhaseActive:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+S", Description: "Skip"},
			{Key: "Ctrl+P", Description: "Pause"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return nil
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showQuit {
		return renderQuitConfirm(width)
	}
	switch s.ctrl.Phase() {
	case practice.PhaseIdle, practice.PhaseLoading:
		return renderLoading(width)
	case practice.PhaseRevealed:
		return s.renderReveal(width)
	case practice.PhaseActive:
		return s.renderQuestion(width)
	}
	return ""
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.ctrl.Phase() == practice.PhaseActive && !s.showQuit {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// startSession fetches the word batch off the UI goroutine. The
// controller itself is single-owner, so the command never touches it;
// the batch rides back in startedMsg and handleStarted installs it on
// the update loop.
func (s *SessionScreen) startSession() tea.Cmd {
	svc, opts := s.svc, s.opts
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		sess, err := svc.Start(ctx, opts)
		return startedMsg{Session: sess, Err: err}
	}
}

func (s *SessionScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if err := s.ctrl.Activate(msg.Session, s.opts, msg.Err); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.startedAt = time.Now()
	return s, tickCmd()
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.ctrl.Phase() == practice.PhaseFinished || s.ctrl.Phase() == practice.PhaseFailed {
		return s, nil
	}
	// The elapsed clock keeps running while paused. Pause only hides
	// the question.
	s.elapsed = time.Since(s.startedAt)
	if s.notices != nil {
		if msg, isErr := s.notices.Take(); msg != "" {
			s.notice, s.noticeIsErr = msg, isErr
		}
	}
	return s, tickCmd()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showQuit = false
		}
		return s, nil
	}

	switch s.ctrl.Phase() {
	case practice.PhaseRevealed:
		if key == "enter" || key == " " {
			return s.advance()
		}
		return s, nil

	case practice.PhaseActive:
		if s.ctrl.Paused() {
			if key == "ctrl+p" || key == "esc" {
				s.ctrl.TogglePause()
			}
			return s, nil
		}
		switch key {
		case "esc":
			s.showQuit = true
			return s, nil
		case "ctrl+p":
			s.ctrl.TogglePause()
			return s, nil
		case "ctrl+s":
			s.ctrl.Skip()
			return s, nil
		case "enter":
			if _, ok := s.ctrl.SubmitAnswer(s.input.Value()); ok {
				return s, nil
			}
			return s, nil
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// advance moves to the next word, or swaps in the summary screen when
// the batch is exhausted.
func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	words := s.ctrl.Words()
	sum := s.ctrl.Advance()
	if sum == nil {
		s.input = components.NewTextInput("Type the translation...", 60)
		return s, s.input.Init()
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(sum, words, s.hist),
		}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
