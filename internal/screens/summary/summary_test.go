package summary

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aslanbek/kazlearn/internal/practice"
	"github.com/aslanbek/kazlearn/internal/router"
	"github.com/aslanbek/kazlearn/internal/store"
)

func testSummary() (*practice.Summary, []practice.Word) {
	words := []practice.Word{
		{ID: 1, Prompt: "алма", Answer: "apple"},
		{ID: 2, Prompt: "нан", Answer: "bread"},
	}
	sum := &practice.Summary{
		SessionID:    42,
		SessionType:  practice.SessionTypePractice,
		CorrectCount: 1,
		TotalCount:   2,
		AccuracyPct:  50,
		DurationSec:  75,
		Results: []practice.Result{
			{WordID: 1, Correct: true, Submitted: "apple", ResponseTimeMs: 900},
			{WordID: 2, Correct: false, Submitted: practice.SkippedAnswer},
		},
	}
	return sum, words
}

func TestSummaryScreen_View(t *testing.T) {
	sum, words := testSummary()
	s := New(sum, words, nil)

	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
}

func TestSummaryScreen_EnterNavigatesHome(t *testing.T) {
	sum, words := testSummary()
	s := New(sum, words, nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on enter")
	}
}

func TestSummaryScreen_InitRecordsHistory(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	sum, words := testSummary()
	s := New(sum, words, st)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	msg := cmd()
	saved, ok := msg.(savedMsg)
	if !ok {
		t.Fatalf("expected savedMsg, got %T", msg)
	}
	if saved.Err != nil {
		t.Fatalf("save failed: %v", saved.Err)
	}

	sessions, err := st.RecentSessions(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	if sessions[0].RemoteID != 42 {
		t.Errorf("remote id = %d, want 42", sessions[0].RemoteID)
	}
}

func TestSummaryScreen_NilHistorySkipsSave(t *testing.T) {
	sum, words := testSummary()
	s := New(sum, words, nil)
	if s.Init() != nil {
		t.Error("expected no command without a history store")
	}
}
