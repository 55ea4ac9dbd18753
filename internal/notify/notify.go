// Package notify provides Notifier implementations for surfacing
// background submission results without interrupting practice flow.
package notify

import (
	"sync"

	"go.uber.org/zap"

	"github.com/aslanbek/kazlearn/internal/practice"
)

// LogNotifier writes notifications to the application log. The TUI
// owns the terminal, so background noise goes to the log file.
type LogNotifier struct {
	log *zap.Logger
}

var _ practice.Notifier = (*LogNotifier)(nil)

// NewLogNotifier returns a Notifier backed by the given logger.
func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(msg string) {
	n.log.Info(msg)
}

func (n *LogNotifier) Error(msg string) {
	n.log.Warn(msg)
}

// Latest keeps the most recent notification so a screen can render it
// on its next frame. Safe for use from dispatcher goroutines.
type Latest struct {
	mu      sync.Mutex
	msg     string
	isError bool
	next    practice.Notifier
}

var _ practice.Notifier = (*Latest)(nil)

// NewLatest returns a Latest that also forwards to next when non-nil.
func NewLatest(next practice.Notifier) *Latest {
	return &Latest{next: next}
}

func (l *Latest) Success(msg string) {
	l.set(msg, false)
	if l.next != nil {
		l.next.Success(msg)
	}
}

func (l *Latest) Error(msg string) {
	l.set(msg, true)
	if l.next != nil {
		l.next.Error(msg)
	}
}

func (l *Latest) set(msg string, isError bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msg = msg
	l.isError = isError
}

// Take returns and clears the most recent notification. The second
// return reports whether it was an error.
func (l *Latest) Take() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg, isErr := l.msg, l.isError
	l.msg, l.isError = "", false
	return msg, isErr
}
