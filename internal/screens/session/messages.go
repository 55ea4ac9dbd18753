package session

import (
	"time"

	"github.com/aslanbek/kazlearn/internal/practice"
)

// startedMsg carries the fetched word batch (or the start failure)
// back to the update loop, which installs it into the controller.
type startedMsg struct {
	Session *practice.Session
	Err     error
}

// timerTickMsg is sent every second to refresh the elapsed display.
type timerTickMsg time.Time
