package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestTakeClearsMessage(t *testing.T) {
	l := NewLatest(nil)

	l.Error("answer submission failed")
	msg, isErr := l.Take()
	assert.Equal(t, "answer submission failed", msg)
	assert.True(t, isErr)

	msg, isErr = l.Take()
	assert.Empty(t, msg)
	assert.False(t, isErr)
}

func TestLatestKeepsMostRecent(t *testing.T) {
	l := NewLatest(nil)

	l.Success("first")
	l.Error("second")

	msg, isErr := l.Take()
	assert.Equal(t, "second", msg)
	assert.True(t, isErr)
}

func TestLatestForwards(t *testing.T) {
	var got []string
	next := notifierFunc{
		success: func(m string) { got = append(got, "ok:"+m) },
		err:     func(m string) { got = append(got, "err:"+m) },
	}

	l := NewLatest(next)
	l.Success("saved")
	l.Error("lost")

	assert.Equal(t, []string{"ok:saved", "err:lost"}, got)
}

type notifierFunc struct {
	success func(string)
	err     func(string)
}

func (n notifierFunc) Success(msg string) { n.success(msg) }
func (n notifierFunc) Error(msg string)   { n.err(msg) }
