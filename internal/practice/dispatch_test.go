package practice

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherRunsTasks(t *testing.T) {
	d := NewDispatcher()
	var ran atomic.Int32

	for i := 0; i < 5; i++ {
		assert.True(t, d.Go(func() { ran.Add(1) }))
	}
	d.Wait()
	assert.Equal(t, int32(5), ran.Load())
}

func TestDispatcherRejectsAfterClose(t *testing.T) {
	d := NewDispatcher()
	started := make(chan struct{})
	release := make(chan struct{})
	var ran atomic.Int32

	assert.True(t, d.Go(func() {
		close(started)
		<-release
		ran.Add(1)
	}))
	<-started

	d.Close()
	assert.False(t, d.Go(func() { ran.Add(1) }), "no new tasks after Close")

	// The already-dispatched task still runs to completion.
	close(release)
	d.Wait()
	assert.Equal(t, int32(1), ran.Load())
}
