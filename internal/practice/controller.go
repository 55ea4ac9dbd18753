package practice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrNoWords is returned by Start when the backend issues an empty word
// batch. The attempt is terminal; the caller must start a fresh one.
var ErrNoWords = errors.New("no words available for practice")

// Phase is the controller's position in the session state machine.
type Phase int

const (
	PhaseIdle     Phase = iota // not started
	PhaseLoading               // start call in flight
	PhaseActive                // awaiting an answer for the current word
	PhaseRevealed              // showing feedback for the current word
	PhaseFinished              // summary emitted, terminal
	PhaseFailed                // start failed, terminal
)

// Controller drives one practice attempt start-to-finish. All state
// transitions happen on a single logical thread of control (the UI
// event loop); the only blocking operation is Start. Answer and finish
// calls are dispatched in the background and never awaited.
//
// A Controller is single-use: a fresh attempt requires a fresh
// Controller.
type Controller struct {
	svc      SessionService
	clock    Clock
	notifier Notifier
	dispatch *Dispatcher

	phase       Phase
	session     *Session
	sessionType string
	current     int
	results     []Result
	paused      bool

	startedAt         time.Time
	questionStartedAt time.Time
}

// NewController creates a Controller with explicit collaborators.
// A nil clock falls back to the system clock; a nil notifier discards
// messages.
func NewController(svc SessionService, clock Clock, notifier Notifier, dispatch *Dispatcher) *Controller {
	if clock == nil {
		clock = systemClock{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if dispatch == nil {
		dispatch = NewDispatcher()
	}
	return &Controller{
		svc:      svc,
		clock:    clock,
		notifier: notifier,
		dispatch: dispatch,
		phase:    PhaseIdle,
	}
}

// Begin moves an idle controller to Loading and reports whether the
// caller now owns the fetch. It is guarded: a second Begin returns
// false, so a duplicate trigger cannot create a second backend session.
func (c *Controller) Begin() bool {
	if c.phase != PhaseIdle {
		return false
	}
	c.phase = PhaseLoading
	return true
}

// Activate installs the outcome of the fetch that Begin authorized and
// activates the first word. A fetch error or an empty batch is terminal
// for this attempt. The word batch is fetched off the owning goroutine,
// but Activate must run on it: the controller is single-owner and is
// never touched from two goroutines at once.
func (c *Controller) Activate(sess *Session, opts StartOptions, fetchErr error) error {
	if c.phase != PhaseLoading {
		return nil
	}
	if fetchErr != nil {
		c.phase = PhaseFailed
		return fmt.Errorf("start session: %w", fetchErr)
	}
	if sess == nil || len(sess.Words) == 0 {
		c.phase = PhaseFailed
		return ErrNoWords
	}

	c.session = sess
	c.sessionType = sess.Type
	if c.sessionType == "" {
		c.sessionType = opts.SessionType
	}
	c.current = 0
	c.results = nil

	now := c.clock.Now()
	c.startedAt = now
	c.questionStartedAt = now
	c.phase = PhaseActive
	return nil
}

// Start fetches the word batch and activates the first word in one
// blocking call. Callers with an event loop should instead Begin,
// fetch on a worker, and Activate back on the owning goroutine.
func (c *Controller) Start(ctx context.Context, opts StartOptions) error {
	if !c.Begin() {
		return nil
	}
	sess, err := c.svc.Start(ctx, opts)
	return c.Activate(sess, opts, err)
}

// SubmitAnswer grades the raw input against the current word and
// reveals the outcome. The result is returned immediately so feedback
// never waits on the network; the backend call happens in the
// background. Empty input (after trimming) is rejected without a state
// change.
func (c *Controller) SubmitAnswer(raw string) (Result, bool) {
	if c.phase != PhaseActive {
		return Result{}, false
	}
	if strings.TrimSpace(raw) == "" {
		return Result{}, false
	}

	word := c.session.Words[c.current]
	res := Result{
		WordID:         word.ID,
		Correct:        Grade(raw, word.Answer),
		Submitted:      raw,
		ResponseTimeMs: c.responseTimeMs(),
	}
	c.record(word, res)
	return res, true
}

// Skip records the current word as answered incorrectly with the
// skipped sentinel. Unlike SubmitAnswer it has no input precondition.
func (c *Controller) Skip() (Result, bool) {
	if c.phase != PhaseActive {
		return Result{}, false
	}

	word := c.session.Words[c.current]
	res := Result{
		WordID:         word.ID,
		Correct:        false,
		Submitted:      SkippedAnswer,
		ResponseTimeMs: c.responseTimeMs(),
	}
	c.record(word, res)
	return res, true
}

// Advance moves past the revealed word. For a non-final word it
// activates the next one and restarts the question timer. For the final
// word it finalizes: the summary is computed from local results, the
// finish call is dispatched best-effort, and the controller becomes
// terminal. Returns the summary only on finalization.
func (c *Controller) Advance() *Summary {
	if c.phase != PhaseRevealed {
		return nil
	}

	if c.current+1 < len(c.session.Words) {
		c.current++
		c.questionStartedAt = c.clock.Now()
		c.phase = PhaseActive
		return nil
	}

	sum := c.buildSummary()
	c.current = len(c.session.Words)
	c.phase = PhaseFinished

	sessionID := c.session.ID
	duration := sum.DurationSec
	c.dispatch.Go(func() {
		if err := c.svc.Finish(context.Background(), sessionID, duration); err != nil {
			c.notifier.Error("Could not save session results: " + err.Error())
		}
	})

	return &sum
}

// TogglePause flips the presentation-only pause flag. The question
// timer keeps running while paused, so a pause mid-word inflates that
// word's response time.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
}

// Phase returns the controller's current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Paused reports the presentation pause flag.
func (c *Controller) Paused() bool { return c.paused }

// CurrentIndex returns the cursor into the word batch. Equal to the
// batch length once the session has finished.
func (c *Controller) CurrentIndex() int { return c.current }

// WordCount returns the size of the word batch, 0 before Start.
func (c *Controller) WordCount() int {
	if c.session == nil {
		return 0
	}
	return len(c.session.Words)
}

// Words returns a copy of the loaded word batch, nil before Start.
func (c *Controller) Words() []Word {
	if c.session == nil {
		return nil
	}
	out := make([]Word, len(c.session.Words))
	copy(out, c.session.Words)
	return out
}

// CurrentWord returns the word being presented, or nil outside the
// Active and Revealed phases.
func (c *Controller) CurrentWord() *Word {
	if c.session == nil || c.current >= len(c.session.Words) {
		return nil
	}
	if c.phase != PhaseActive && c.phase != PhaseRevealed {
		return nil
	}
	w := c.session.Words[c.current]
	return &w
}

// LastResult returns the most recently recorded result, or nil if no
// word has been answered yet.
func (c *Controller) LastResult() *Result {
	if len(c.results) == 0 {
		return nil
	}
	r := c.results[len(c.results)-1]
	return &r
}

// Results returns a copy of the recorded results in presentation order.
func (c *Controller) Results() []Result {
	out := make([]Result, len(c.results))
	copy(out, c.results)
	return out
}

// SessionID returns the backend-issued session id, 0 before Start.
func (c *Controller) SessionID() int64 {
	if c.session == nil {
		return 0
	}
	return c.session.ID
}

// record appends the result, dispatches the backend submission, and
// transitions to Revealed. The submission failure path only surfaces a
// notification; the local transition already happened and is never
// rolled back.
func (c *Controller) record(word Word, res Result) {
	c.results = append(c.results, res)
	c.phase = PhaseRevealed

	sessionID := c.session.ID
	sub := Submission{
		WordID:         res.WordID,
		Correct:        res.Correct,
		QuestionType:   c.sessionType,
		UserAnswer:     res.Submitted,
		CorrectAnswer:  word.Answer,
		ResponseTimeMs: res.ResponseTimeMs,
	}
	c.dispatch.Go(func() {
		if err := c.svc.SubmitAnswer(context.Background(), sessionID, sub); err != nil {
			c.notifier.Error("Could not record answer: " + err.Error())
		}
	})
}

// responseTimeMs measures time since the current word was presented,
// clamped to zero for non-monotonic clocks.
func (c *Controller) responseTimeMs() int64 {
	ms := c.clock.Now().Sub(c.questionStartedAt).Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return ms
}

func (c *Controller) buildSummary() Summary {
	correct := 0
	for _, r := range c.results {
		if r.Correct {
			correct++
		}
	}
	total := len(c.results)

	pct := 0
	if total > 0 {
		pct = int(math.Round(100 * float64(correct) / float64(total)))
	}

	duration := int(c.clock.Now().Sub(c.startedAt).Seconds())
	if duration < 0 {
		duration = 0
	}

	return Summary{
		SessionID:    c.session.ID,
		SessionType:  c.sessionType,
		CorrectCount: correct,
		TotalCount:   total,
		AccuracyPct:  pct,
		DurationSec:  duration,
		Results:      c.Results(),
	}
}
