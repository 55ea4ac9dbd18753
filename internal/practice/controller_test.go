package practice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService implements SessionService with scriptable failures.
type fakeService struct {
	mu          sync.Mutex
	session     *Session
	startErr    error
	submitErr   error
	finishErr   error
	startCalls  int
	submissions []Submission
	finishes    []int
}

func (f *fakeService) Start(_ context.Context, _ StartOptions) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.startCalls++
	if f.startErr != nil {
		return nil, f.startErr
	}
	return f.session, nil
}

func (f *fakeService) SubmitAnswer(_ context.Context, _ int64, sub Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submissions = append(f.submissions, sub)
	return f.submitErr
}

func (f *fakeService) Finish(_ context.Context, _ int64, durationSec int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finishes = append(f.finishes, durationSec)
	return f.finishErr
}

func (f *fakeService) recorded() []Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Submission, len(f.submissions))
	copy(out, f.submissions)
	return out
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

// fakeNotifier collects messages; safe for concurrent use since
// dispatched tasks call it from their own goroutines.
type fakeNotifier struct {
	mu       sync.Mutex
	errors   []string
	successs []string
}

func (f *fakeNotifier) Success(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.successs = append(f.successs, msg)
}

func (f *fakeNotifier) Error(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, msg)
}

func (f *fakeNotifier) errorCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errors)
}

func threeWords() *Session {
	return &Session{
		ID:   42,
		Type: SessionTypePractice,
		Words: []Word{
			{ID: 1, Prompt: "алма", Answer: "apple"},
			{ID: 2, Prompt: "нан", Answer: "bread"},
			{ID: 3, Prompt: "су", Answer: "water"},
		},
		TotalWords: 3,
	}
}

func newTestController(svc *fakeService) (*Controller, *fakeClock, *fakeNotifier, *Dispatcher) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	notifier := &fakeNotifier{}
	dispatch := NewDispatcher()
	return NewController(svc, clock, notifier, dispatch), clock, notifier, dispatch
}

func TestStartActivatesFirstWord(t *testing.T) {
	svc := &fakeService{session: threeWords()}
	c, _, _, _ := newTestController(svc)

	require.NoError(t, c.Start(context.Background(), StartOptions{WordCount: 3}))

	assert.Equal(t, PhaseActive, c.Phase())
	assert.Equal(t, 0, c.CurrentIndex())
	assert.Equal(t, 3, c.WordCount())
	assert.Equal(t, int64(42), c.SessionID())
	require.NotNil(t, c.CurrentWord())
	assert.Equal(t, "алма", c.CurrentWord().Prompt)
}

func TestStartIsGuardedAgainstDuplicateTriggers(t *testing.T) {
	svc := &fakeService{session: threeWords()}
	c, _, _, _ := newTestController(svc)

	require.NoError(t, c.Start(context.Background(), StartOptions{}))
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	assert.Equal(t, 1, svc.startCalls, "second trigger must not create a second session")
}

func TestStartFailureIsTerminal(t *testing.T) {
	svc := &fakeService{startErr: errors.New("backend unreachable")}
	c, _, _, _ := newTestController(svc)

	err := c.Start(context.Background(), StartOptions{})
	require.Error(t, err)
	assert.Equal(t, PhaseFailed, c.Phase())

	// A failed controller stays failed; no retry happens implicitly.
	require.NoError(t, c.Start(context.Background(), StartOptions{}))
	assert.Equal(t, PhaseFailed, c.Phase())
	assert.Equal(t, 1, svc.startCalls)
}

func TestStartWithEmptyBatchFails(t *testing.T) {
	svc := &fakeService{session: &Session{ID: 7}}
	c, _, _, _ := newTestController(svc)

	err := c.Start(context.Background(), StartOptions{})
	require.ErrorIs(t, err, ErrNoWords)
	assert.Equal(t, PhaseFailed, c.Phase())
}

func TestBeginClaimsTheFetchExactlyOnce(t *testing.T) {
	c, _, _, _ := newTestController(&fakeService{})

	assert.True(t, c.Begin())
	assert.Equal(t, PhaseLoading, c.Phase())
	assert.False(t, c.Begin(), "second Begin must not claim the fetch again")
}

func TestActivateInstallsFetchedBatch(t *testing.T) {
	c, _, _, _ := newTestController(&fakeService{})

	require.True(t, c.Begin())
	require.NoError(t, c.Activate(threeWords(), StartOptions{}, nil))

	assert.Equal(t, PhaseActive, c.Phase())
	assert.Equal(t, int64(42), c.SessionID())
	require.NotNil(t, c.CurrentWord())
	assert.Equal(t, "алма", c.CurrentWord().Prompt)
}

func TestActivateWithoutBeginNoOps(t *testing.T) {
	c, _, _, _ := newTestController(&fakeService{})

	require.NoError(t, c.Activate(threeWords(), StartOptions{}, nil))
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Equal(t, 0, c.WordCount())
}

func TestActivateWithFetchErrorIsTerminal(t *testing.T) {
	c, _, _, _ := newTestController(&fakeService{})

	require.True(t, c.Begin())
	err := c.Activate(nil, StartOptions{}, errors.New("backend unreachable"))
	require.Error(t, err)
	assert.Equal(t, PhaseFailed, c.Phase())
}

func TestSubmitAnswerGradesAndReveals(t *testing.T) {
	svc := &fakeService{session: threeWords()}
	c, clock, _, dispatch := newTestController(svc)
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	clock.Advance(1500 * time.Millisecond)
	res, ok := c.SubmitAnswer(" Apple \n")
	require.True(t, ok)

	assert.True(t, res.Correct, "grading is case/whitespace-insensitive")
	assert.Equal(t, int64(1), res.WordID)
	assert.Equal(t, int64(1500), res.ResponseTimeMs)
	assert.Equal(t, PhaseRevealed, c.Phase())

	dispatch.Close()
	dispatch.Wait()
	subs := svc.recorded()
	require.Len(t, subs, 1)
	assert.True(t, subs[0].Correct)
	assert.Equal(t, "apple", subs[0].CorrectAnswer)
	assert.Equal(t, " Apple \n", subs[0].UserAnswer)
}

func TestSubmitAnswerRejectsBlankInput(t *testing.T) {
	svc := &fakeService{session: threeWords()}
	c, _, _, _ := newTestController(svc)
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	_, ok := c.SubmitAnswer("   \t ")
	assert.False(t, ok)
	assert.Equal(t, PhaseActive, c.Phase())
	assert.Empty(t, c.Results())
}

func TestSubmitAnswerNoOpsOutsideActivePhase(t *testing.T) {
	svc := &fakeService{session: threeWords()}
	c, _, _, _ := newTestController(svc)
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	_, ok := c.SubmitAnswer("apple")
	require.True(t, ok)

	// Double-submit from a duplicate UI event: defensive no-op.
	_, ok = c.SubmitAnswer("apple")
	assert.False(t, ok)
	assert.Len(t, c.Results(), 1)
}

func TestSkipAlwaysRecordsIncorrect(t *testing.T) {
	svc := &fakeService{session: threeWords()}
	c, _, _, _ := newTestController(svc)
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	res, ok := c.Skip()
	require.True(t, ok)
	assert.False(t, res.Correct)
	assert.Equal(t, SkippedAnswer, res.Submitted)
	assert.Equal(t, PhaseRevealed, c.Phase())
}

func TestAdvanceResetsQuestionTimer(t *testing.T) {
	svc := &fakeService{session: threeWords()}
	c, clock, _, _ := newTestController(svc)
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	clock.Advance(5 * time.Second)
	_, ok := c.SubmitAnswer("apple")
	require.True(t, ok)

	assert.Nil(t, c.Advance())
	assert.Equal(t, PhaseActive, c.Phase())
	assert.Equal(t, 1, c.CurrentIndex())

	clock.Advance(2 * time.Second)
	res, ok := c.SubmitAnswer("wrong")
	require.True(t, ok)
	assert.Equal(t, int64(2000), res.ResponseTimeMs, "timer restarts per word")
}

func TestAdvanceNoOpsOutsideRevealedPhase(t *testing.T) {
	svc := &fakeService{session: threeWords()}
	c, _, _, _ := newTestController(svc)
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	assert.Nil(t, c.Advance())
	assert.Equal(t, PhaseActive, c.Phase())
	assert.Equal(t, 0, c.CurrentIndex())
}

func TestMonotonicProgressInvariant(t *testing.T) {
	svc := &fakeService{session: threeWords()}
	c, _, _, _ := newTestController(svc)
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	for i := 0; i < 3; i++ {
		assert.Equal(t, i, c.CurrentIndex())
		assert.Len(t, c.Results(), i)
		_, ok := c.SubmitAnswer("whatever")
		require.True(t, ok)
		c.Advance()
	}

	assert.Equal(t, PhaseFinished, c.Phase())
	assert.Equal(t, 3, c.CurrentIndex())
	assert.Len(t, c.Results(), 3)
}

func TestEndToEndThreeWordSession(t *testing.T) {
	svc := &fakeService{session: threeWords()}
	c, clock, _, dispatch := newTestController(svc)
	require.NoError(t, c.Start(context.Background(), StartOptions{WordCount: 3}))

	// Word A: correct.
	clock.Advance(time.Second)
	_, ok := c.SubmitAnswer("apple")
	require.True(t, ok)
	require.Nil(t, c.Advance())

	// Word B: skipped.
	_, ok = c.Skip()
	require.True(t, ok)
	require.Nil(t, c.Advance())

	// Word C: wrong.
	clock.Advance(90 * time.Second)
	_, ok = c.SubmitAnswer("juice")
	require.True(t, ok)

	sum := c.Advance()
	require.NotNil(t, sum)
	assert.Equal(t, PhaseFinished, c.Phase())

	assert.Equal(t, 1, sum.CorrectCount)
	assert.Equal(t, 3, sum.TotalCount)
	assert.Equal(t, 33, sum.AccuracyPct, "round(100*1/3)")
	assert.Equal(t, 91, sum.DurationSec)

	require.Len(t, sum.Results, 3)
	assert.Equal(t, Result{WordID: 1, Correct: true, Submitted: "apple", ResponseTimeMs: 1000}, sum.Results[0])
	assert.Equal(t, int64(2), sum.Results[1].WordID)
	assert.False(t, sum.Results[1].Correct)
	assert.Equal(t, SkippedAnswer, sum.Results[1].Submitted)
	assert.False(t, sum.Results[2].Correct)

	dispatch.Close()
	dispatch.Wait()
	assert.Len(t, svc.recorded(), 3)
	assert.Equal(t, []int{91}, svc.finishes)
}

func TestSummaryArithmetic(t *testing.T) {
	svc := &fakeService{session: &Session{
		ID: 1,
		Words: []Word{
			{ID: 1, Answer: "a"}, {ID: 2, Answer: "b"},
			{ID: 3, Answer: "c"}, {ID: 4, Answer: "d"},
		},
	}}
	c, _, _, _ := newTestController(svc)
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	answers := []string{"a", "b", "nope", "d"}
	var sum *Summary
	for _, a := range answers {
		_, ok := c.SubmitAnswer(a)
		require.True(t, ok)
		sum = c.Advance()
	}

	require.NotNil(t, sum)
	assert.Equal(t, 3, sum.CorrectCount)
	assert.Equal(t, 4, sum.TotalCount)
	assert.Equal(t, 75, sum.AccuracyPct)
}

func TestSubmitFailureDoesNotBlockProgression(t *testing.T) {
	svc := &fakeService{session: threeWords(), submitErr: errors.New("500")}
	c, _, notifier, dispatch := newTestController(svc)
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	res, ok := c.SubmitAnswer("apple")
	require.True(t, ok)
	assert.True(t, res.Correct)
	assert.Equal(t, PhaseRevealed, c.Phase())

	assert.Nil(t, c.Advance())
	assert.Equal(t, PhaseActive, c.Phase())

	dispatch.Close()
	dispatch.Wait()
	assert.Equal(t, 1, notifier.errorCount(), "failure surfaces as a notification only")
	assert.Len(t, c.Results(), 1, "local results untouched by backend failure")
}

func TestFinishFailureDoesNotAlterSummary(t *testing.T) {
	svc := &fakeService{session: &Session{ID: 1, Words: []Word{{ID: 1, Answer: "a"}}}, finishErr: errors.New("timeout")}
	c, _, notifier, dispatch := newTestController(svc)
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	_, ok := c.SubmitAnswer("a")
	require.True(t, ok)
	sum := c.Advance()

	require.NotNil(t, sum)
	assert.Equal(t, PhaseFinished, c.Phase())
	assert.Equal(t, 100, sum.AccuracyPct)

	dispatch.Close()
	dispatch.Wait()
	assert.Equal(t, 1, notifier.errorCount())
}

func TestResponseTimeClampedToZero(t *testing.T) {
	svc := &fakeService{session: threeWords()}
	c, clock, _, _ := newTestController(svc)
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	clock.Advance(-10 * time.Second)
	res, ok := c.SubmitAnswer("apple")
	require.True(t, ok)
	assert.Equal(t, int64(0), res.ResponseTimeMs)
}

func TestTogglePauseIsCosmetic(t *testing.T) {
	svc := &fakeService{session: threeWords()}
	c, clock, _, _ := newTestController(svc)
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	c.TogglePause()
	assert.True(t, c.Paused())

	// The question timer keeps running while paused.
	clock.Advance(3 * time.Second)
	c.TogglePause()
	assert.False(t, c.Paused())

	res, ok := c.SubmitAnswer("apple")
	require.True(t, ok)
	assert.Equal(t, int64(3000), res.ResponseTimeMs)
}

func TestSubmissionsSurviveDispatcherSharedOwnership(t *testing.T) {
	// The dispatcher outlives the controller: tasks dispatched before
	// Close complete even when nothing references the controller anymore.
	svc := &fakeService{session: threeWords()}
	dispatch := NewDispatcher()
	c := NewController(svc, &fakeClock{now: time.Now()}, &fakeNotifier{}, dispatch)
	require.NoError(t, c.Start(context.Background(), StartOptions{}))

	_, ok := c.SubmitAnswer("apple")
	require.True(t, ok)
	c = nil
	_ = c

	dispatch.Close()
	dispatch.Wait()
	assert.Len(t, svc.recorded(), 1)
}
