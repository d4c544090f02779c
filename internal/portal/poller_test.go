package portal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// scriptedFetch returns each response once, repeating the last forever.
type scriptedFetch struct {
	mu        sync.Mutex
	responses [][]string
	errs      []error
	calls     int
}

func (s *scriptedFetch) fetch(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	return s.responses[i], nil
}

type notifyRecorder struct {
	mu     sync.Mutex
	counts []int
}

func (n *notifyRecorder) notify(count int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.counts = append(n.counts, count)
}

func (n *notifyRecorder) all() []int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]int(nil), n.counts...)
}

func TestCheckPrimesWithoutNotifying(t *testing.T) {
	script := &scriptedFetch{responses: [][]string{{"1.1", "1.2", "1.3"}}}
	rec := &notifyRecorder{}
	p := NewPoller(script.fetch, rec.notify, time.Hour, nil)

	p.Check(context.Background())
	assert.Empty(t, rec.all(), "first successful check only primes the set")
	assert.Equal(t, 3, p.SeenCount())
}

func TestCheckNotifiesOnGrowth(t *testing.T) {
	script := &scriptedFetch{responses: [][]string{
		{"1.1", "1.2", "1.3"},
		{"1.1", "1.2", "1.3"},
		{"1.1", "1.2", "1.3", "1.4"},
	}}
	rec := &notifyRecorder{}
	p := NewPoller(script.fetch, rec.notify, time.Hour, nil)

	ctx := context.Background()
	p.Check(ctx)
	p.Check(ctx) // unchanged set, no notification
	p.Check(ctx)

	require.Equal(t, []int{1}, rec.all())
	assert.Equal(t, 4, p.SeenCount())
}

func TestCheckShrinkReplacesSetSilently(t *testing.T) {
	script := &scriptedFetch{responses: [][]string{
		{"1.1", "1.2", "1.3"},
		{"1.1", "1.2"},
		{"1.1", "1.2", "1.3"},
	}}
	rec := &notifyRecorder{}
	p := NewPoller(script.fetch, rec.notify, time.Hour, nil)

	ctx := context.Background()
	p.Check(ctx)
	p.Check(ctx)
	assert.Empty(t, rec.all(), "shrink is not announced")
	assert.Equal(t, 2, p.SeenCount())

	// The recovered item counts as growth against the shrunken baseline.
	p.Check(ctx)
	assert.Equal(t, []int{1}, rec.all())
}

func TestCheckErrorLeavesStateUntouched(t *testing.T) {
	script := &scriptedFetch{
		responses: [][]string{{"1.1", "1.2"}, nil, {"1.1", "1.2", "1.3"}},
		errs:      []error{nil, errors.New("network blip")},
	}
	rec := &notifyRecorder{}
	p := NewPoller(script.fetch, rec.notify, time.Hour, nil)

	ctx := context.Background()
	p.Check(ctx)
	p.Check(ctx) // fails, swallowed
	assert.Equal(t, 2, p.SeenCount())

	p.Check(ctx)
	assert.Equal(t, []int{1}, rec.all())
}

func TestLifecycleTransitions(t *testing.T) {
	script := &scriptedFetch{responses: [][]string{{"1.1"}}}
	p := NewPoller(script.fetch, nil, time.Hour, nil)
	ctx := context.Background()

	assert.Equal(t, PollIdle, p.State())

	p.Start(ctx)
	assert.Equal(t, PollPolling, p.State())

	p.Start(ctx) // no-op when already polling
	assert.Equal(t, PollPolling, p.State())

	p.Pause()
	assert.Equal(t, PollPaused, p.State())
	p.Pause() // no-op when already paused
	assert.Equal(t, PollPaused, p.State())

	p.Resume(ctx)
	assert.Equal(t, PollPolling, p.State())

	p.Stop()
	assert.Equal(t, PollIdle, p.State())
	p.Stop() // safe to repeat
	assert.Equal(t, PollIdle, p.State())
}

func TestResumeChecksImmediately(t *testing.T) {
	script := &scriptedFetch{responses: [][]string{
		{"1.1"},
		{"1.1", "1.2"},
	}}
	rec := &notifyRecorder{}
	p := NewPoller(script.fetch, rec.notify, time.Hour, nil)
	ctx := context.Background()

	p.Start(ctx)
	p.Pause()
	p.Resume(ctx)
	p.Stop()

	assert.Equal(t, []int{1}, rec.all(), "resume runs a check without waiting for the timer")
}

func TestStopHaltsTicker(t *testing.T) {
	script := &scriptedFetch{responses: [][]string{{"1.1"}}}
	p := NewPoller(script.fetch, nil, 5*time.Millisecond, nil)
	ctx := context.Background()

	p.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	script.mu.Lock()
	after := script.calls
	script.mu.Unlock()
	time.Sleep(20 * time.Millisecond)
	script.mu.Lock()
	assert.Equal(t, after, script.calls, "no checks after Stop")
	script.mu.Unlock()
}
