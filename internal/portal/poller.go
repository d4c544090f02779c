package portal

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// PollState is the poller's lifecycle state.
type PollState int

const (
	// PollIdle: never started, or stopped for good.
	PollIdle PollState = iota
	// PollPolling: recurring checks are scheduled.
	PollPolling
	// PollPaused: the view is hidden; the timer is cancelled until Resume.
	PollPaused
)

func (s PollState) String() string {
	switch s {
	case PollPolling:
		return "polling"
	case PollPaused:
		return "paused"
	default:
		return "idle"
	}
}

// IDFetcher returns the authoritative set of current document identifiers.
type IDFetcher func(ctx context.Context) ([]string, error)

// Notifier receives the count of newly approved documents after a check
// that grew the identifier set. Injected at construction so the poller
// never reaches into rendering code.
type Notifier func(newCount int)

// Poller periodically re-fetches the listing identifiers and announces
// growth. Check failures are logged and swallowed; a transient blip must
// not disturb the user or the schedule. Start, Pause, Resume and Stop may
// be called from the UI loop; the ticking goroutine only ever calls Check.
type Poller struct {
	fetch    IDFetcher
	notify   Notifier
	interval time.Duration
	logger   *zap.Logger

	mu       sync.Mutex
	state    PollState
	lastSeen map[string]struct{}
	primed   bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewPoller builds a poller; notify may be nil when the caller only wants
// the refresh side effect of Check.
func NewPoller(fetch IDFetcher, notify Notifier, interval time.Duration, logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{
		fetch:    fetch,
		notify:   notify,
		interval: interval,
		logger:   logger,
		state:    PollIdle,
	}
}

// State returns the current lifecycle state.
func (p *Poller) State() PollState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SeenCount returns the size of the last recorded identifier set.
func (p *Poller) SeenCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.lastSeen)
}

// Start moves Idle -> Polling: one immediate check, then recurring checks
// every interval. Starting in any other state is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.state != PollIdle {
		p.mu.Unlock()
		return
	}
	p.state = PollPolling
	p.mu.Unlock()

	p.Check(ctx)
	p.schedule(ctx)
}

// Pause moves Polling -> Paused and cancels the recurring timer. Called
// when the view is hidden.
func (p *Poller) Pause() {
	p.mu.Lock()
	if p.state != PollPolling {
		p.mu.Unlock()
		return
	}
	p.state = PollPaused
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	stopTicker(cancel, done)
}

// Resume moves Paused -> Polling: one immediate check, then rescheduling.
func (p *Poller) Resume(ctx context.Context) {
	p.mu.Lock()
	if p.state != PollPaused {
		p.mu.Unlock()
		return
	}
	p.state = PollPolling
	p.mu.Unlock()

	p.Check(ctx)
	p.schedule(ctx)
}

// Stop cancels any active timer and returns to Idle. Terminal for the
// view's lifetime; safe to call from any state, repeatedly.
func (p *Poller) Stop() {
	p.mu.Lock()
	p.state = PollIdle
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	stopTicker(cancel, done)
}

// Check performs one fetch-and-diff. The recorded set is replaced after
// every successful fetch, change or not, and always after the comparison
// that uses it. The first successful check only primes the set.
func (p *Poller) Check(ctx context.Context) {
	ids, err := p.fetch(ctx)
	if err != nil {
		p.logger.Debug("poll check failed", zap.Error(err))
		return
	}

	current := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		current[id] = struct{}{}
	}

	p.mu.Lock()
	grew := p.primed && len(current) > len(p.lastSeen)
	delta := len(current) - len(p.lastSeen)
	p.lastSeen = current
	p.primed = true
	notify := p.notify
	p.mu.Unlock()

	if grew && notify != nil {
		notify(delta)
	}
}

func (p *Poller) schedule(ctx context.Context) {
	tickCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.mu.Lock()
	if p.state != PollPolling {
		// Stopped or paused between the immediate check and here.
		p.mu.Unlock()
		cancel()
		close(done)
		return
	}
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-tickCtx.Done():
				return
			case <-ticker.C:
				p.Check(tickCtx)
			}
		}
	}()
}

func stopTicker(cancel context.CancelFunc, done chan struct{}) {
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}
