package loop

import (
	"sync"
	"time"
)

// Ticker posts each tick as a one-shot callback and schedules the next one
// only after the current tick returns. No goroutine sleeps between ticks.
type Ticker struct {
	interval time.Duration

	mu      sync.Mutex
	tick    func()
	pending *time.Timer
	stopped bool
	// gen identifies the current chain; a callback from an earlier Start
	// finds it changed and exits.
	gen uint64
}

func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// Start posts the first tick immediately.
func (t *Ticker) Start(tick func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tick = tick
	t.stopped = false
	t.gen++
	t.post(0)
}

// post schedules the next tick of the current chain. Callers hold mu.
func (t *Ticker) post(d time.Duration) {
	gen := t.gen
	t.pending = time.AfterFunc(d, func() { t.run(gen) })
}

func (t *Ticker) run(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || gen != t.gen {
		return
	}
	t.tick()
	t.post(t.interval)
}

// Stop cancels the pending tick. A tick already running holds the lock, so
// Stop returns only after it has finished.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}
