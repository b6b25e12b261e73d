package loop

import (
	"sync"
	"sync/atomic"
	"time"
)

// Thread runs ticks on one dedicated goroutine and sleeps away whatever is
// left of the interval after each tick. Stop is cooperative: the flag is
// checked before every tick and a running tick always completes.
type Thread struct {
	interval time.Duration

	once    sync.Once
	stopped atomic.Bool
	quit    chan struct{}
	done    chan struct{}
}

func NewThread(interval time.Duration) *Thread {
	return &Thread{
		interval: interval,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the loop. It must be called at most once.
func (t *Thread) Start(tick func()) {
	go t.run(tick)
}

func (t *Thread) run(tick func()) {
	defer close(t.done)

	timer := time.NewTimer(t.interval)
	timer.Stop()
	defer timer.Stop()

	for !t.stopped.Load() {
		start := time.Now()
		tick()

		wait := t.interval - time.Since(start)
		if wait <= 0 {
			continue
		}
		timer.Reset(wait)
		select {
		case <-timer.C:
		case <-t.quit:
			return
		}
	}
}

// Stop raises the stop flag and waits for the loop goroutine to exit. It is
// safe to call more than once, but only after Start.
func (t *Thread) Stop() {
	t.once.Do(func() {
		t.stopped.Store(true)
		close(t.quit)
	})
	<-t.done
}
