package quiz

import (
	"sync"
	"time"
)

// Ticker calls a function once per interval until stopped.
type Ticker struct {
	stop chan struct{}
	once sync.Once
	done chan struct{}
}

func StartTicker(interval time.Duration, fn func(time.Time)) *Ticker {
	t := &Ticker{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer close(t.done)
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case now := <-ticker.C:
				fn(now)
			}
		}
	}()

	return t
}

// Stop halts the ticker and waits for a running callback to return. Safe to
// call more than once.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.stop) })
	<-t.done
}
