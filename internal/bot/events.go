package bot

import (
	"sync"
	"time"
)

type eventKind int

const (
	eventAdvance eventKind = iota
	eventAutoplay
	eventAudioDone
	eventTick
)

// event is posted to the bot loop by timers and playbacks. The session id
// and question index let the loop drop events that outlived their question.
type event struct {
	kind      eventKind
	userID    int64
	sessionID string
	question  int
	err       error
}

type eventPoster interface {
	post(ev event)
	offer(ev event)
	after(delay time.Duration, ev event)
}

type dispatcher struct {
	events chan event
	done   chan struct{}
	once   sync.Once
}

func newDispatcher() *dispatcher {
	return &dispatcher{
		events: make(chan event, 64),
		done:   make(chan struct{}),
	}
}

// post blocks until the loop takes the event or stops.
func (d *dispatcher) post(ev event) {
	select {
	case d.events <- ev:
	case <-d.done:
	}
}

// offer drops the event when the loop is busy. Ticks use it: the loop stops
// tickers synchronously, so a blocking send from a tick would deadlock.
func (d *dispatcher) offer(ev event) {
	select {
	case d.events <- ev:
	default:
	}
}

func (d *dispatcher) after(delay time.Duration, ev event) {
	time.AfterFunc(delay, func() { d.post(ev) })
}

func (d *dispatcher) close() {
	d.once.Do(func() { close(d.done) })
}
