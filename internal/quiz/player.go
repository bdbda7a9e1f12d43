package quiz

import "context"

// Player plays a media file. The returned channel yields exactly one value,
// nil when playback finished and an error when it failed, and is then closed.
type Player interface {
	Play(ctx context.Context, path string) <-chan error
}

// TimerStopper is the part of a timer source the session controls.
type TimerStopper interface {
	Stop()
}
