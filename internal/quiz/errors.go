package quiz

import "errors"

var (
	ErrNoItems         = errors.New("no vocabulary items available")
	ErrInvalidSettings = errors.New("invalid quiz settings")
	ErrInvalidOption   = errors.New("option out of range")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNoSelection     = errors.New("question not answered yet")
	ErrQuizComplete    = errors.New("quiz is complete")
	ErrNotStarted      = errors.New("quiz not started")
)
