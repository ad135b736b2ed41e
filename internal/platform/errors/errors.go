package apperrors

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrNoActiveTimer   = errors.New("no active timer")
	ErrTimerActive     = errors.New("a timer is already running")
	ErrTimerPaused     = errors.New("timer is paused")
	ErrTimerNotPaused  = errors.New("timer is not paused")
	ErrSessionTooShort = errors.New("session must be at least 1 minute long")
	ErrRemoteDisabled  = errors.New("remote mirror is not configured")
)
