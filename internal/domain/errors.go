package domain

import "errors"

var (
	// ErrDueTimeParse is returned when a due time matches none of the accepted layouts.
	ErrDueTimeParse = errors.New("unrecognized due time")
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidTask  = errors.New("invalid task")
)
