package domain

import "errors"

var (
	// ErrNotFound indicates an unknown task ID or owner without a matching row.
	ErrNotFound = errors.New("task not found")

	// ErrInvalidTransition indicates the task's current state does not permit
	// the requested transition.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrDuplicateActiveSession indicates a Start while the owner already has
	// a task in progress or paused.
	ErrDuplicateActiveSession = errors.New("owner already has an active task")

	// ErrValidation indicates malformed caller input, rejected before any
	// store mutation.
	ErrValidation = errors.New("invalid input")
)
