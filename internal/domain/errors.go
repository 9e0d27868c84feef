package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a portal session has not been registered.
	ErrSessionNotFound = errors.New("portal session not found")
	// ErrInvalidEmail is returned when the registration email fails validation.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrContentNotFound indicates the camp content could not be loaded.
	ErrContentNotFound = errors.New("camp content not found")
	// ErrInvalidIndex indicates an out-of-range question, option, or quest index,
	// or a question that was already answered.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrInvalidAction indicates an action that is not available in the current
	// scene, or an engine call made in the wrong mode.
	ErrInvalidAction = errors.New("invalid action")
	// ErrOutOfSequence indicates an engine call that skips the required order,
	// such as advancing past an unanswered question.
	ErrOutOfSequence = errors.New("out of sequence")
	// ErrOracleSilent indicates the Oracle responded without any usable text.
	ErrOracleSilent = errors.New("oracle returned no answer")
)
