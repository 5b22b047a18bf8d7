package builders

import "errors"

// ErrInvalidState is matched by every error Build returns for missing input.
var ErrInvalidState = errors.New("invalid builder state")

// InvalidStateError reports which required input was missing.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return "Could not create the note name: " + e.Reason + "!"
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

func invalidState(reason string) error {
	return &InvalidStateError{Reason: reason}
}
