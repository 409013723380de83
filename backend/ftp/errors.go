package ftp

import "fmt"

type sessionErr string

func (e sessionErr) Error() string { return string(e) }

const errSessionState = sessionErr("ftp session is not in the required state for this operation")

// StateError is returned when a session operation is called in the wrong state, ie: after Close.
type StateError struct {
	Want State
	Got  State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", errSessionState, e.Want, e.Got)
}

// Is reports the package's session state error as a match.
func (e *StateError) Is(target error) bool { return target == errSessionState }
