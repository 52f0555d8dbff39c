package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField           = errors.New("required field missing from payload")
	ErrUnrecognizedState      = errors.New("unrecognised pull request state")
	ErrUnrecognizedMergeState = errors.New("unrecognised mergeable state")
)

// TransportError reports a failed fetch from the gh collaborator.
// ExitCode carries the subprocess exit code so the caller can propagate it.
type TransportError struct {
	Op       string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *TransportError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
