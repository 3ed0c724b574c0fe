package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrUnknownKey indicates no entry is registered under the key.
	ErrUnknownKey = errors.New("unknown config key")

	// ErrInvalidValue indicates a value could not be parsed for the entry type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrAlreadyWatching indicates live reload is already active.
	ErrAlreadyWatching = errors.New("already watching settings file")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "set", "save", "reload")
	Target string // Entry key or file path
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ComponentError represents an initialization error from a component.
type ComponentError struct {
	Component string // Component name (e.g., "store", "definitions")
	Err       error  // Underlying error
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.Component, e.Err)
}

func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
