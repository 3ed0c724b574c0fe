package store

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned when no settings format matches a path.
var ErrUnknownFormat = errors.New("unknown settings format")

// ParseError represents an error while parsing a settings file.
type ParseError struct {
	Path    string
	Format  Format
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s (%s): %s", e.Path, e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
