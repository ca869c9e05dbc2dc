package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArgument indicates a required positional argument was not given
	ErrMissingArgument = errors.New("missing argument")

	// ErrIO indicates the target file could not be read as text
	ErrIO = errors.New("i/o error")

	// ErrInvalidText indicates the file contents are not valid UTF-8
	ErrInvalidText = errors.New("stream did not contain valid UTF-8")
)

// MissingArgumentError names the positional argument that was absent.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("did not get a %s", e.Name)
}

// Is makes errors.Is(err, ErrMissingArgument) hold.
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// ReadError wraps a failure to load the file being searched.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

// Unwrap allows errors.Is and errors.As to reach the underlying cause
func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrIO) hold for every read failure.
func (e *ReadError) Is(target error) bool {
	return target == ErrIO
}

// IsMissingArgument checks if an error is a missing argument error
func IsMissingArgument(err error) bool {
	return errors.Is(err, ErrMissingArgument)
}

// IsIO checks if an error is a file read error
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}
