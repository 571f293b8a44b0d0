package light

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a controller error
type ErrorType int

const (
	// ErrTypeNotFound indicates the device directory does not exist
	ErrTypeNotFound ErrorType = iota
	// ErrTypeIO indicates a value file could not be read or written
	ErrTypeIO
	// ErrTypeParse indicates a value file did not hold an unsigned integer
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNotFound:
		return "Not Found"
	case ErrTypeIO:
		return "IO Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ControllerError is returned by every controller operation that touches the
// device files.
type ControllerError struct {
	Type    ErrorType // Category of error
	Path    string    // File or directory involved
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ControllerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s %s: %v", e.Type, e.Message, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s %s", e.Type, e.Message, e.Path)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ControllerError) Unwrap() error {
	return e.Err
}

func newError(typ ErrorType, path, message string, err error) *ControllerError {
	return &ControllerError{Type: typ, Path: path, Message: message, Err: err}
}

func isType(err error, typ ErrorType) bool {
	var ce *ControllerError
	if errors.As(err, &ce) {
		return ce.Type == typ
	}
	return false
}

// IsNotFound reports whether err is a missing device directory.
func IsNotFound(err error) bool { return isType(err, ErrTypeNotFound) }

// IsIO reports whether err is a read or write failure on a value file.
func IsIO(err error) bool { return isType(err, ErrTypeIO) }

// IsParse reports whether err is malformed value file content.
func IsParse(err error) bool { return isType(err, ErrTypeParse) }
