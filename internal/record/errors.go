package record

import (
	"errors"
	"fmt"
)

var (
	// ErrArity is matched by errors returned when an instance is constructed
	// with more values than its type has fields.
	ErrArity = errors.New("wrong number of arguments")

	// ErrUnknownMethod is returned by Instance.Call for names missing from the
	// type's method table.
	ErrUnknownMethod = errors.New("undefined method")

	// ErrBadArgument is returned by built-in methods invoked through
	// Instance.Call with arguments of the wrong count or type.
	ErrBadArgument = errors.New("bad argument")
)

// ArityError reports a constructor call with too many positional values.
type ArityError struct {
	Type  string
	Given int
	Max   int
}

// Error implements the error interface for ArityError.
func (e *ArityError) Error() string {
	name := e.Type
	if name == "" {
		name = "anonymous record"
	}
	return fmt.Sprintf("%s: %s (given %d, expected at most %d)", name, ErrArity, e.Given, e.Max)
}

// Is lets errors.Is(err, ErrArity) match an *ArityError.
func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}
