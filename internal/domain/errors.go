package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type NotFoundError struct {
	Resource string
	ID       int64
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource != "" && e.ID > 0:
		return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
	case e.Resource != "":
		return fmt.Sprintf("%s not found", e.Resource)
	default:
		return "not found"
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError carries field-level problems, keyed by field name.
type ValidationError struct {
	Field    string
	Msg      string
	Problems map[string][]string
	Err      error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	if len(e.Problems) > 0 {
		keys := make([]string, 0, len(e.Problems))
		for k := range e.Problems {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "validation failed: " + strings.Join(keys, ", ")
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// InvalidArgumentError reports a required argument that was absent.
type InvalidArgumentError struct {
	Name string
}

func (e InvalidArgumentError) Error() string {
	if e.Name == "" {
		return "invalid argument"
	}
	return fmt.Sprintf("argument %s must not be nil", e.Name)
}

// PersistenceError reports a write that the store reported as a no-op.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	if e.Op == "" {
		return "no rows were affected"
	}
	return fmt.Sprintf("%s: no rows were affected", e.Op)
}

func (e PersistenceError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInvalidArgument(err error) bool {
	var target InvalidArgumentError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target PersistenceError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}
