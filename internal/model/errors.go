package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDisjointRange is returned when a set of generations cannot be
	// expressed as a single start/end pair.
	ErrDisjointRange = errors.New("generations do not form a single contiguous range")
	// ErrEmptyRange is returned when a version map has no generation set.
	ErrEmptyRange = errors.New("no generation selected")
	// ErrNoGenerations is returned when an operation needs a current
	// generation and the project has none.
	ErrNoGenerations = errors.New("project has no generations")
	// ErrUnsupportedLiteral is returned when a literal kind is assigned to an
	// element that has no such text block.
	ErrUnsupportedLiteral = errors.New("unsupported literal")
	// ErrDuplicate is returned when a value is already in a project list.
	ErrDuplicate = errors.New("already defined")
	// ErrEmptyName is returned when a required name is empty.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrNotFound is returned when a named project part does not exist.
	ErrNotFound = errors.New("not found")
)

// StorageError reports a failure to read or write a storage location.
type StorageError struct {
	Location string
	Err      error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Location, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err with the location it relates to.
func NewStorageError(location string, err error) error {
	return &StorageError{Location: location, Err: err}
}

// UserError is an expected failure caused by how the tool was invoked.
type UserError struct {
	Text   string
	Detail error
}

func (e *UserError) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf("%s: %v", e.Text, e.Detail)
	}

	return e.Text
}

func (e *UserError) Unwrap() error {
	return e.Detail
}

// NewUserError builds a UserError with an optional underlying cause.
func NewUserError(text string, detail error) error {
	return &UserError{Text: text, Detail: detail}
}
