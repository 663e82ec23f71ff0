package rop

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUninitialized is reported by the zero Result.
	ErrUninitialized = errors.New("rop: result was never constructed")
	// ErrMissingError replaces a nil error handed to Fail.
	ErrMissingError = errors.New("rop: failure constructed without an error")
)

type state uint8

const (
	unset state = iota
	succeeded
	failed
	cancelled
)

// Result is either a success carrying a value or a failure carrying an error.
// A cancel is a failure caused by the context ending the operation.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	state     state
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		state:     succeeded,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure builds a failed Result from a plain message.
func Failure[T any](message string) Result[T] {
	return Fail[T](errors.New(message))
}

func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrMissingError
	}
	return Result[T]{
		err:       err,
		state:     failed,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	if err == nil {
		err = ErrMissingError
	}
	return Result[T]{
		err:       err,
		state:     cancelled,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of converts a (value, error) pair. Context cancellation errors become a Cancel.
func Of[T any](r T, err error) Result[T] {
	switch {
	case err == nil:
		return Success(r)
	case IsCancellationError(err):
		return Cancel[T](err)
	default:
		return Fail[T](err)
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	if r.state == unset {
		return ErrUninitialized
	}
	return r.err
}

// Message is the failure text, empty on success.
func (r Result[T]) Message() string {
	if r.IsSuccess() {
		return ""
	}
	return r.Err().Error()
}

func (r Result[T]) Unwrap() (T, error) {
	return r.result, r.Err()
}

func (r Result[T]) IsSuccess() bool {
	return r.state == succeeded
}

func (r Result[T]) IsFailure() bool {
	return r.state != succeeded
}

func (r Result[T]) IsCancel() bool {
	return r.state == cancelled
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// MarshalJSON renders {"data": value} on success and {"error": message} otherwise.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.IsSuccess() {
		return json.Marshal(map[string]any{"data": r.result})
	}
	return json.Marshal(map[string]any{"error": r.Message()})
}
