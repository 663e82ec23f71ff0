package rop

import (
	"context"
	"errors"
)

// GetErrors splits an errors.Join result into its parts. A plain error comes
// back alone, nil gives none.
func GetErrors(err error) []error {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// Problems lists the failure messages of r, one per joined error.
func Problems[T any](r Result[T]) []string {
	if r.IsSuccess() {
		return nil
	}

	errs := GetErrors(r.Err())
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Error())
	}
	return out
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
