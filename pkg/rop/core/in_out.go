package core

import (
	"context"

	"github.com/ib-77/swiftbridge/pkg/rop"
)

// ToChanManyResults feeds values into a channel as successes. It stops early
// when ctx is done and closes the channel either way.
func ToChanManyResults[T any](ctx context.Context, values []T) <-chan rop.Result[T] {
	in := make(chan rop.Result[T])

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- rop.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChanMany collects out until it closes or ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
