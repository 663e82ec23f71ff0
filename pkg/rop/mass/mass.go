package mass

import (
	"context"

	"github.com/ib-77/swiftbridge/pkg/rop"
	"github.com/ib-77/swiftbridge/pkg/rop/solo"
)

// lift runs step on its own goroutine. The returned channel yields one
// result, or closes empty when ctx is already done.
func lift[In, Out any](ctx context.Context, input rop.Result[In],
	step func(ctx context.Context, in rop.Result[In]) rop.Result[Out]) <-chan rop.Result[Out] {

	out := make(chan rop.Result[Out], 1)

	go func() {
		defer close(out)

		if ctx.Err() == nil {
			out <- step(ctx, input)
		}
	}()

	return out
}

func Mapping[In, Out any](ctx context.Context, input rop.Result[In],
	mapOnSuccess func(ctx context.Context, r In) Out) <-chan rop.Result[Out] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[In]) rop.Result[Out] {
		return solo.Map(ctx, in, mapOnSuccess)
	})
}

func Trying[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) <-chan rop.Result[Out] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[In]) rop.Result[Out] {
		return solo.Try(ctx, in, onTryExecute)
	})
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

// Finalizing reduces every result from inputCh with handlers until the input
// closes or ctx is done.
func Finalizing[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError, handlers.OnCancel)

				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}
