package lite

import (
	"context"
	"sync"

	"github.com/ib-77/swiftbridge/pkg/rop"
	"github.com/ib-77/swiftbridge/pkg/rop/core"
	"github.com/ib-77/swiftbridge/pkg/rop/mass"
)

func Run[T any](ctx context.Context, inputCh <-chan rop.Result[T],
	engine func(ctx context.Context, input rop.Result[T]) <-chan rop.Result[T],
	lines int) <-chan rop.Result[T] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout starts lines locomotives over inputCh. Output order is not kept.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out],
	lines int) <-chan rop.Result[Out] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) func(ctx context.Context,
	input rop.Result[In]) <-chan rop.Result[Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return mass.Mapping(ctx, input, mapOnSuccess)
	}
}

func Try[In, Out any](
	onTryExecute func(ctx context.Context, r In) (Out, error)) func(ctx context.Context,
	input rop.Result[In]) <-chan rop.Result[Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return mass.Trying(ctx, input, onTryExecute)
	}
}

func Finally[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	handlers mass.FinallyHandlers[In, Out]) <-chan Out {
	return mass.Finalizing(ctx, input, handlers)
}
