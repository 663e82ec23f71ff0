package core

import (
	"context"
	"sync"

	"github.com/ib-77/swiftbridge/pkg/rop"
)

// Locomotive pulls inputs, runs engine on each and pushes the processed
// result to outCh until inputCh closes or ctx is done.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out],
	engine func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					return
				case outCh <- pr:
				}
			}
		}
	}
}
