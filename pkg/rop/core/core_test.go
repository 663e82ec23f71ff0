package core

import (
	"context"
	"sync"
	"testing"

	"github.com/ib-77/swiftbridge/pkg/rop"
)

func TestToChanAndBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FromChanMany(ctx, ToChanManyResults(ctx, []int{1, 2, 3}))
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for i, r := range got {
		if !r.IsSuccess() || r.Result() != i+1 {
			t.Fatalf("expected success with %d at %d, got success=%v val=%v", i+1, i, r.IsSuccess(), r.Result())
		}
	}
}

func TestToChanManyResults_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count := 0
	for range ToChanManyResults(ctx, []int{1, 2, 3}) {
		count++
	}
	if count != 0 {
		t.Fatalf("expected nothing on a cancelled context, got %d", count)
	}
}

func TestLocomotive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	engine := func(ctx context.Context, in rop.Result[int]) <-chan rop.Result[int] {
		ch := make(chan rop.Result[int], 1)
		ch <- rop.Success(in.Result() * 10)
		close(ch)
		return ch
	}

	out := make(chan rop.Result[int], 3)
	wg := &sync.WaitGroup{}
	wg.Add(1)
	Locomotive(ctx, ToChanManyResults(ctx, []int{1, 2, 3}), out, engine, wg)
	wg.Wait()
	close(out)

	sum := 0
	for r := range out {
		sum += r.Result()
	}
	if sum != 60 {
		t.Fatalf("expected 60, got %d", sum)
	}
}

func TestWorkerOptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if got := GetWorkerMaxCount(ctx, 5); got != 5 {
		t.Fatalf("expected default 5, got %d", got)
	}
	if got := GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 5); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 5); got != 5 {
		t.Fatalf("expected non-positive option to fall back to 5, got %d", got)
	}
}
