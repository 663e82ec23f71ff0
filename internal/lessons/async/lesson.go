package async

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ib-77/swiftbridge/pkg/rop"
	"github.com/ib-77/swiftbridge/pkg/rop/solo"
)

const DefaultUnit = time.Second

func describe[T any](ctx context.Context, r rop.Result[T]) string {
	return solo.Finally(ctx, r,
		func(_ context.Context, v T) string { return fmt.Sprintf("%+v", v) },
		func(_ context.Context, err error) string { return "error: " + err.Error() },
		func(_ context.Context, err error) string { return "<nil> (" + err.Error() + ")" },
	)
}

func Run(ctx context.Context, w io.Writer, unit time.Duration) error {
	if unit <= 0 {
		unit = DefaultUnit
	}
	f := &Fetcher{Out: w, Unit: unit}

	f.say("=== Example 1: Simple Async ===\n")
	f.say("Got: %s\n\n", describe(ctx, f.FetchData(ctx, 1)))

	f.say("=== Example 2: Concurrent Requests ===\n")
	start := time.Now()
	for _, u := range f.FetchAllUsers(ctx, []int{1, 2, 3}) {
		f.say("  %s\n", describe(ctx, u))
	}
	f.say("  took ~%s\n\n", time.Since(start).Round(unit))

	f.say("=== Example 3: Timeout ===\n")
	f.say("Result: %s\n", describe(ctx, f.FetchWithTimeout(ctx, 1, 2)))
	f.say("Result (timeout): %s\n\n", describe(ctx, f.FetchWithTimeout(ctx, 5, 1)))

	f.say("=== Example 4: Sequential Requests ===\n")
	start = time.Now()
	for _, u := range f.FetchSequential(ctx, []int{1, 2, 3}) {
		f.say("  %s\n", describe(ctx, u))
	}
	f.say("  took ~%s\n\n", time.Since(start).Round(unit))

	f.say("=== Example 5: Partial Failures ===\n")
	for _, u := range f.FetchAllUsers(ctx, []int{1, -2, 3}) {
		f.say("  %s\n", describe(ctx, u))
	}

	return ctx.Err()
}
