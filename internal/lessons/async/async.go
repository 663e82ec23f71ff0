// Package async shows goroutines, channels and context deadlines in place of
// Swift's async/await and task groups.
package async

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ib-77/swiftbridge/internal/logging"
	"github.com/ib-77/swiftbridge/pkg/rop"
	"github.com/ib-77/swiftbridge/pkg/rop/core"
	"github.com/ib-77/swiftbridge/pkg/rop/lite"
)

const fetchedData = "User data from API"

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Fetcher simulates network calls. Unit is one "second" of simulated delay.
type Fetcher struct {
	Out  io.Writer
	Unit time.Duration

	mu sync.Mutex
}

func (f *Fetcher) say(format string, args ...any) {
	if f.Out == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	fmt.Fprintf(f.Out, format, args...)
}

func (f *Fetcher) units(n float64) time.Duration {
	return time.Duration(n * float64(f.Unit))
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FetchData waits delay units and returns the mock payload.
func (f *Fetcher) FetchData(ctx context.Context, delay float64) rop.Result[string] {
	f.say("🔄 Fetching data...\n")
	if err := sleep(ctx, f.units(delay)); err != nil {
		return rop.Cancel[string](err)
	}
	f.say("✅ Data fetched!\n")
	return rop.Success(fetchedData)
}

// FetchUser takes one unit. Non-positive ids fail.
func (f *Fetcher) FetchUser(ctx context.Context, id int) rop.Result[User] {
	if id <= 0 {
		return rop.Failure[User](fmt.Sprintf("invalid user id: %d", id))
	}
	if err := sleep(ctx, f.units(1)); err != nil {
		return rop.Cancel[User](err)
	}
	return rop.Success(User{ID: id, Name: fmt.Sprintf("User%d", id)})
}

type slot struct {
	pos int
	id  int
}

type fetched struct {
	pos  int
	user rop.Result[User]
}

// FetchAllUsers fetches concurrently and keeps the order of ids. Items the
// context cut off come back as cancels.
func (f *Fetcher) FetchAllUsers(ctx context.Context, ids []int) []rop.Result[User] {
	slots := make([]slot, len(ids))
	for i, id := range ids {
		slots[i] = slot{pos: i, id: id}
	}

	lines := core.GetWorkerMaxCount(ctx, len(ids))
	logging.FromContext(ctx).Debug("fetching users", logging.Int("users", len(ids)), logging.Int("lines", lines))

	done := core.FromChanMany(ctx,
		lite.Turnout(ctx,
			core.ToChanManyResults(ctx, slots),
			lite.Map(func(ctx context.Context, s slot) fetched {
				return fetched{pos: s.pos, user: f.FetchUser(ctx, s.id)}
			}),
			lines))

	out := make([]rop.Result[User], len(ids))
	filled := make([]bool, len(ids))
	for _, r := range done {
		if r.IsSuccess() {
			out[r.Result().pos] = r.Result().user
			filled[r.Result().pos] = true
		}
	}
	for i := range out {
		if !filled[i] {
			out[i] = rop.Cancel[User](cancelCause(ctx))
		}
	}
	return out
}

func cancelCause(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return context.Canceled
}

// FetchSequential fetches one user after another.
func (f *Fetcher) FetchSequential(ctx context.Context, ids []int) []rop.Result[User] {
	out := make([]rop.Result[User], 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			out = append(out, rop.Cancel[User](err))
			continue
		}
		out = append(out, f.FetchUser(ctx, id))
	}
	return out
}

// FetchWithTimeout gives FetchData at most timeout units.
func (f *Fetcher) FetchWithTimeout(ctx context.Context, delay, timeout float64) rop.Result[string] {
	ctx, cancel := context.WithTimeout(ctx, f.units(timeout))
	defer cancel()

	return f.FetchData(ctx, delay)
}
