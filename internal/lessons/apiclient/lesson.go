package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ib-77/swiftbridge/pkg/rop"
)

type Options struct {
	BaseURL string
	Token   string
}

// report prints a success line or the error and returns the write error.
func report[T any](w io.Writer, res rop.WithError[T], onSuccess func(T) string) error {
	line := "\n❌ Error: " + res.Message()
	if res.IsSuccess() {
		line = onSuccess(res.Result())
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func pretty(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}

func compact(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}

func Run(ctx context.Context, w io.Writer, opts Options) error {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	client := New(opts.BaseURL, WithToken(opts.Token))

	steps := []func() error{
		func() error {
			return report(w, client.Get(ctx, "users"), func(data map[string]any) string {
				return "✅ Success!\n" + pretty(data)
			})
		},
		func() error {
			created := client.Post(ctx, "users", map[string]any{"name": "Charlie", "email": "charlie@example.com"})
			return report(w, created, func(data map[string]any) string {
				return "\n✅ User created: " + compact(data)
			})
		},
		func() error {
			return report(w, client.GetUsers(ctx), func(users []User) string {
				return fmt.Sprintf("\n✅ Parsed %d users: %+v", len(users), users)
			})
		},
		func() error {
			return report(w, client.Delete(ctx, "users/2"), func(ok bool) string {
				return fmt.Sprintf("\n✅ Deleted users/2: %t", ok)
			})
		},
		func() error {
			return report(w, client.GetUser(ctx, 2), func(u User) string {
				return fmt.Sprintf("\n✅ Found %+v", u)
			})
		},
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	auth := "none"
	if h, ok := client.LastRequest().Headers["Authorization"]; ok {
		auth = h
	}
	_, err := fmt.Fprintf(w, "\nAuthorization header: %s\n", auth)
	return err
}
