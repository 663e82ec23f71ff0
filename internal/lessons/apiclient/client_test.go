package apiclient

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	c := New("https://api.example.com")
	assert.Equal(t, "https://api.example.com/users", c.BuildURL("users"))
}

func TestGet_Users(t *testing.T) {
	res := New(DefaultBaseURL).Get(context.Background(), "users")
	require.True(t, res.IsSuccess(), res.Message())

	users, ok := res.Result()["users"].([]any)
	require.True(t, ok)
	require.Len(t, users, 2)
	assert.Equal(t, map[string]any{"id": float64(1), "name": "Alice"}, users[0])
}

func TestGet_UnknownEndpoint(t *testing.T) {
	res := New(DefaultBaseURL).Get(context.Background(), "posts")
	assert.False(t, res.IsSuccess())
	assert.True(t, Error.Has(res.Err()))
	assert.Contains(t, res.Message(), "unknown endpoint: posts")
}

func TestPost_CreatesUser(t *testing.T) {
	ctx := context.Background()
	c := New(DefaultBaseURL)

	res := c.Post(ctx, "users", map[string]any{"name": "Charlie", "email": "charlie@example.com"})
	require.True(t, res.IsSuccess(), res.Message())
	assert.Equal(t, true, res.Result()["success"])
	assert.Equal(t, float64(123), res.Result()["id"])

	u := c.GetUser(ctx, 123)
	require.True(t, u.IsSuccess(), u.Message())
	assert.Equal(t, User{ID: 123, Name: "Charlie", Email: "charlie@example.com"}, u.Result())

	next := c.Post(ctx, "users", map[string]any{"name": "Dana"})
	assert.Equal(t, float64(124), next.Result()["id"])
}

func TestPost_UnencodableBodyFails(t *testing.T) {
	res := New(DefaultBaseURL).Post(context.Background(), "users", map[string]any{"bad": make(chan int)})
	assert.False(t, res.IsSuccess())
	assert.Contains(t, res.Message(), "encode POST body")
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	c := New(DefaultBaseURL)

	del := c.Delete(ctx, "users/2")
	require.True(t, del.IsSuccess(), del.Message())
	assert.True(t, del.Result())

	again := c.Delete(ctx, "users/2")
	assert.False(t, again.IsSuccess())
	assert.Contains(t, again.Message(), "404")

	users := c.GetUsers(ctx)
	require.True(t, users.IsSuccess())
	assert.Equal(t, []User{{ID: 1, Name: "Alice"}}, users.Result())
}

func TestWithToken_SetsAuthorization(t *testing.T) {
	c := New(DefaultBaseURL, WithToken("secret"))
	c.Get(context.Background(), "users")

	req := c.LastRequest()
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "https://api.example.com/users", req.URL)
	assert.Equal(t, "Bearer secret", req.Headers["Authorization"])
	assert.Equal(t, "application/json", req.Headers["Content-Type"])

	_, ok := New(DefaultBaseURL, WithToken("")).Headers["Authorization"]
	assert.False(t, ok)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := New(DefaultBaseURL).GetUsers(ctx)
	assert.True(t, res.IsCancel())
	assert.ErrorIs(t, res.Err(), context.Canceled)
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), &buf, Options{Token: "abc"}))

	out := buf.String()
	assert.Contains(t, out, "✅ Success!")
	assert.Contains(t, out, `"name": "Alice"`)
	assert.Contains(t, out, `✅ User created: {"id":123,"success":true}`)
	assert.Contains(t, out, "✅ Parsed 3 users")
	assert.Contains(t, out, "✅ Deleted users/2: true")
	assert.Contains(t, out, "✅ Deleted users/2: true\n\n❌ Error: apiclient: GET users/2: 404 not found: users/2\n")
	assert.Contains(t, out, "Authorization header: Bearer abc")
}
