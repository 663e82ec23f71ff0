package apiclient

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/patrickmn/go-cache"
)

const (
	usersPrefix = "users/"
	sequenceKey = "seq:users"
	// first id handed out by POST /users
	firstCreatedID = 123
)

// Request is what the mock backend saw for one call.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// backend answers requests from an in-memory table instead of the network.
type backend struct {
	records *cache.Cache

	mu   sync.Mutex
	last Request
}

func newBackend() *backend {
	records := cache.New(cache.NoExpiration, 0)
	records.Set(sequenceKey, firstCreatedID-1, cache.NoExpiration)

	b := &backend{records: records}
	b.put(User{ID: 1, Name: "Alice"})
	b.put(User{ID: 2, Name: "Bob"})
	return b
}

func userKey(id int) string {
	return usersPrefix + strconv.Itoa(id)
}

func (b *backend) put(u User) {
	b.records.Set(userKey(u.ID), u, cache.NoExpiration)
}

func (b *backend) users() []User {
	var users []User
	for k, item := range b.records.Items() {
		if u, ok := item.Object.(User); ok && strings.HasPrefix(k, usersPrefix) {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (b *backend) lastRequest() Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// serve returns a JSON payload and an HTTP-like status code.
func (b *backend) serve(req Request, endpoint string) (int, []byte) {
	b.mu.Lock()
	b.last = req
	b.mu.Unlock()

	resource, id, hasID := strings.Cut(strings.Trim(endpoint, "/"), "/")
	if resource != "users" {
		return reply(http.StatusNotFound, map[string]any{"error": "unknown endpoint: " + endpoint})
	}

	switch {
	case req.Method == http.MethodGet && !hasID:
		return reply(http.StatusOK, map[string]any{"users": b.users()})

	case req.Method == http.MethodGet:
		if u, ok := b.records.Get(usersPrefix + id); ok {
			return reply(http.StatusOK, u)
		}
		return reply(http.StatusNotFound, map[string]any{"error": "not found: " + endpoint})

	case req.Method == http.MethodPost && !hasID:
		var u User
		if err := json.Unmarshal(req.Body, &u); err != nil {
			return reply(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
		next, err := b.records.IncrementInt(sequenceKey, 1)
		if err != nil {
			return reply(http.StatusInternalServerError, map[string]any{"error": err.Error()})
		}
		u.ID = next
		b.put(u)
		return reply(http.StatusCreated, map[string]any{"success": true, "id": next})

	case req.Method == http.MethodDelete && hasID:
		if _, ok := b.records.Get(usersPrefix + id); !ok {
			return reply(http.StatusNotFound, map[string]any{"error": "not found: " + endpoint})
		}
		b.records.Delete(usersPrefix + id)
		return http.StatusNoContent, nil
	}

	return reply(http.StatusMethodNotAllowed, map[string]any{"error": req.Method + " not allowed on " + endpoint})
}

func reply(status int, payload any) (int, []byte) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return http.StatusInternalServerError, []byte(`{"error":"encoding failed"}`)
	}
	return status, raw
}
