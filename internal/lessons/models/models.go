// Package models maps Swift Codable structs onto Go structs with JSON tags.
package models

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zeebo/errs"

	"github.com/ib-77/swiftbridge/pkg/rop"
	"github.com/ib-77/swiftbridge/pkg/rop/chain"
	"github.com/ib-77/swiftbridge/pkg/rop/solo"
)

var Error = errs.Class("models")

// User mirrors `struct User: Codable { let id: Int; let name: String; let email: String? }`.
type User struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

func (u User) String() string {
	email := "nil"
	if u.Email != nil {
		email = fmt.Sprintf("%q", *u.Email)
	}
	return fmt.Sprintf("User{ID: %d, Name: %q, Email: %s}", u.ID, u.Name, email)
}

func StringPtr(s string) *string {
	return &s
}

type Post struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int    `json:"author_id"`
	Views    int    `json:"views"`
}

const ErrEmptyTitle = "Title cannot be empty"

func titleNotEmpty(_ context.Context, p Post) (bool, string) {
	return strings.TrimSpace(p.Title) != "", ErrEmptyTitle
}

// NewPost builds a post with zero views, failing on a blank title.
func NewPost(ctx context.Context, id int, title, content string, authorID int) rop.Result[Post] {
	return solo.Validate(ctx, Post{ID: id, Title: title, Content: content, AuthorID: authorID}, titleNotEmpty)
}

// ParsePost decodes and validates a post.
func ParsePost(ctx context.Context, text string) rop.Result[Post] {
	return solo.AndValidate(ctx, Decode[Post](text), titleNotEmpty)
}

type Comment struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Author User   `json:"author"`
}

type PostWithComments struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Author   User      `json:"author"`
	Comments []Comment `json:"comments"`
}

type Student struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	GPA   float64 `json:"gpa"`
}

func emailHasAt(_ context.Context, s Student) (bool, string) {
	return strings.Contains(s.Email, "@"), fmt.Sprintf("student %d: email must contain @", s.ID)
}

func gpaInRange(_ context.Context, s Student) (bool, string) {
	return s.GPA >= 0 && s.GPA <= 4, fmt.Sprintf("student %d: gpa must be between 0.0 and 4.0, got %.2f", s.ID, s.GPA)
}

// Validate reports every broken rule at once.
func (s Student) Validate(ctx context.Context) rop.Result[Student] {
	return chain.FromValue(ctx, s).Validate(emailHasAt, gpaInRange).Result()
}

type Course struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Students   []Student `json:"students"`
	Instructor User      `json:"instructor"`
}

// Validate checks every student and joins their errors.
func (c Course) Validate(ctx context.Context) rop.Result[Course] {
	checks := make([]func(context.Context, rop.Result[Course]) rop.Result[Course], 0, len(c.Students))
	for _, s := range c.Students {
		checks = append(checks, func(ctx context.Context, in rop.Result[Course]) rop.Result[Course] {
			return solo.Switch(ctx, s.Validate(ctx), func(context.Context, Student) rop.Result[Course] { return in })
		})
	}
	return solo.ValidateAll(ctx, rop.Success(c), false, checks...)
}

func ParseCourse(ctx context.Context, text string) rop.Result[Course] {
	return solo.Switch(ctx, Decode[Course](text), func(ctx context.Context, c Course) rop.Result[Course] {
		return c.Validate(ctx)
	})
}

// Encode renders v as compact JSON.
func Encode[T any](v T) rop.Result[string] {
	raw, err := json.Marshal(v)
	if err != nil {
		return rop.Fail[string](Error.Wrap(err))
	}
	return rop.Success(string(raw))
}

// Pretty renders v as indented JSON.
func Pretty[T any](v T) rop.Result[string] {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return rop.Fail[string](Error.Wrap(err))
	}
	return rop.Success(string(raw))
}

// Decode parses text into T. Unknown fields are rejected.
func Decode[T any](text string) rop.Result[T] {
	var v T
	dec := json.NewDecoder(bytes.NewBufferString(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return rop.Fail[T](Error.Wrap(err))
	}
	return rop.Success(v)
}
