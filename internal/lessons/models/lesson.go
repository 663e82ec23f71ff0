package models

import (
	"context"
	"fmt"
	"io"

	"github.com/ib-77/swiftbridge/pkg/rop"
)

const exercises = `
==================================================
EXERCISES:
==================================================
1. Create a Student model with:
   - ID int, Name string, Email string
   - GPA float64 (validation: 0.0 to 4.0)

2. Create a Course model with:
   - ID int, Name string
   - Students []Student
   - Instructor User

3. Serialize/deserialize a Course to/from JSON

4. (Advanced) Add validation:
   - email must contain @
   - gpa between 0.0 and 4.0
   - custom error messages
`

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// show prints label and the value, or each failure on its own line.
func show[T any](p *printer, label string, r rop.Result[T]) {
	if r.IsSuccess() {
		p.printf("%s: %v\n", label, r.Result())
		return
	}

	problems := rop.Problems(r)
	if len(problems) == 1 {
		p.printf("❌ %s: %s\n", label, problems[0])
		return
	}
	p.printf("❌ %s:\n", label)
	for _, problem := range problems {
		p.printf("   - %s\n", problem)
	}
}

func Run(ctx context.Context, w io.Writer) error {
	p := &printer{w: w}

	p.printf("=== STRUCTS WITH JSON TAGS (Simple) ===\n")
	user := User{ID: 1, Name: "Alice", Email: StringPtr("alice@example.com")}
	p.printf("User: %v\n", user)
	show(p, "As JSON", Encode(user))
	show(p, "Parsed user", Decode[User](`{"id": 2, "name": "Bob", "email": null}`))
	show(p, "Unknown field", Decode[User](`{"id": 3, "name": "Eve", "age": 30}`))

	p.printf("\n=== VALIDATED MODELS ===\n")
	post := NewPost(ctx, 1, "My First Post", "Hello, World!", 1)
	show(p, "Post", post)
	encoded := Encode(post.Result())
	show(p, "As JSON", encoded)
	show(p, "Parsed", ParsePost(ctx, encoded.Result()))
	show(p, "Validation error", NewPost(ctx, 2, "", "Test", 1))

	p.printf("\n=== NESTED MODELS ===\n")
	author := User{ID: 1, Name: "Alice"}
	nested := PostWithComments{
		ID:       1,
		Title:    "My Post",
		Author:   author,
		Comments: []Comment{{ID: 1, Text: "Great post!", Author: author}},
	}
	p.printf("Post with comments: %+v\n", nested)
	if pretty := Pretty(nested); pretty.IsSuccess() {
		p.printf("\nAs JSON:\n%s\n", pretty.Result())
	}

	p.printf("\n=== COURSE (exercise solution) ===\n")
	course := Course{
		ID:   101,
		Name: "Go for Swift Developers",
		Students: []Student{
			{ID: 1, Name: "Kim", Email: "kim@example.com", GPA: 3.8},
			{ID: 2, Name: "Lee", Email: "lee@example.com", GPA: 3.1},
		},
		Instructor: author,
	}
	courseJSON := Encode(course)
	show(p, "As JSON", courseJSON)
	show(p, "Parsed course", ParseCourse(ctx, courseJSON.Result()))
	show(p, "Invalid student", Student{ID: 3, Name: "Max", Email: "max.example.com", GPA: 4.5}.Validate(ctx))

	p.printf("%s", exercises)
	return p.err
}
