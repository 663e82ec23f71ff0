// Package start prints the week-one learning path.
package start

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ib-77/swiftbridge/internal/render"
)

type Exercise struct {
	Number  int
	Title   string
	Command string
	Minutes int
	Topics  []string
	Tasks   []string
}

var Exercises = []Exercise{
	{
		Number:  1,
		Title:   "Go Syntax Comparison",
		Command: "swiftbridge syntax",
		Minutes: 30,
		Topics:  []string{"Variables", "Functions", "Collections", "Structs"},
	},
	{
		Number:  2,
		Title:   "API Client (Swift-style)",
		Command: "swiftbridge api-client",
		Minutes: 45,
		Topics:  []string{"Structs", "Generics", "Error Handling"},
		Tasks:   []string{"Add DELETE", "auth", "User model", "JSON parsing"},
	},
	{
		Number:  3,
		Title:   "Goroutines & Context",
		Command: "swiftbridge async",
		Minutes: 60,
		Topics:  []string{"Goroutines", "Channels", "Context", "Error Handling"},
		Tasks:   []string{"Sequential", "Partial failures", "Timeout"},
	},
	{
		Number:  4,
		Title:   "Data Models (Codable)",
		Command: "swiftbridge models",
		Minutes: 45,
		Topics:  []string{"Structs", "JSON tags", "Validation"},
		Tasks:   []string{"Student/Course models", "serialization", "validation"},
	},
}

func totalMinutes() int {
	total := 0
	for _, e := range Exercises {
		total += e.Minutes
	}
	return total
}

// Schedule is the learning path as markdown.
func Schedule() string {
	var b strings.Builder

	b.WriteString("# WEEK 1: GO SYNTAX TRANSFER FOR SWIFT DEVELOPERS\n\n")
	for _, e := range Exercises {
		fmt.Fprintf(&b, "## 📘 Exercise %d: %s\n\n", e.Number, e.Title)
		fmt.Fprintf(&b, "- Run: `%s`\n", e.Command)
		fmt.Fprintf(&b, "- Time: %d minutes\n", e.Minutes)
		fmt.Fprintf(&b, "- Topics: %s\n", strings.Join(e.Topics, ", "))
		if len(e.Tasks) > 0 {
			fmt.Fprintf(&b, "- Tasks: %s\n", strings.Join(e.Tasks, ", "))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "**TOTAL TIME: ~%d hours**\n\n", (totalMinutes()+30)/60)

	b.WriteString(dailySchedule)
	return b.String()
}

const dailySchedule = `## Daily schedule (suggested)

### Day 1 (90 min)
- ✅ Exercise 1: Syntax Comparison (30 min). Read the output, then change the examples.
- ✅ Exercise 2: API Client Part 1 (45 min). Understand the structure, add the DELETE method.

### Day 2 (90 min)
- ✅ Exercise 2: API Client Part 2 (30 min). Auth token, User model, parsing.
- ✅ Exercise 3: Goroutines Part 1 (60 min). Run the examples, follow the context.

### Day 3 (90 min)
- ✅ Exercise 3: Goroutines Part 2 (30 min). Sequential fetch, partial failures.
- ✅ Exercise 4: Data Models (60 min). Struct tags, validation, Student/Course.

## Next steps after week 1
1. Call a real API with net/http (JSONPlaceholder)
2. Start Week 2: Introduction to LLMs
`

const installGuide = `# REQUIRED INSTALLATIONS

For week 1 (Go basics):
- ✅ Go 1.21+ (run ` + "`swiftbridge check`" + `)
- ✅ An editor with gopls

For later weeks:
- 🔄 ` + "`go get github.com/anthropics/anthropic-sdk-go`" + `
- 🔄 ` + "`go get github.com/joho/godotenv`" + `
`

const getStarted = `# 🚀 GET STARTED

Next action:
1. Run: ` + "`swiftbridge syntax`" + `
2. Read through the examples
3. Modify examples and experiment

Questions?
- Check the TODO list printed by each lesson
- Run the exercises and see the output
`

func Run(_ context.Context, w io.Writer, r *render.Renderer) error {
	for _, section := range []string{Schedule(), installGuide, getStarted} {
		if err := r.Markdown(w, section+"\n"); err != nil {
			return err
		}
	}
	return nil
}
