// Package setup prints the week-one wrap-up and checks the Go environment.
package setup

import (
	"context"
	"io"

	"github.com/ib-77/swiftbridge/internal/render"
)

const summary = `# WEEK 1: GO FUNDAMENTALS SETUP COMPLETE

*iOS senior dev → Go*

## 📁 Lessons

| Command | Lesson | Time |
|---|---|---|
| swiftbridge start | Read this first | 5 min |
| swiftbridge syntax | Exercise 1: Go syntax | 30 min |
| swiftbridge api-client | Exercise 2: API client | 45 min |
| swiftbridge async | Exercise 3: Goroutines & context | 60 min |
| swiftbridge models | Exercise 4: Data models | 45 min |
| swiftbridge check | Verify environment | 2 min |

## ✅ What's been set up for you

1. Go environment
   - Toolchain and modules (run ` + "`swiftbridge check`" + `)
   - Standard library: encoding/json, context, time, errors
2. Learning materials
   - 4 practical exercises (3 hours total)
   - Swift → Go comparisons
   - Real-world patterns (API client, goroutines, data models)
3. Your advantage as a senior iOS dev
   - Already know value types, async patterns, error handling
   - Go has less syntax than Swift; generics and Result types carry over

## 🎯 Next immediate steps

1. Verify setup: ` + "`swiftbridge check`" + `. Expected: *YOUR ENVIRONMENT IS READY FOR WEEK 1!*
2. Read the overview: ` + "`swiftbridge start`" + `
3. Start exercise 1: ` + "`swiftbridge syntax`" + `
4. Continue with exercises 2 to 4. Same pattern: read → run → complete.
`

func Summary(_ context.Context, w io.Writer, r *render.Renderer) error {
	return r.Markdown(w, summary)
}
