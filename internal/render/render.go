// Package render prints lesson markdown to a terminal.
package render

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/zeebo/errs"
)

// Plain disables markdown styling.
const Plain = "plain"

var Error = errs.Class("render")

type Renderer struct {
	style string
}

// New returns a renderer for a glamour style name (notty, ascii, dark, light...)
// or Plain. NO_COLOR in the environment forces Plain.
func New(style string) *Renderer {
	if style == "" || os.Getenv("NO_COLOR") != "" {
		style = Plain
	}
	return &Renderer{style: style}
}

func (r *Renderer) Style() string {
	return r.style
}

// Markdown writes md styled, or as-is when styling is off or fails.
func (r *Renderer) Markdown(w io.Writer, md string) error {
	out := md
	if r.style != Plain {
		if styled, err := glamour.Render(md, r.style); err == nil {
			out = styled
		}
	}

	_, err := io.WriteString(w, out)
	return Error.Wrap(err)
}
