// Package cli is the swiftbridge command line: one command per lesson.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/zeebo/errs"

	"github.com/ib-77/swiftbridge/internal/lessons/apiclient"
	"github.com/ib-77/swiftbridge/internal/logging"
	"github.com/ib-77/swiftbridge/internal/render"
	"github.com/ib-77/swiftbridge/pkg/rop"
)

var Error = errs.Class("cli")

type Globals struct {
	LogLevel string `env:"SWIFTBRIDGE_LOG_LEVEL" default:"warn" enum:"error,warn,info,debug" help:"Set the level of logs to output [${enum}]"`
	Style    string `env:"SWIFTBRIDGE_STYLE" default:"notty" help:"Markdown style (notty, ascii, dark, light, plain)"`
}

type CLI struct {
	Globals `embed:""`

	Start     StartCMD     `cmd:"" help:"Week one learning path. Default when no command is given" default:"1"`
	Syntax    SyntaxCMD    `cmd:"" help:"Exercise 1: Swift and Go syntax side by side"`
	APIClient APIClientCMD `cmd:"" name:"api-client" help:"Exercise 2: Swift-style API client"`
	Async     AsyncCMD     `cmd:"" help:"Exercise 3: goroutines and context"`
	Models    ModelsCMD    `cmd:"" help:"Exercise 4: data models and JSON"`
	Summary   SummaryCMD   `cmd:"" help:"What the week one setup contains"`
	Check     CheckCMD     `cmd:"" help:"Verify the Go environment"`
	Hello     HelloCMD     `cmd:"" help:"Hello, World!"`
	List      ListCMD      `cmd:"" help:"List lessons"`
	Run       RunCMD       `cmd:"" help:"Run a lesson by (fuzzy) name"`
}

// Env is bound to every command's Run method.
type Env struct {
	Ctx      context.Context
	Out      io.Writer
	Renderer *render.Renderer

	lessons []lesson
}

const description = `Week one of Go for iOS developers. Each command prints one lesson.

Flags can also be set from SWIFTBRIDGE_* variables or a .env file.
`

// Execute parses args and runs the chosen lesson. A lesson that fails is
// reported on out and does not produce an error.
func Execute(ctx context.Context, args []string, out, errOut io.Writer, exit func(int)) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("swiftbridge"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Writers(out, errOut),
		kong.Exit(exit),
		kong.Vars{"base_url": apiclient.DefaultBaseURL},
	)
	if err != nil {
		return Error.Wrap(err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
		return Error.Wrap(err)
	}

	log, err := logging.New(cli.LogLevel)
	if err != nil {
		return Error.Wrap(err)
	}
	defer func() { _ = log.Sync() }()
	ctx = log.GetContext(ctx)

	env := &Env{
		Ctx:      ctx,
		Out:      out,
		Renderer: render.New(cli.Style),
		lessons:  cli.lessons(),
	}

	log.Debug("running", logging.String("command", kctx.Command()), logging.String("style", env.Renderer.Style()))
	if err := kctx.Run(env); err != nil {
		res := rop.Fail[struct{}](err)
		log.Error("lesson failed", logging.String("command", kctx.Command()), logging.Err(res.Err()))
		if _, werr := fmt.Fprintf(out, "❌ %s\n", res.Message()); werr != nil {
			return Error.Wrap(werr)
		}
	}
	return nil
}
