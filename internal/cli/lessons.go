package cli

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ib-77/swiftbridge/internal/lessons/apiclient"
	"github.com/ib-77/swiftbridge/internal/lessons/async"
	"github.com/ib-77/swiftbridge/internal/lessons/hello"
	"github.com/ib-77/swiftbridge/internal/lessons/models"
	"github.com/ib-77/swiftbridge/internal/lessons/setup"
	"github.com/ib-77/swiftbridge/internal/lessons/start"
	"github.com/ib-77/swiftbridge/internal/lessons/syntax"
	"github.com/ib-77/swiftbridge/internal/logging"
)

type StartCMD struct{}

func (c *StartCMD) Run(env *Env) error {
	return start.Run(env.Ctx, env.Out, env.Renderer)
}

type SyntaxCMD struct{}

func (c *SyntaxCMD) Run(env *Env) error {
	return syntax.Run(env.Ctx, env.Out)
}

type APIClientCMD struct {
	BaseURL string `env:"SWIFTBRIDGE_BASE_URL" default:"${base_url}" help:"Base URL of the mock API"`
	Token   string `env:"SWIFTBRIDGE_TOKEN" help:"Bearer token sent with every request"`
}

func (c *APIClientCMD) Run(env *Env) error {
	return apiclient.Run(env.Ctx, env.Out, apiclient.Options{BaseURL: c.BaseURL, Token: c.Token})
}

type AsyncCMD struct {
	DelayUnit time.Duration `env:"SWIFTBRIDGE_DELAY_UNIT" default:"1s" help:"Length of one simulated second"`
}

func (c *AsyncCMD) Run(env *Env) error {
	return async.Run(env.Ctx, env.Out, c.DelayUnit)
}

type ModelsCMD struct{}

func (c *ModelsCMD) Run(env *Env) error {
	return models.Run(env.Ctx, env.Out)
}

type SummaryCMD struct{}

func (c *SummaryCMD) Run(env *Env) error {
	return setup.Summary(env.Ctx, env.Out, env.Renderer)
}

type CheckCMD struct{}

func (c *CheckCMD) Run(env *Env) error {
	return setup.Run(env.Ctx, env.Out, setup.Checker{})
}

type HelloCMD struct {
	Seed uint64 `env:"SWIFTBRIDGE_SEED" help:"Seed for the random array, 0 picks one"`
}

func (c *HelloCMD) Run(env *Env) error {
	var rng *rand.Rand
	if c.Seed != 0 {
		rng = rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	return hello.Run(env.Ctx, env.Out, rng)
}

type lesson struct {
	name string
	help string
	run  func(*Env) error
}

func (c *CLI) lessons() []lesson {
	return []lesson{
		{"start", "Week one learning path", c.Start.Run},
		{"syntax", "Exercise 1: Swift and Go syntax", c.Syntax.Run},
		{"api-client", "Exercise 2: API client", c.APIClient.Run},
		{"async", "Exercise 3: goroutines and context", c.Async.Run},
		{"models", "Exercise 4: data models", c.Models.Run},
		{"summary", "Setup summary", c.Summary.Run},
		{"check", "Environment check", c.Check.Run},
		{"hello", "Hello, World!", c.Hello.Run},
	}
}

type ListCMD struct{}

func (c *ListCMD) Run(env *Env) error {
	var b strings.Builder
	for _, l := range env.lessons {
		fmt.Fprintf(&b, "  %-12s %s\n", l.name, l.help)
	}
	_, err := fmt.Fprint(env.Out, b.String())
	return err
}

type RunCMD struct {
	Name string `arg:"" help:"Lesson name, a prefix or a fuzzy match is enough"`
}

// find matches name exactly, then as a prefix, then by closest fuzzy rank.
func find(lessons []lesson, name string) (lesson, bool) {
	names := make([]string, len(lessons))
	for i, l := range lessons {
		if strings.EqualFold(l.name, name) {
			return l, true
		}
		names[i] = l.name
	}
	for _, l := range lessons {
		if strings.HasPrefix(l.name, strings.ToLower(name)) {
			return l, true
		}
	}

	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		return lesson{}, false
	}
	sort.Sort(ranks)
	return lessons[ranks[0].OriginalIndex], true
}

func (c *RunCMD) Run(env *Env) error {
	l, ok := find(env.lessons, c.Name)
	if !ok {
		return Error.New("unknown lesson %q, try: swiftbridge list", c.Name)
	}
	logging.FromContext(env.Ctx).Info("lesson resolved",
		logging.String("query", c.Name), logging.String("lesson", l.name))
	return l.run(env)
}
