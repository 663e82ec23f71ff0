package setup

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/zeebo/errs"

	"github.com/ib-77/swiftbridge/internal/logging"
	"github.com/ib-77/swiftbridge/pkg/rop"
)

// MinGoVersion is the oldest Go release the lessons are written for.
const MinGoVersion = ">= 1.21"

var Error = errs.Class("setup")

type Module struct {
	Path        string
	Description string
}

// Modules the lessons link against.
var Modules = []Module{
	{"github.com/alecthomas/kong", "command line (cmd)"},
	{"go.uber.org/zap", "structured logging"},
	{"github.com/zeebo/errs", "error classes"},
	{"github.com/patrickmn/go-cache", "mock API store (exercise 2)"},
	{"github.com/google/uuid", "result ids"},
	{"github.com/charmbracelet/glamour", "terminal markdown"},
}

// StdPackages are the standard library packages the lessons import.
var StdPackages = []Module{
	{"encoding/json", "JSON encoding (exercise 4)"},
	{"context", "cancellation and timeouts (exercise 3)"},
	{"time", "delays (exercise 3)"},
	{"errors", "error values"},
	{"sync", "goroutine coordination"},
	{"net/http", "HTTP methods and status codes (exercise 2)"},
}

// PackageStatus says where a standard package was found. Packages compiled
// into this binary are available even without a toolchain.
type PackageStatus struct {
	Module
	Available bool
	Source    string
}

type ModuleStatus struct {
	Module
	Version string
	Linked  bool
}

type Report struct {
	GoVersion   string
	GoVersionOK rop.Result[*semver.Version]
	Toolchain   rop.Result[string]
	StdLib      []PackageStatus
	Modules     []ModuleStatus
}

// Ready needs a supported Go version and every standard package the
// lessons use.
func (r Report) Ready() bool {
	if !r.GoVersionOK.IsSuccess() {
		return false
	}
	for _, p := range r.StdLib {
		if !p.Available {
			return false
		}
	}
	return true
}

// Checker gathers a Report. The zero value inspects the running binary.
type Checker struct {
	GoVersion     func() string
	ReadBuildInfo func() (*debug.BuildInfo, bool)
	LookPath      func(file string) (string, error)
	// ListStd returns the import paths of the standard library known to goBin.
	ListStd func(ctx context.Context, goBin string) ([]string, error)
}

func (c Checker) withDefaults() Checker {
	if c.GoVersion == nil {
		c.GoVersion = runtime.Version
	}
	if c.ReadBuildInfo == nil {
		c.ReadBuildInfo = debug.ReadBuildInfo
	}
	if c.LookPath == nil {
		c.LookPath = exec.LookPath
	}
	if c.ListStd == nil {
		c.ListStd = listStd
	}
	return c
}

func listStd(ctx context.Context, goBin string) ([]string, error) {
	out, err := exec.CommandContext(ctx, goBin, "list", "std").Output()
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return strings.Fields(string(out)), nil
}

func (c Checker) stdLib(ctx context.Context, toolchain rop.Result[string]) []PackageStatus {
	log := logging.FromContext(ctx)

	source := "compiled in"
	var known map[string]bool
	if toolchain.IsSuccess() {
		if pkgs, err := c.ListStd(ctx, toolchain.Result()); err == nil {
			source = "go list std"
			known = make(map[string]bool, len(pkgs))
			for _, p := range pkgs {
				known[p] = true
			}
		} else {
			log.Warn("go list std failed", logging.Err(err))
		}
	}

	out := make([]PackageStatus, 0, len(StdPackages))
	for _, m := range StdPackages {
		available := known == nil || known[m.Path]
		out = append(out, PackageStatus{Module: m, Available: available, Source: source})
	}
	return out
}

// ParseGoVersion turns "go1.22.3" into a semver version and checks it
// against MinGoVersion.
func ParseGoVersion(raw string) rop.Result[*semver.Version] {
	v, err := semver.NewVersion(strings.TrimPrefix(raw, "go"))
	if err != nil {
		return rop.Fail[*semver.Version](Error.New("unrecognised Go version %q", raw))
	}

	constraint, err := semver.NewConstraint(MinGoVersion)
	if err != nil {
		return rop.Fail[*semver.Version](Error.Wrap(err))
	}
	if !constraint.Check(v) {
		return rop.Fail[*semver.Version](Error.New("Go %s is older than %s", v, strings.TrimPrefix(MinGoVersion, ">= ")))
	}
	return rop.Success(v)
}

func (c Checker) Check(ctx context.Context) Report {
	c = c.withDefaults()
	log := logging.FromContext(ctx)

	report := Report{GoVersion: c.GoVersion()}
	report.GoVersionOK = ParseGoVersion(report.GoVersion)
	report.Toolchain = rop.Of(c.LookPath("go"))
	report.StdLib = c.stdLib(ctx, report.Toolchain)

	linked := map[string]string{}
	if info, ok := c.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			linked[dep.Path] = dep.Version
		}
	} else {
		log.Warn("build info unavailable")
	}

	for _, m := range Modules {
		version, ok := linked[m.Path]
		report.Modules = append(report.Modules, ModuleStatus{Module: m, Version: version, Linked: ok})
	}
	return report
}

var rule = strings.Repeat("=", 70)
var thinRule = strings.Repeat("-", 70)

func Print(w io.Writer, r Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n🔍 GO ENVIRONMENT CHECK\n%s\n", rule, rule)

	fmt.Fprintf(&b, "\n1. Go Version\n%s\n", thinRule)
	fmt.Fprintf(&b, "Detected: %s\n", r.GoVersion)
	if r.GoVersionOK.IsSuccess() {
		fmt.Fprintf(&b, "✅ Go version: %s\n", r.GoVersionOK.Result())
	} else {
		fmt.Fprintf(&b, "⚠️  Warning: Go 1.21+ recommended (%s)\n", r.GoVersionOK.Message())
	}

	fmt.Fprintf(&b, "\n2. Toolchain\n%s\n", thinRule)
	if r.Toolchain.IsSuccess() {
		fmt.Fprintf(&b, "  ✅ go (%s)\n", r.Toolchain.Result())
	} else {
		fmt.Fprintf(&b, "  ⚠️  go not found on PATH (needed to edit and rebuild the exercises)\n")
	}

	fmt.Fprintf(&b, "\n3. Standard Library\n%s\n", thinRule)
	for _, p := range r.StdLib {
		if p.Available {
			fmt.Fprintf(&b, "  ✅ %-14s - %s (%s)\n", p.Path, p.Description, p.Source)
		} else {
			fmt.Fprintf(&b, "  ❌ %-14s - %s (missing from %s)\n", p.Path, p.Description, p.Source)
		}
	}

	fmt.Fprintf(&b, "\n4. Linked Modules\n%s\n", thinRule)
	var missing []string
	for _, m := range r.Modules {
		if m.Linked {
			fmt.Fprintf(&b, "  ✅ %-36s %-10s - %s\n", m.Path, m.Version, m.Description)
		} else {
			fmt.Fprintf(&b, "  ⚠️  %-36s - %s (not linked)\n", m.Path, m.Description)
			missing = append(missing, m.Path)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(&b, "\n💡 Fetch missing modules:\n   go get %s\n", strings.Join(missing, " "))
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	if r.Ready() {
		fmt.Fprintf(&b, "✅ YOUR ENVIRONMENT IS READY FOR WEEK 1!\n%s\n", rule)
		fmt.Fprintf(&b, "\nNext steps:\n1. Run: swiftbridge start\n2. Start with Exercise 1: swiftbridge syntax\n3. Follow the learning path\n")
	} else {
		fmt.Fprintf(&b, "⚠️  SOME CHECKS FAILED - See above for details\n%s\n", rule)
	}

	_, err := io.WriteString(w, b.String())
	return Error.Wrap(err)
}

func Run(ctx context.Context, w io.Writer, c Checker) error {
	return Print(w, c.Check(ctx))
}
