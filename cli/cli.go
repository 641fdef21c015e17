package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/msgfmt/cli/cmd"
	"github.com/ardnew/msgfmt/msg"
	"github.com/ardnew/msgfmt/pkg"
)

// CLI is the top-level command-line interface for msgfmt.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Parse   cmd.Parse   `cmd:"" help:"Print the syntax tree of a template."`
	Catalog cmd.Catalog `cmd:"" help:"Render or list the messages of a catalog directory."`
	Init    cmd.Init    `cmd:"" help:"Write a configuration file with the current flag values."`
	Version cmd.Version `cmd:"" help:"Print version information."`

	Render cmd.Render `cmd:"" default:"withargs" help:"Render a template (default)."`
}

// Run executes the msgfmt CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return RunWith(ctx, nil, nil, nil, exit, args...)
}

// RunWith is like [Run] with the command streams replaced. Nil streams use
// the process streams.
func RunWith(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	loadEnv(ctx, ".env", configPath(".env"))

	configFilePath := configPath(baseConfig + ".yaml")

	vars := kong.Vars{
		cmd.ConfigIdentifier:   configFilePath,
		cmd.MaxDepthIdentifier: strconv.Itoa(msg.DefaultMaxDepth),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Boolean logging flags do not pass through TextUnmarshaler, so apply all
	// of them before kong reports any parse error.
	cli.Log.scan(args)

	if stderr == nil {
		stderr = os.Stderr
	}

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(orStdout(stdout), stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.DefaultEnvars(strings.ToUpper(pkg.Name)),
		kong.BindSingletonProvider(func() context.Context {
			// Resolved when a command runs, after ctx holds the parse results.
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithStdio(ctx, stdin, stdout, stderr)

	// Apply the remaining logging flags such as the time layout.
	cli.Log.start(ctx)

	// [pprofConfig.start] is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	err = ktx.Run(ctx, &cli)
	if err != nil {
		cmd.Report(stderr, err)
	}

	return err
}

// Reported reports whether err was already written to the error stream by
// [RunWith], so callers need not print it again.
func Reported(err error) bool {
	var perr *msg.ParseError

	return errors.As(err, &perr)
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}
