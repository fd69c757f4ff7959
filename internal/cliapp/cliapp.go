package cliapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/XxHardcoreGamerxX/University/internal/applog"
	"github.com/XxHardcoreGamerxX/University/internal/command"
	"github.com/XxHardcoreGamerxX/University/internal/config"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

// ErrUsage is returned when the positional arguments don't match the tool.
var ErrUsage = errors.New("wrong number of arguments")

// Env is what a tool gets once its arguments, config and logger are set up.
type Env struct {
	Config *config.Config
	Logger zerolog.Logger
	Args   []string
}

type runFunc func(ctx context.Context, cmd *cli.Command, env *Env) error

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage: `
				Location of a TOML config file. Options given through the command
				line flags override the options set in this file.`,
			OnlyOnce: true,
			Sources:  cli.EnvVars("UNIVERSITY_CONFIG"),
		},
		&cli.BoolFlag{
			Name: "debug",
			Usage: `
				Log every command to stderr`,
			OnlyOnce: true,
		},
	}
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// newCommand builds a tool taking exactly len(args) positional arguments.
func newCommand(name, usage string, args []string, flags []cli.Flag, run runFunc) *cli.Command {
	return &cli.Command{
		Name:            name,
		Usage:           usage,
		ArgsUsage:       "<" + strings.Join(args, "> <") + ">",
		HideHelpCommand: true,
		Flags:           append(commonFlags(), flags...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != len(args) {
				return fmt.Errorf("%w: correct usage: %s %s", ErrUsage, name, cmd.ArgsUsage)
			}
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			if cmd.IsSet("debug") {
				cfg.Log.Debug = cmd.Bool("debug")
			}
			env := &Env{
				Config: cfg,
				Logger: applog.WithScope(applog.NewLogger(errWriter(cmd), cfg.Log.Debug), strings.ToUpper(name)),
				Args:   cmd.Args().Slice(),
			}
			return run(ctx, cmd, env)
		},
	}
}

// withFiles opens the input paths and creates the output path, which is the
// last argument, before calling f. The output is created only once every
// input could be opened.
func withFiles(paths []string, f func(in []io.Reader, out io.Writer) error) (err error) {
	ins := make([]io.Reader, 0, len(paths)-1)
	for _, p := range paths[:len(paths)-1] {
		fd, err := os.Open(p)
		if err != nil {
			return err
		}
		defer fd.Close()
		ins = append(ins, fd)
	}
	out, err := os.Create(paths[len(paths)-1])
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return f(ins, out)
}

// dispatch runs the command log of the first path against ops and writes to
// the second path.
func dispatch(ctx context.Context, env *Env, ops []command.Op) error {
	return withFiles(env.Args, func(in []io.Reader, out io.Writer) error {
		return command.New(env.Logger, ops...).Run(ctx, in[0], out)
	})
}

// Main runs cmd on the process arguments, logging a fatal error and exiting
// with status 1.
func Main(cmd *cli.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Run(ctx, os.Args)
	stop()
	if err != nil {
		logger := applog.WithScope(applog.NewLogger(os.Stderr, false), strings.ToUpper(cmd.Name))
		logger.Error().Err(err).Msg("fatal")
		os.Exit(1)
	}
}
