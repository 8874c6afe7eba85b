// Command ptrie generates sample names, queries them through a prefix trie
// and compares the trie against a plain scan of the names.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/aglyzov/go-ptrie/internal/config"
	"github.com/aglyzov/go-ptrie/internal/logger"
)

// app is the state shared by the subcommands once the root command has
// loaded the configuration.
type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	log    zerolog.Logger
}

func main() {
	if err := run(context.Background(), os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "ptrie: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{stdout: stdout, stderr: stderr, log: zerolog.Nop()}

	cmd := &cli.Command{
		Name:      "ptrie",
		Usage:     "persistent prefix trie playground",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "config",
				Aliases:   []string{"c"},
				Usage:     "path to a config file",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: trace, debug, info, warn, error",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.generateCommand(),
			a.queryCommand(),
			a.benchCommand(),
		},
	}

	return cmd.Run(ctx, args)
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, err
	}

	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return ctx, fmt.Errorf("invalid config: %w", err)
	}

	log, err := logger.New(a.stderr, cfg.Log.Level)
	if err != nil {
		return ctx, err
	}

	a.cfg, a.log = cfg, log

	return ctx, nil
}

// namesFile returns the names file given on the command line or the
// configured one.
func (a *app) namesFile(cmd *cli.Command) string {
	if cmd.IsSet("file") {
		return cmd.String("file")
	}

	return a.cfg.Names.File
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:      "file",
		Aliases:   []string{"f"},
		Usage:     "names file, one name per line",
		TakesFile: true,
	}
}
