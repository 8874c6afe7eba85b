package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/aglyzov/go-ptrie/internal/names"
	"github.com/aglyzov/go-ptrie/ptrie"
)

func (a *app) queryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "prints the names starting with the prefix",
		ArgsUsage: "<prefix>",
		Flags: []cli.Flag{
			fileFlag(),
			&cli.BoolFlag{
				Name:    "exact",
				Aliases: []string{"e"},
				Usage:   "print only the names equal to the prefix",
			},
		},
		Action: a.query,
	}
}

func (a *app) query(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("query expects exactly one prefix")
	}

	var (
		prefix = cmd.Args().First()
		file   = a.namesFile(cmd)
		match  = ptrie.Prefix
	)

	if cmd.Bool("exact") {
		match = ptrie.Exact
	}

	list, err := names.ReadFile(file)
	if err != nil {
		return err
	}

	trie, err := names.Index(list)
	if err != nil {
		return err
	}

	a.log.Debug().Str("file", file).Int("names", len(list)).Int("nodes", trie.Size()).Msg("names indexed")

	var found int

	for name := range trie.Values(prefix, match) {
		if _, err := fmt.Fprintln(a.stdout, name); err != nil {
			return err
		}
		found++
	}

	a.log.Info().Str("prefix", prefix).Stringer("match", match).Int("found", found).Msg("query done")

	return nil
}
