package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/aglyzov/go-ptrie/internal/names"
)

func (a *app) generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "writes random first names to the names file and prints their trie",
		Flags: []cli.Flag{
			fileFlag(),
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of names",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed of the generator, 0 picks a random one",
			},
		},
		Action: a.generate,
	}
}

func (a *app) generate(_ context.Context, cmd *cli.Command) error {
	var (
		file  = a.namesFile(cmd)
		count = a.cfg.Names.Count
		seed  = a.cfg.Names.Seed
	)

	if cmd.IsSet("count") {
		count = cmd.Int("count")
	}
	if cmd.IsSet("seed") {
		seed = cmd.Int64("seed")
	}
	if count <= 0 {
		return fmt.Errorf("invalid names count: %d", count)
	}

	list := names.Generate(count, seed)

	if err := names.WriteFile(file, list); err != nil {
		return err
	}

	a.log.Info().Str("file", file).Int("count", count).Msg("names written")

	trie, err := names.Index(list)
	if err != nil {
		return err
	}

	if err := trie.Dump(a.stdout); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.stdout, "nodes: %d\n", trie.Size())

	return err
}
