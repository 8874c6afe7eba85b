package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/aglyzov/go-ptrie/internal/names"
	"github.com/aglyzov/go-ptrie/ptrie"
)

func (a *app) benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "compares prefix lookups in the trie against a scan of the names",
		Flags: []cli.Flag{
			fileFlag(),
			&cli.IntFlag{
				Name:    "iterations",
				Aliases: []string{"i"},
				Usage:   "lookups per query",
			},
			&cli.StringSliceFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "prefix to look up, may be repeated",
			},
			&cli.IntFlag{
				Name:  "readers",
				Usage: "number of goroutines sharing the lookups",
			},
		},
		Action: a.bench,
	}
}

func (a *app) bench(ctx context.Context, cmd *cli.Command) error {
	var (
		iterations = a.cfg.Bench.Iterations
		queries    = a.cfg.Bench.Queries
		readers    = a.cfg.Bench.Readers
	)

	if cmd.IsSet("iterations") {
		iterations = cmd.Int("iterations")
	}
	if cmd.IsSet("query") {
		queries = cmd.StringSlice("query")
	}
	queries = lowerAll(queries)
	if cmd.IsSet("readers") {
		readers = cmd.Int("readers")
	}
	if iterations <= 0 || readers <= 0 {
		return fmt.Errorf("invalid bench settings: iterations=%d readers=%d", iterations, readers)
	}

	list, err := a.benchNames(cmd)
	if err != nil {
		return err
	}

	trie, err := names.Index(list)
	if err != nil {
		return err
	}

	a.log.Info().Int("names", len(list)).Int("nodes", trie.Size()).Int("readers", readers).Msg("bench started")

	fmt.Fprintf(a.stdout, "PREFIX MATCH (%d iterations)\n", iterations)

	for _, query := range queries {
		scan, err := timeLookups(ctx, iterations, readers, func() int {
			var n int
			for _, name := range list {
				if strings.HasPrefix(name, query) {
					n++
				}
			}
			return n
		})
		if err != nil {
			return err
		}

		lookup, err := timeLookups(ctx, iterations, readers, func() int {
			var n int
			for range trie.Values(query, ptrie.Prefix) {
				n++
			}
			return n
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(a.stdout, "%-12s %-6s %14v\n", query, "scan", scan)
		fmt.Fprintf(a.stdout, "%-12s %-6s %14v\n", query, "trie", lookup)
	}

	return a.benchMemory(list, queries)
}

// benchNames reads the names file falling back to freshly generated names
// when there is no file yet.
func (a *app) benchNames(cmd *cli.Command) ([]string, error) {
	file := a.namesFile(cmd)

	list, err := names.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		a.log.Warn().Str("file", file).Msg("no names file, generating names")

		return lowerAll(names.Generate(a.cfg.Names.Count, a.cfg.Names.Seed)), nil
	}

	return list, err
}

// timeLookups runs lookup the given number of times spread over the readers
// and returns the elapsed wall time.
func timeLookups(ctx context.Context, iterations, readers int, lookup func() int) (time.Duration, error) {
	g, ctx := errgroup.WithContext(ctx)

	start := time.Now()

	for r := 0; r < readers; r++ {
		n := iterations / readers
		if r < iterations%readers {
			n++
		}

		g.Go(func() error {
			for i := 0; i < n; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				lookup()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return time.Since(start), nil
}

func (a *app) benchMemory(list, queries []string) error {
	var before, after runtime.MemStats

	runtime.GC()
	runtime.ReadMemStats(&before)

	trie, err := names.Index(list)
	if err != nil {
		return err
	}

	runtime.ReadMemStats(&after)

	fmt.Fprintln(a.stdout, "MEMORY")
	fmt.Fprintf(a.stdout, "heap allocated: %d bytes\n", after.TotalAlloc-before.TotalAlloc)
	fmt.Fprintf(a.stdout, "objects allocated: %d\n", after.Mallocs-before.Mallocs)
	fmt.Fprintf(a.stdout, "objects freed: %d\n", after.Frees-before.Frees)

	if len(queries) > 0 {
		var found []string
		for name := range trie.Values(queries[len(queries)-1], ptrie.Prefix) {
			found = append(found, name)
		}

		fmt.Fprintf(a.stdout, "%s: %v\n", queries[len(queries)-1], found)
	}

	return nil
}

func lowerAll(list []string) []string {
	low := make([]string, len(list))
	for i, s := range list {
		low[i] = strings.ToLower(s)
	}
	return low
}
