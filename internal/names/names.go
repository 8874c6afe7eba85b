// Package names generates sample first names and stores them one per line.
package names

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/aglyzov/go-ptrie/ptrie"
)

// Generate returns count random first names. The same non-zero seed always
// gives the same names; 0 picks a random seed.
func Generate(count int, seed int64) []string {
	var (
		faker = gofakeit.New(seed)
		names = make([]string, count)
	)

	for i := range names {
		names[i] = faker.FirstName()
	}

	return names
}

// Write writes the names lower-cased, one per line.
func Write(w io.Writer, names []string) error {
	bw := bufio.NewWriter(w)

	for _, name := range names {
		if _, err := bw.WriteString(strings.ToLower(name) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile replaces the file with the names.
func WriteFile(path string, names []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create names file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close names file: %w", cerr)
		}
	}()

	if err = Write(f, names); err != nil {
		return fmt.Errorf("failed to write names file: %w", err)
	}

	return nil
}

// Read reads names one per line skipping blank lines.
func Read(r io.Reader) ([]string, error) {
	var (
		names []string
		sc    = bufio.NewScanner(r)
	)

	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			names = append(names, name)
		}
	}

	return names, sc.Err()
}

// ReadFile reads names from a file.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open names file: %w", err)
	}
	defer f.Close()

	names, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read names file %s: %w", path, err)
	}

	return names, nil
}

// Index returns a trie mapping every name to itself.
func Index(names []string) (*ptrie.Trie[string], error) {
	var (
		trie = &ptrie.Trie[string]{}
		err  error
	)

	for _, name := range names {
		if trie, err = trie.Add(name, strings.ToLower(name)); err != nil {
			return nil, fmt.Errorf("failed to index %q: %w", name, err)
		}
	}

	return trie, nil
}
