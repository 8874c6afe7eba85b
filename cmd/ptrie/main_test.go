package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-ptrie/internal/names"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), append([]string{"ptrie"}, args...), &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func writeNames(t *testing.T, list ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, names.WriteFile(path, list))

	return path
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "names.txt")

	stdout, stderr, err := runCmd(t, "generate", "--file", path, "--count", "20", "--seed", "7")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	assert.Len(t, lines, 20)
	assert.Equal(t, strings.ToLower(string(data)), string(data))
	assert.Contains(t, stdout, "nodes: ")
	assert.Contains(t, stderr, "names written")

	// the same seed writes the same names
	again := filepath.Join(t.TempDir(), "names.txt")

	_, _, err = runCmd(t, "generate", "-f", again, "-n", "20", "--seed", "7")
	require.NoError(t, err)

	other, err := os.ReadFile(again)
	require.NoError(t, err)

	assert.Equal(t, string(data), string(other))
}

func TestQuery(t *testing.T) {
	t.Parallel()

	path := writeNames(t, "John", "Jody", "George", "Jo")

	for _, tcase := range []*struct {
		Name string
		Args []string
		Exp  string
	}{
		{"prefix", []string{"query", "--file", path, "jo"}, "jo\njohn\njody\n"},
		{"prefix upper case", []string{"query", "--file", path, "JO"}, "jo\njohn\njody\n"},
		{"exact", []string{"query", "--file", path, "--exact", "JODY"}, "jody\n"},
		{"exact prefix only", []string{"query", "-f", path, "-e", "geo"}, ""},
		{"no match", []string{"query", "-f", path, "x"}, ""},
		{"diverged", []string{"query", "-f", path, "jon"}, ""},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			t.Parallel()

			stdout, stderr, err := runCmd(t, tcase.Args...)
			require.NoError(t, err)

			assert.Equal(t, tcase.Exp, stdout)
			assert.Contains(t, stderr, "query done")
		})
	}
}

func TestQuery_Errors(t *testing.T) {
	t.Parallel()

	path := writeNames(t, "john")

	_, _, err := runCmd(t, "query", "--file", path)
	assert.Error(t, err)

	_, _, err = runCmd(t, "query", "--file", path, "a", "b")
	assert.Error(t, err)

	_, _, err = runCmd(t, "query", "--file", filepath.Join(t.TempDir(), "missing.txt"), "jo")
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	path := writeNames(t, "john", "jody")

	_, stderr, err := runCmd(t, "--log-level", "debug", "query", "-f", path, "jo")
	require.NoError(t, err)

	assert.Contains(t, stderr, "names indexed")
	assert.Contains(t, stderr, "found=2")

	_, stderr, err = runCmd(t, "--log-level", "error", "query", "-f", path, "jo")
	require.NoError(t, err)

	assert.Empty(t, stderr)

	_, _, err = runCmd(t, "--log-level", "loud", "query", "-f", path, "jo")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	var (
		dir  = t.TempDir()
		file = filepath.Join(dir, "names.txt")
		conf = filepath.Join(dir, "ptrie.yaml")
	)

	yaml := "names:\n  count: 5\n  seed: 3\n  file: " + file + "\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(conf, []byte(yaml), 0o600))

	stdout, stderr, err := runCmd(t, "-c", conf, "generate")
	require.NoError(t, err)

	list, err := names.ReadFile(file)
	require.NoError(t, err)

	assert.Len(t, list, 5)
	assert.Contains(t, stdout, "nodes: ")
	assert.Empty(t, stderr, "info records are dropped at warn level")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("names:\n  count: -1\n"), 0o600))

	_, _, err = runCmd(t, "-c", bad, "generate")
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	t.Parallel()

	path := writeNames(t, "john", "jody", "george", "jo", "ann")

	stdout, _, err := runCmd(t, "bench", "-f", path, "-i", "100", "-q", "jo", "-q", "George", "--readers", "3")
	require.NoError(t, err)

	assert.Contains(t, stdout, "PREFIX MATCH (100 iterations)")
	assert.Contains(t, stdout, "MEMORY")
	assert.Contains(t, stdout, "george: [george]")

	for _, query := range []string{"jo", "george"} {
		for _, kind := range []string{"scan", "trie"} {
			assert.Regexp(t, `(?m)^`+query+` +`+kind+` +\S+$`, stdout)
		}
	}

	_, _, err = runCmd(t, "bench", "-f", path, "--readers", "0")
	assert.Error(t, err)
}

func TestBench_GeneratedNames(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.txt")

	stdout, stderr, err := runCmd(t, "bench", "-f", missing, "-i", "10", "-q", "a")
	require.NoError(t, err)

	assert.Contains(t, stdout, "MEMORY")
	assert.Contains(t, stderr, "generating names")

	_, err = os.Stat(missing)
	assert.True(t, os.IsNotExist(err), "bench does not write the names file")
}
