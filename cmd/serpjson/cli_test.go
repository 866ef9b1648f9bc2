package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/serpjson/cmd/serpjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCommands = []string{"convert", "clean", "history", "show", "delete"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range allCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParsesConvertFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"convert", "a.html", "b.html", "-o", "out", "--clean", "--pretty", "-c", "8", "--archive"})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.html", "b.html"}, cli.Convert.Files)
	assert.True(t, cli.Convert.Clean)
	assert.True(t, cli.Convert.Pretty)
	assert.True(t, cli.Convert.Archive)
	assert.Equal(t, 8, cli.Convert.Concurrency)
	assert.Equal(t, "out", filepath.Base(cli.Convert.Output))
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help shows kong output", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		helpOutput := stdout.String()
		for _, cmd := range allCommands {
			assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
		}
		assert.Contains(t, helpOutput, "Usage:", "Help should have Kong-style Usage prefix")
		assert.Contains(t, helpOutput, "Flags:", "Help should have Kong-style Flags section")
	})

	t.Run("requires a command", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()

		err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("converts, archives, lists, shows, and deletes end to end", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := filepath.Join(dir, "coffee.html")
		require.NoError(t, os.WriteFile(page, []byte(`<html><head><title>coffee - Google Search</title></head><body>
<div id="rso"><div class="vt6azd Ww4FFb"><a href="https://example.com"><h3>Example</h3><span class="VuuXrf">Example.com</span></a></div></div>
</body></html>`), 0644))
		dbPath := filepath.Join(dir, "archive.db")
		outDir := filepath.Join(dir, "out")

		run := func(args ...string) (string, error) {
			m := main.NewMain()
			m.DBPath = dbPath
			stdout := &bytes.Buffer{}
			err := m.Run(context.Background(), args, stdout, &bytes.Buffer{})
			return stdout.String(), err
		}

		out, err := run("convert", page, "-o", outDir, "--archive")
		require.NoError(t, err)
		assert.Contains(t, out, "Converted 1 pages")
		assert.Contains(t, out, "Archived 1 snapshots")

		b, err := os.ReadFile(filepath.Join(outDir, "coffee.json"))
		require.NoError(t, err)
		assert.Contains(t, string(b), `"organic_results":[{"position":1,"source":"Example.com","title":"Example","link":"https://example.com"`)

		out, err = run("history")
		require.NoError(t, err)
		assert.Contains(t, out, "coffee - Google Search")
		id := out[:36]

		out, err = run("show", id)
		require.NoError(t, err)
		assert.Contains(t, out, `"title": "coffee - Google Search"`)

		out, err = run("delete", id, "--force")
		require.NoError(t, err)
		assert.Contains(t, out, "Deleted snapshot")

		out, err = run("history")
		require.NoError(t, err)
		assert.Contains(t, out, "No snapshots found")
	})

	t.Run("keeps existing files in the output directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "pages")
		require.NoError(t, os.MkdirAll(dir, 0755))
		a := filepath.Join(dir, "a.html")
		b := filepath.Join(dir, "b.html")
		require.NoError(t, os.WriteFile(a, []byte("<html><head><title>a</title></head></html>"), 0644))
		require.NoError(t, os.WriteFile(b, []byte("<html><head><title>b</title></head></html>"), 0644))

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		err := m.Run(context.Background(), []string{"convert", a, "-o", dir}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
		for _, name := range []string{"a.html", "b.html", "a.json"} {
			_, err := os.Stat(filepath.Join(dir, name))
			assert.NoError(t, err, name)
		}
	})

	t.Run("recovers from a leftover staging directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := filepath.Join(dir, "a.html")
		require.NoError(t, os.WriteFile(page, []byte("<html><head><title>a</title></head></html>"), 0644))
		outDir := filepath.Join(dir, "out")
		require.NoError(t, os.MkdirAll(outDir+".tmp", 0755))
		require.NoError(t, os.WriteFile(filepath.Join(outDir+".tmp", "a.json"), []byte("{}"), 0644))

		m := main.NewMain()
		m.DBPath = filepath.Join(dir, "test.db")

		err := m.Run(context.Background(), []string{"convert", page, "-o", outDir}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(outDir, "a.json"))
		require.NoError(t, err)
		assert.Contains(t, string(content), `"title":"a"`)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfg := filepath.Join(dir, "serpjson.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte("selectors:\n  organic.nope: [div]\n"), 0644))
		page := filepath.Join(dir, "page.html")
		require.NoError(t, os.WriteFile(page, []byte("<html></html>"), 0644))

		stderr := &bytes.Buffer{}
		m := main.NewMain()
		m.DBPath = filepath.Join(dir, "test.db")

		err := m.Run(context.Background(), []string{"--config", cfg, "convert", page}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "organic.nope")
	})
}
