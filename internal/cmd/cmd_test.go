package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/duel-client/internal/config"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	// Flag values survive between Execute calls.
	pf := root.PersistentFlags()
	pf.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	// Bindings made in init are lost on Reset.
	for key, name := range map[string]string{
		"config":         "config",
		"server.url":     "server",
		"server.timeout": "timeout",
		"logging.level":  "log-level",
		"logging.file":   "log-file",
		"ui.plain":       "plain",
		"ui.auto_start":  "auto-start",
	} {
		require.NoError(t, viper.BindPFlag(key, pf.Lookup(name)))
	}

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "duel", rootCmd.Use)

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"play", "config", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, rootCmd, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "duel "+Version)
}

func TestConfigInitWritesTemplate(t *testing.T) {
	dir := isolate(t)

	out, err := executeCommand(t, rootCmd, "config", "init")
	require.NoError(t, err)

	path := filepath.Join(dir, "duel", "config.yaml")
	assert.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed config.Config
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, "http://localhost:5000", parsed.Server.URL)
	assert.True(t, parsed.UI.AutoStart)

	_, err = executeCommand(t, rootCmd, "config", "init")
	assert.ErrorContains(t, err, "already exists")
}

func TestConfigShowMergesSources(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("server:\n  url: http://duel.test:8080\n"), 0o644))
	t.Setenv("DUEL_LOGGING_LEVEL", "debug")

	out, err := executeCommand(t, rootCmd, "config", "show", "--config", file)
	require.NoError(t, err)

	assert.Contains(t, out, "# Config file: "+file)
	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "http://duel.test:8080", shown.Server.URL)
	assert.Equal(t, "debug", shown.Logging.Level)
	assert.True(t, shown.UI.AutoStart)
}

func TestConfigShowRejectsBadURL(t *testing.T) {
	isolate(t)
	t.Setenv("DUEL_SERVER_URL", "ftp://nowhere")

	_, err := executeCommand(t, rootCmd, "config", "show")
	assert.ErrorContains(t, err, "server.url")
}
