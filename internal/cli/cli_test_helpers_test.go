package cli_test

import (
	"bytes"
	"testing"

	"github.com/rshade/pagectl/internal/cli"
)

// setupCLITest isolates the test from the user's home directory and environment.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PAGECTL_CONFIG", "")
	t.Setenv("PAGECTL_LOG_LEVEL", "error")
	t.Setenv("PAGECTL_LOG_FILE", "")
	return home
}

// executeCLI runs the root command with args and returns combined output.
func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
