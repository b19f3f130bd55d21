// Command pagectl pages through item collections interactively or from scripts.
package main

import (
	"errors"
	"os"

	"github.com/rshade/pagectl/internal/cli"
	"github.com/rshade/pagectl/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // build-time injection target.
var version = "dev"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	root := cli.NewRootCmd(version)
	root.SetArgs(args)
	return exitCode(root.Execute())
}

// exitCode maps an error to an exit code. Bad scripts and bad config are usage errors.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, cli.ErrUnknownAction),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, config.ErrUnsupportedVersion):
		return exitUsage
	default:
		return exitError
	}
}
