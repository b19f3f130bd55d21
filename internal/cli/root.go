// Package cli implements the pagectl command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/pagectl/internal/config"
	"github.com/rshade/pagectl/internal/logging"
)

// annotationSkipConfig marks commands that load the config file themselves.
const annotationSkipConfig = "pagectl/skip-config"

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// rootOptions carries state shared by every subcommand of one invocation.
type rootOptions struct {
	configPath string
	debug      bool

	lookupEnv func(string) (string, bool)
	cfg       *config.Config
	logResult *logging.LogPathResult
	logger    zerolog.Logger
}

// NewRootCmd creates the root Cobra command for the pagectl CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	opts := &rootOptions{lookupEnv: lookupEnv, logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:          "pagectl",
		Short:        "Page through item collections",
		Long:         "pagectl: browse large item collections one page at a time, or script page navigation headlessly",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !skipsConfigLoad(cmd) {
				if err := opts.loadConfig(); err != nil {
					return err
				}
			} else {
				opts.cfg = config.New()
				opts.cfg.ApplyEnv(opts.lookupEnv)
			}
			opts.setupLogging(cmd, opts.cfg.Logging)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return opts.logResult.Close()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default $PAGECTL_CONFIG or ~/.pagectl/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newBrowseCmd(opts), newNavCmd(opts), newConfigCmd(opts), newVersionCmd(ver))
	return cmd
}

const rootCmdExample = `  # Browse a file one line per item
  pagectl browse --items words.txt --page-sizes 10,25,50

  # Browse a synthetic stream whose length is unknown
  pagectl browse --total 500 --stream

  # Script navigation and print each change as JSON
  pagectl nav --total 23 --actions forward,forward,page=1,size=20 --output json

  # Write a default configuration file
  pagectl config init`

// skipsConfigLoad reports whether cmd or one of its parents loads the config itself.
func skipsConfigLoad(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationSkipConfig] != "" {
			return true
		}
	}
	return false
}

// resolveConfigPath returns the config path and whether the user named it explicitly.
func (o *rootOptions) resolveConfigPath() (string, bool, error) {
	if o.configPath != "" {
		return o.configPath, true, nil
	}
	if p, ok := o.lookupEnv(config.EnvConfigPath); ok && p != "" {
		return p, true, nil
	}
	p, err := config.DefaultPath()
	return p, false, err
}

// loadConfig reads the config file. A missing default file yields built-in defaults.
func (o *rootOptions) loadConfig() error {
	path, explicit, err := o.resolveConfigPath()
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) && !explicit {
		o.cfg = config.New()
		o.cfg.ApplyEnv(o.lookupEnv)
		return nil
	}

	cfg, err := config.LoadWithEnv(path, o.lookupEnv)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	o.cfg = cfg
	o.configPath = path
	return nil
}

// newConfigCmd creates the config command group.
func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration management commands",
		Annotations: map[string]string{annotationSkipConfig: "true"},
	}
	cmd.AddCommand(newConfigInitCmd(opts), newConfigValidateCmd(opts))
	return cmd
}

// newVersionCmd creates the version command.
func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the pagectl version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pagectl %s\n", ver)
		},
	}
}
