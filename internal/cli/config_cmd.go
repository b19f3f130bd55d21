package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/pagectl/internal/config"
)

// newConfigInitCmd creates the config init command.
func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Example: `  # Create ~/.pagectl/config.yaml
  pagectl config init

  # Overwrite an existing file
  pagectl config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _, err := opts.resolveConfigPath()
			if err != nil {
				return err
			}

			if _, statErr := os.Stat(path); statErr == nil && !force {
				return errors.New("configuration file already exists, use --force to overwrite")
			}

			if err = config.New().Write(path); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration initialized at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	return cmd
}

// newConfigValidateCmd creates the config validate command.
func newConfigValidateCmd(opts *rootOptions) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _, err := opts.resolveConfigPath()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cfg, err := config.LoadWithEnv(path, opts.lookupEnv)
			if err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			fmt.Fprintln(out, "Configuration is valid")
			if verbose {
				fmt.Fprintf(out, "\nFile:        %s\n", path)
				fmt.Fprintf(out, "Version:     %s\n", cfg.Version)
				fmt.Fprintf(out, "Page sizes:  %v\n", cfg.Pagination.PageSizes)
				fmt.Fprintf(out, "Total items: %d\n", cfg.Pagination.TotalItems)
				fmt.Fprintf(out, "Log level:   %s\n", cfg.Logging.Level)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show configuration details")
	return cmd
}
