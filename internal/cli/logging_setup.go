package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/pagectl/internal/config"
	"github.com/rshade/pagectl/internal/logging"
)

// setupLogging configures logging from the config file and the --debug flag, and
// stores the logger in the command context. Any previously opened log file is closed.
// --debug forces debug level, console format and caller locations.
func (o *rootOptions) setupLogging(cmd *cobra.Command, loggingCfg config.LoggingConfig) {
	lc := loggingCfg.ToLoggingConfig()
	if o.debug {
		lc.Level = "debug"
		lc.Format = logging.FormatConsole
		lc.Caller = true
	}

	_ = o.logResult.Close()
	result := logging.NewLoggerWithPath(lc)
	o.logResult = &result
	o.logger = logging.ComponentLogger(result.Logger, "cli")

	if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := o.logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	o.logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")
}
