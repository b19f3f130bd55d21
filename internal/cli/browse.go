package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/rshade/pagectl/internal/config"
	"github.com/rshade/pagectl/internal/logging"
	"github.com/rshade/pagectl/internal/pagination"
	"github.com/rshade/pagectl/internal/source"
	"github.com/rshade/pagectl/internal/tui"
)

// watcherStopTimeout bounds how long shutdown waits for the config watcher.
const watcherStopTimeout = 2 * time.Second

type browseParams struct {
	itemsPath string
	stream    bool
	watch     bool
	plain     bool
}

// newBrowseCmd creates the interactive browse command.
func newBrowseCmd(opts *rootOptions) *cobra.Command {
	var params browseParams
	var flags *paginationFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse items one page at a time",
		Long: `Browse a collection one page at a time.

Items come from --items (one per line) or are generated as "item N" up to --total.
On a terminal an interactive view opens; otherwise the current page and its range
text are printed.`,
		Example: `  # Page through a file
  pagectl browse --items words.txt

  # Open a synthetic stream of unknown length at page 3
  pagectl browse --total 200 --stream --page 3

  # Reload pagination settings whenever the config file changes
  pagectl browse --items words.txt --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, opts, flags, params)
		},
	}

	cmd.Flags().StringVar(&params.itemsPath, "items", "", "file with one item per line")
	cmd.Flags().BoolVar(&params.stream, "stream", false,
		"generate items as a stream whose total is unknown until it ends")
	cmd.Flags().BoolVar(&params.watch, "watch", false, "reload pagination settings when the config file changes")
	cmd.Flags().BoolVar(&params.plain, "plain", false, "print the current page instead of opening the interactive view")
	flags = addPaginationFlags(cmd)

	return cmd
}

func runBrowse(cmd *cobra.Command, opts *rootOptions, flags *paginationFlags, params browseParams) error {
	cfg, err := flags.resolve(opts.cfg)
	if err != nil {
		return err
	}

	src, err := newSource(cfg, params)
	if err != nil {
		return err
	}

	id := ulid.Make().String()
	if params.plain || !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
		return printPage(cmd.OutOrStdout(), cfg, src, id, opts)
	}

	// The interactive view owns the terminal, so logs go to a file.
	opts.setupLogging(cmd, cfg.Logging.WithFileFallback())
	if opts.logResult.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), opts.logResult.FilePath)
	}

	return runInteractive(cmd.Context(), cmd.OutOrStdout(), cfg, src, id, opts, flags, params.watch)
}

// newSource picks the item source described by cfg and params.
func newSource(cfg *config.Config, params browseParams) (source.Source, error) {
	if params.itemsPath != "" {
		return source.LinesFromFile(params.itemsPath)
	}
	return source.Sequence{
		Count:   cfg.Pagination.TotalItems,
		Unknown: params.stream || cfg.Pagination.PagesUnknown,
	}, nil
}

// printPage writes the seeded page and its range text without a terminal UI.
func printPage(w io.Writer, cfg *config.Config, src source.Source, id string, opts *rootOptions) error {
	pc := cfg.Pagination.ToPagination()
	if total, ok := src.Total(); ok {
		pc.TotalItems = total
	} else {
		pc.PagesUnknown = true
	}

	ctrl := pagination.New(pc, controllerOptions(cfg, id, opts)...)
	state := ctrl.State()
	if !known(src) && src.Exhausted(state.Offset(), state.PageSize) {
		pc.IsLastPage = true
		ctrl.SetConfig(pc)
	}

	var b strings.Builder
	for i, item := range src.Page(state.Offset(), state.PageSize) {
		fmt.Fprintf(&b, "%d. %s\n", state.Offset()+i+1, item)
	}
	snap := ctrl.Snapshot()
	fmt.Fprintf(&b, "\n%s\n%s\n", snap.ItemText, snap.PageText)

	_, err := io.WriteString(w, b.String())
	return err
}

func known(src source.Source) bool {
	_, ok := src.Total()
	return ok
}

// runInteractive runs the pager view until the user quits. An item chosen with enter
// is written to out.
func runInteractive(
	ctx context.Context,
	out io.Writer,
	cfg *config.Config,
	src source.Source,
	id string,
	opts *rootOptions,
	flags *paginationFlags,
	watch bool,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := tui.NewPagerModel(ctx, cfg.Pagination.ToPagination(), src, tui.PagerOptions{
		ID:     id,
		Text:   cfg.Labels.Text(),
		Labels: cfg.Labels.ToLabels(),
		OnChange: func(c pagination.Change) {
			opts.logger.Info().Ctx(ctx).
				Str("pager_id", id).
				Int("page", c.Page).
				Int("page_size", c.PageSize).
				Msg("page changed")
		},
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if watch {
		stop, err := startWatcher(ctx, opts, flags, p)
		if err != nil {
			return err
		}
		defer stop()
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running interactive view: %w", err)
	}

	if item, ok := model.Chosen(); ok {
		_, err := fmt.Fprintln(out, item)
		return err
	}
	return nil
}

// startWatcher pushes every valid reload of the config file into the running view.
func startWatcher(ctx context.Context, opts *rootOptions, flags *paginationFlags, p *tea.Program) (func(), error) {
	if opts.configPath == "" {
		return nil, errors.New("--watch requires a config file (use --config or create the default one with 'pagectl config init')")
	}

	w, err := config.NewWatcher(opts.configPath, config.DefaultDebounce, opts.lookupEnv, func(reloaded *config.Config) {
		merged, resolveErr := flags.resolve(reloaded)
		if resolveErr != nil {
			opts.logger.Warn().Ctx(ctx).Err(resolveErr).Msg("ignoring reloaded configuration")
			return
		}
		p.Send(tui.ConfigUpdatedMsg{Config: merged.Pagination.ToPagination()})
	}, opts.logger)
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}
	if err = w.Start(ctx); err != nil {
		return nil, fmt.Errorf("starting config watcher: %w", err)
	}

	return func() {
		if stopErr := w.Stop(watcherStopTimeout); stopErr != nil {
			opts.logger.Warn().Err(stopErr).Msg("config watcher did not stop cleanly")
		}
	}, nil
}
