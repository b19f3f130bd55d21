package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rshade/pagectl/internal/config"
	"github.com/rshade/pagectl/internal/pagination"
)

// paginationFlags are command-line overrides for the pagination section of the config.
// Only flags the user actually set replace file values.
type paginationFlags struct {
	flags *pflag.FlagSet

	pageSizes         []int
	totalItems        int
	pagesUnknown      bool
	disabled          bool
	isLastPage        bool
	pageInputDisabled bool
	page              int
	pageSize          int
	locale            string
}

func addPaginationFlags(cmd *cobra.Command) *paginationFlags {
	f := &paginationFlags{flags: cmd.Flags()}
	fs := cmd.Flags()
	fs.IntSliceVar(&f.pageSizes, "page-sizes", nil, "selectable page sizes, first is the default")
	fs.IntVar(&f.totalItems, "total", 0, "total number of items")
	fs.BoolVar(&f.pagesUnknown, "pages-unknown", false, "treat the total as unknown")
	fs.BoolVar(&f.disabled, "disabled", false, "disable every navigation action")
	fs.BoolVar(&f.isLastPage, "last-page", false, "mark the current page as the last one")
	fs.BoolVar(&f.pageInputDisabled, "no-page-input", false, "hide direct page-number entry")
	fs.IntVar(&f.page, "page", 0, "forced page number (1-based)")
	fs.IntVar(&f.pageSize, "page-size", 0, "forced page size")
	fs.StringVar(&f.locale, "locale", "", "locale for digit grouping in range text (e.g. en, de)")
	return f
}

// apply overlays the changed flags onto a copy of cfg's pagination and labels sections.
func (f *paginationFlags) apply(cfg *config.Config) *config.Config {
	out := *cfg
	out.Pagination.PageSizes = append([]int(nil), cfg.Pagination.PageSizes...)

	p := &out.Pagination
	if f.flags.Changed("page-sizes") {
		p.PageSizes = append([]int(nil), f.pageSizes...)
	}
	if f.flags.Changed("total") {
		p.TotalItems = f.totalItems
	}
	if f.flags.Changed("pages-unknown") {
		p.PagesUnknown = f.pagesUnknown
	}
	if f.flags.Changed("disabled") {
		p.Disabled = f.disabled
	}
	if f.flags.Changed("last-page") {
		p.IsLastPage = f.isLastPage
	}
	if f.flags.Changed("no-page-input") {
		p.PageInputDisabled = f.pageInputDisabled
	}
	if f.flags.Changed("page") {
		p.Page = f.page
	}
	if f.flags.Changed("page-size") {
		p.PageSize = f.pageSize
	}
	if f.flags.Changed("locale") {
		out.Labels.Locale = f.locale
	}
	return &out
}

// resolve applies the flags to cfg and validates the combined result.
func (f *paginationFlags) resolve(cfg *config.Config) (*config.Config, error) {
	out := f.apply(cfg)
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// controllerOptions returns the text, labels and logger options for cfg.
func controllerOptions(cfg *config.Config, id string, opts *rootOptions) []pagination.Option {
	return []pagination.Option{
		pagination.WithID(id),
		pagination.WithText(cfg.Labels.Text()),
		pagination.WithLabels(cfg.Labels.ToLabels()),
		pagination.WithLogger(opts.logger),
	}
}
