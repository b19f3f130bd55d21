package pagination

import "github.com/samber/lo"

// DefaultPage is the page a control starts on when none is forced.
const DefaultPage = 1

// Config is the externally owned configuration of a pagination control.
//
// Page and PageSize are controlled overrides. A zero value means the consumer
// did not supply one.
type Config struct {
	// PageSizes are the selectable page sizes in display order.
	PageSizes []int

	// TotalItems is the size of the collection. Ignored when PagesUnknown is set.
	TotalItems int

	// PagesUnknown marks a collection whose total cannot be computed.
	PagesUnknown bool

	// Disabled suppresses every navigation action.
	Disabled bool

	// IsLastPage signals that no further page exists regardless of TotalItems.
	IsLastPage bool

	// PageInputDisabled hides the page-number entry affordance.
	PageInputDisabled bool

	// Page is the forced page, 0 when not supplied.
	Page int

	// PageSize is the forced page size, 0 when not supplied.
	PageSize int
}

// forcedPage returns the forced page, treating an unsupplied page as DefaultPage.
func (c Config) forcedPage() int {
	if c.Page > 0 {
		return c.Page
	}
	return DefaultPage
}

// firstPageSize returns the first configured page size, or 0 if none are configured.
func (c Config) firstPageSize() int {
	if len(c.PageSizes) == 0 {
		return 0
	}
	return c.PageSizes[0]
}

// HasPageSize reports whether size is one of the configured page sizes.
func (c Config) HasPageSize(size int) bool {
	return lo.Contains(c.PageSizes, size)
}

// State is the control's own notion of where the user is.
type State struct {
	Page     int `json:"page"      yaml:"page"`
	PageSize int `json:"page_size" yaml:"page_size"`
}

// Seed derives the initial State from the first configuration a control sees.
// A forced page size that is not among PageSizes falls back to the first entry, and
// with a known total a forced page past the last page falls back to DefaultPage.
func Seed(cfg Config) State {
	pageSize := cfg.firstPageSize()
	if cfg.PageSize > 0 && cfg.HasPageSize(cfg.PageSize) {
		pageSize = cfg.PageSize
	}
	page := cfg.forcedPage()
	if !cfg.PagesUnknown && page > max(TotalPages(cfg.TotalItems, pageSize), 1) {
		page = DefaultPage
	}
	return State{
		Page:     page,
		PageSize: pageSize,
	}
}
