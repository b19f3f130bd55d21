package pagination

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Navigation action names used in logs and change notifications.
const (
	ActionSizeChange = "size_change"
	ActionPageEntry  = "page_entry"
	ActionForward    = "forward"
	ActionBackward   = "backward"
)

// Controller owns the pagination state of one control instance.
//
// A Controller is not safe for concurrent use. Configuration pushes and user
// events must be serialized by the caller, and SetConfig must not be called
// from inside a ChangeFunc.
type Controller struct {
	id      string
	cfg     Config
	state   State
	text    Text
	labels  Labels
	emitter *Emitter
	logger  zerolog.Logger
}

// Option configures a Controller.
type Option func(*controllerOptions)

type controllerOptions struct {
	id       string
	onChange ChangeFunc
	text     Text
	labels   Labels
	logger   zerolog.Logger
}

// WithID sets the instance identifier supplied by the host.
func WithID(id string) Option {
	return func(o *controllerOptions) { o.id = id }
}

// WithOnChange sets the consumer notified after each accepted navigation.
func WithOnChange(fn ChangeFunc) Option {
	return func(o *controllerOptions) { o.onChange = fn }
}

// WithText overrides the display formatting functions. Nil fields keep the defaults.
func WithText(t Text) Option {
	return func(o *controllerOptions) { o.text = t }
}

// WithLabels overrides the affordance captions. Empty fields keep the defaults.
func WithLabels(l Labels) Option {
	return func(o *controllerOptions) { o.labels = l }
}

// WithLogger sets the logger used for navigation tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *controllerOptions) { o.logger = l }
}

// New creates a Controller seeded from cfg.
func New(cfg Config, opts ...Option) *Controller {
	o := controllerOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger.With().Str("component", "pagination").Logger()
	if o.id != "" {
		logger = logger.With().Str("pager_id", o.id).Logger()
	}

	c := &Controller{
		id:      o.id,
		cfg:     cfg,
		state:   Seed(cfg),
		text:    o.text.withDefaults(),
		labels:  o.labels.WithDefaults(),
		emitter: NewEmitter(o.onChange, logger),
		logger:  logger,
	}
	return c
}

// ID returns the instance identifier, empty if none was supplied.
func (c *Controller) ID() string {
	return c.id
}

// Config returns the configuration last applied.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns the current page coordinates.
func (c *Controller) State() State {
	return c.state
}

// Labels returns the affordance captions.
func (c *Controller) Labels() Labels {
	return c.labels
}

// SetConfig applies a new configuration through Reconcile. It never notifies the consumer.
func (c *Controller) SetConfig(next Config) {
	prev := c.cfg
	before := c.state
	c.state = Reconcile(prev, next, c.state)
	c.cfg = next

	if c.state != before {
		c.logger.Debug().
			Int("page", c.state.Page).
			Int("page_size", c.state.PageSize).
			Int("prev_page", before.Page).
			Int("prev_page_size", before.PageSize).
			Msg("state reconciled from configuration")
	}
}

// TotalPages returns the number of pages, or 0 when the total is unknown.
func (c *Controller) TotalPages() int {
	if c.cfg.PagesUnknown {
		return 0
	}
	return TotalPages(c.cfg.TotalItems, c.state.PageSize)
}

// lastPage is the highest page the forward gate allows; an empty collection still has page 1.
func (c *Controller) lastPage() int {
	return max(c.TotalPages(), 1)
}

// CanBackward reports whether the backward step is enabled.
func (c *Controller) CanBackward() bool {
	return !c.cfg.Disabled && c.state.Page > 1
}

// CanForward reports whether the forward step is enabled.
func (c *Controller) CanForward() bool {
	if c.cfg.Disabled || c.cfg.IsLastPage {
		return false
	}
	if c.cfg.PagesUnknown {
		return true
	}
	return c.state.Page < c.lastPage()
}

// PageInputEnabled reports whether the page-number entry should be offered.
func (c *Controller) PageInputEnabled() bool {
	return !c.cfg.PageInputDisabled && !c.cfg.PagesUnknown && !c.cfg.Disabled
}

// ChangeSize selects a new page size and returns to page 1.
// Sizes outside the configured menu are ignored.
func (c *Controller) ChangeSize(size int) bool {
	if c.cfg.Disabled || !c.cfg.HasPageSize(size) {
		c.reject(ActionSizeChange, size)
		return false
	}
	c.state = State{Page: DefaultPage, PageSize: size}
	c.emitter.Emit(ActionSizeChange, c.state)
	return true
}

// ChangeSizeInput is ChangeSize for the raw value produced by a size menu.
func (c *Controller) ChangeSizeInput(raw string) bool {
	return c.ChangeSize(parseNumber(raw))
}

// JumpTo moves to page when 0 < page <= TotalPages. Anything else is a silent no-op.
func (c *Controller) JumpTo(page int) bool {
	if c.cfg.Disabled || c.cfg.PagesUnknown || page <= 0 || page > c.TotalPages() {
		c.reject(ActionPageEntry, page)
		return false
	}
	c.state.Page = page
	c.emitter.Emit(ActionPageEntry, c.state)
	return true
}

// JumpToInput is JumpTo for raw text from a page-number field.
// Text that is not an integer is rejected like an out-of-range page.
func (c *Controller) JumpToInput(raw string) bool {
	return c.JumpTo(parseNumber(raw))
}

// Forward steps to the next page. Callers are expected to honor CanForward;
// a step taken while it is false is ignored.
func (c *Controller) Forward() bool {
	if !c.CanForward() {
		c.reject(ActionForward, c.state.Page+1)
		return false
	}
	c.state.Page++
	c.emitter.Emit(ActionForward, c.state)
	return true
}

// Backward steps to the previous page. Callers are expected to honor CanBackward;
// a step taken while it is false is ignored.
func (c *Controller) Backward() bool {
	if !c.CanBackward() {
		c.reject(ActionBackward, c.state.Page-1)
		return false
	}
	c.state.Page--
	c.emitter.Emit(ActionBackward, c.state)
	return true
}

// ItemText describes the item window of the current page.
func (c *Controller) ItemText() string {
	if c.cfg.PagesUnknown {
		return c.text.Item(c.state.FirstItem(), c.state.LastItem(-1))
	}
	return c.text.ItemRange(c.state.FirstItem(), c.state.LastItem(c.cfg.TotalItems), c.cfg.TotalItems)
}

// PageText describes the page position.
func (c *Controller) PageText() string {
	if c.cfg.PagesUnknown {
		return c.text.Page(c.state.Page)
	}
	return c.text.PageRange(c.state.Page, c.TotalPages())
}

func (c *Controller) reject(action string, requested int) {
	c.logger.Debug().
		Str("action", action).
		Int("requested", requested).
		Int("page", c.state.Page).
		Int("page_size", c.state.PageSize).
		Msg("navigation rejected")
}

// parseNumber converts raw affordance input to an integer; unparsable input yields 0.
func parseNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
