package pagination

import "github.com/rs/zerolog"

// Change is the payload delivered to the consumer after an accepted navigation.
// It carries the full resulting state, not a delta.
type Change struct {
	Page     int `json:"page"      yaml:"page"`
	PageSize int `json:"page_size" yaml:"page_size"`
}

// ChangeFunc receives navigation changes.
type ChangeFunc func(Change)

// Emitter delivers exactly one Change per accepted navigation action.
type Emitter struct {
	onChange ChangeFunc
	logger   zerolog.Logger
}

// NewEmitter creates an Emitter. A nil fn is replaced with a no-op.
func NewEmitter(fn ChangeFunc, logger zerolog.Logger) *Emitter {
	if fn == nil {
		fn = func(Change) {}
	}
	return &Emitter{onChange: fn, logger: logger}
}

// Emit notifies the consumer of s.
func (e *Emitter) Emit(action string, s State) {
	e.logger.Debug().
		Str("action", action).
		Int("page", s.Page).
		Int("page_size", s.PageSize).
		Msg("pagination changed")
	e.onChange(Change{Page: s.Page, PageSize: s.PageSize})
}
