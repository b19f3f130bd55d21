package pagination

// Snapshot is serializable metadata about the current page.
type Snapshot struct {
	ID               string `json:"id,omitempty"       yaml:"id,omitempty"`
	CurrentPage      int    `json:"current_page"       yaml:"current_page"`
	PageSize         int    `json:"page_size"          yaml:"page_size"`
	TotalPages       int    `json:"total_pages"        yaml:"total_pages"`
	TotalItems       int    `json:"total_items"        yaml:"total_items"`
	PagesUnknown     bool   `json:"pages_unknown"      yaml:"pages_unknown"`
	HasPrevious      bool   `json:"has_previous"       yaml:"has_previous"`
	HasNext          bool   `json:"has_next"           yaml:"has_next"`
	PageInputEnabled bool   `json:"page_input_enabled" yaml:"page_input_enabled"`
	ItemText         string `json:"item_text"          yaml:"item_text"`
	PageText         string `json:"page_text"          yaml:"page_text"`
}

// Snapshot captures the controller's current page metadata.
func (c *Controller) Snapshot() Snapshot {
	total := c.cfg.TotalItems
	if c.cfg.PagesUnknown {
		total = 0
	}
	return Snapshot{
		ID:               c.id,
		CurrentPage:      c.state.Page,
		PageSize:         c.state.PageSize,
		TotalPages:       c.TotalPages(),
		TotalItems:       total,
		PagesUnknown:     c.cfg.PagesUnknown,
		HasPrevious:      c.CanBackward(),
		HasNext:          c.CanForward(),
		PageInputEnabled: c.PageInputEnabled(),
		ItemText:         c.ItemText(),
		PageText:         c.PageText(),
	}
}
