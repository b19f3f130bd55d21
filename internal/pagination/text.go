package pagination

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Text holds the formatting functions used to describe the current page.
type Text struct {
	// ItemRange formats the item window when the total is known.
	ItemRange func(first, last, total int) string
	// Item formats the item window when the total is unknown.
	Item func(first, last int) string
	// PageRange formats the page position when the total is known.
	PageRange func(current, total int) string
	// Page formats the page position when the total is unknown.
	Page func(current int) string
}

// DefaultText returns the stock formatting functions.
func DefaultText() Text {
	return Text{
		ItemRange: func(first, last, total int) string {
			return fmt.Sprintf("%d-%d of %d items", first, last, total)
		},
		Item: func(first, last int) string {
			return fmt.Sprintf("%d-%d items", first, last)
		},
		PageRange: func(current, total int) string {
			return fmt.Sprintf("%d of %d pages", current, total)
		},
		Page: func(current int) string {
			return fmt.Sprintf("page %d", current)
		},
	}
}

// LocalizedText returns formatting functions that group digits per tag,
// e.g. "1,001-1,010 of 12,500 items" for English.
func LocalizedText(tag language.Tag) Text {
	p := message.NewPrinter(tag)
	return Text{
		ItemRange: func(first, last, total int) string {
			return p.Sprintf("%d-%d of %d items", first, last, total)
		},
		Item: func(first, last int) string {
			return p.Sprintf("%d-%d items", first, last)
		},
		PageRange: func(current, total int) string {
			return p.Sprintf("%d of %d pages", current, total)
		},
		Page: func(current int) string {
			return p.Sprintf("page %d", current)
		},
	}
}

// withDefaults fills any nil function from DefaultText.
func (t Text) withDefaults() Text {
	d := DefaultText()
	if t.ItemRange == nil {
		t.ItemRange = d.ItemRange
	}
	if t.Item == nil {
		t.Item = d.Item
	}
	if t.PageRange == nil {
		t.PageRange = d.PageRange
	}
	if t.Page == nil {
		t.Page = d.Page
	}
	return t
}

// Labels are the static captions shown next to the navigation affordances.
type Labels struct {
	Backward     string `json:"backward"       yaml:"backward"`
	Forward      string `json:"forward"        yaml:"forward"`
	ItemsPerPage string `json:"items_per_page" yaml:"items_per_page"`
	PageNumber   string `json:"page_number"    yaml:"page_number"`
}

// DefaultLabels returns the stock captions.
func DefaultLabels() Labels {
	return Labels{
		Backward:     "Backward",
		Forward:      "Forward",
		ItemsPerPage: "items per page",
		PageNumber:   "Page Number",
	}
}

// WithDefaults fills empty captions from DefaultLabels.
func (l Labels) WithDefaults() Labels {
	d := DefaultLabels()
	if l.Backward == "" {
		l.Backward = d.Backward
	}
	if l.Forward == "" {
		l.Forward = d.Forward
	}
	if l.ItemsPerPage == "" {
		l.ItemsPerPage = d.ItemsPerPage
	}
	if l.PageNumber == "" {
		l.PageNumber = d.PageNumber
	}
	return l
}
