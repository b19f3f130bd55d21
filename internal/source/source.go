// Package source provides item collections that a pagination front end pages through.
//
// A Source plays the consumer role: it is told which page to show and returns that
// page's items. The pagination controller itself never sees the items.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Source is a pageable item collection.
type Source interface {
	// Total returns the number of items and whether that number is known.
	Total() (int, bool)
	// Page returns up to limit items starting at offset.
	Page(offset, limit int) []string
	// Exhausted reports whether the stream ends at or before offset+limit.
	// Sources with a known total may always return false.
	Exhausted(offset, limit int) bool
}

// Lines is an in-memory collection with one item per input line.
type Lines struct {
	items []string
}

// NewLines reads every line from r.
func NewLines(r io.Reader) (*Lines, error) {
	var items []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		items = append(items, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return &Lines{items: items}, nil
}

// LinesFromFile reads items from the file at path.
func LinesFromFile(path string) (*Lines, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening items file: %w", err)
	}
	defer f.Close()
	return NewLines(f)
}

// Total returns the line count.
func (l *Lines) Total() (int, bool) {
	return len(l.items), true
}

// Page returns the lines in [offset, offset+limit).
func (l *Lines) Page(offset, limit int) []string {
	start, end := clamp(offset, limit, len(l.items))
	return l.items[start:end]
}

// Exhausted always returns false; the total is known.
func (l *Lines) Exhausted(int, int) bool {
	return false
}

// Sequence is a synthetic collection of "item N" entries.
// When Unknown is set it reports no total and only signals exhaustion
// once a page reaches Count, which models a streaming source.
type Sequence struct {
	Count   int
	Unknown bool
}

// Total returns Count, known unless Unknown is set.
func (s Sequence) Total() (int, bool) {
	if s.Unknown {
		return 0, false
	}
	return s.Count, true
}

// Page generates the entries in [offset, offset+limit).
func (s Sequence) Page(offset, limit int) []string {
	start, end := clamp(offset, limit, s.Count)
	items := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, "item "+strconv.Itoa(i+1))
	}
	return items
}

// Exhausted reports whether the page ending at offset+limit reaches the end of the stream.
func (s Sequence) Exhausted(offset, limit int) bool {
	return s.Unknown && offset+limit >= s.Count
}

func clamp(offset, limit, n int) (int, int) {
	start := max(offset, 0)
	if start > n {
		start = n
	}
	end := start + max(limit, 0)
	if end > n {
		end = n
	}
	return start, end
}
