// Package listview renders the items of the current page for Bubble Tea views.
//
// The model holds only one page of items at a time. The host replaces them
// with SetItems whenever the pagination controller reports a new page, which
// resets the cursor to the top of the page.
package listview
