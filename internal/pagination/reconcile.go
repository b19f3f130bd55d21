package pagination

import "slices"

// Reconcile folds a configuration change into the control's state.
//
// The rules are applied in order against the previous configuration:
//  1. A changed PageSizes sequence (by ordered value) resets to the first size and page 1.
//  2. A changed forced Page is adopted, overriding the reset from rule 1.
//  3. A changed forced PageSize is adopted as-is. It is not checked against
//     PageSizes, unlike the seed path in Seed.
//
// A configuration identical in those three fields leaves s untouched.
// Reconcile never notifies the consumer.
func Reconcile(prev, next Config, s State) State {
	if !slices.Equal(prev.PageSizes, next.PageSizes) {
		s.PageSize = next.firstPageSize()
		s.Page = DefaultPage
	}
	if next.forcedPage() != prev.forcedPage() {
		s.Page = next.forcedPage()
	}
	if next.PageSize != prev.PageSize && next.PageSize > 0 {
		s.PageSize = next.PageSize
	}
	return s
}
