package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeed(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want State
	}{
		{
			name: "defaults",
			cfg:  Config{PageSizes: []int{10, 20, 50}},
			want: State{Page: 1, PageSize: 10},
		},
		{
			name: "forced page and member size",
			cfg:  Config{PageSizes: []int{10, 20, 50}, TotalItems: 100, Page: 3, PageSize: 20},
			want: State{Page: 3, PageSize: 20},
		},
		{
			name: "forced page past the last page falls back to first",
			cfg:  Config{PageSizes: []int{10}, TotalItems: 23, Page: 9},
			want: State{Page: 1, PageSize: 10},
		},
		{
			name: "forced last page is kept",
			cfg:  Config{PageSizes: []int{10}, TotalItems: 23, Page: 3},
			want: State{Page: 3, PageSize: 10},
		},
		{
			name: "forced page on an empty collection",
			cfg:  Config{PageSizes: []int{10}, Page: 2},
			want: State{Page: 1, PageSize: 10},
		},
		{
			name: "forced page range uses the seeded size",
			cfg:  Config{PageSizes: []int{10, 50}, TotalItems: 100, Page: 5, PageSize: 50},
			want: State{Page: 1, PageSize: 50},
		},
		{
			name: "unknown total keeps any forced page",
			cfg:  Config{PageSizes: []int{10}, PagesUnknown: true, Page: 40},
			want: State{Page: 40, PageSize: 10},
		},
		{
			name: "forced size not in menu falls back to first",
			cfg:  Config{PageSizes: []int{10, 20, 50}, PageSize: 25},
			want: State{Page: 1, PageSize: 10},
		},
		{
			name: "menu order decides the fallback",
			cfg:  Config{PageSizes: []int{50, 10}, PageSize: 7},
			want: State{Page: 1, PageSize: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Seed(tt.cfg))
		})
	}
}

func TestSeed_NonMemberSizeAlwaysFallsBack(t *testing.T) {
	menus := [][]int{{10}, {10, 20, 50}, {5, 15, 25, 100}, {100, 1}}
	for _, menu := range menus {
		for forced := 1; forced <= 120; forced++ {
			cfg := Config{PageSizes: menu, PageSize: forced}
			got := Seed(cfg)
			if cfg.HasPageSize(forced) {
				assert.Equal(t, forced, got.PageSize)
			} else {
				assert.Equal(t, menu[0], got.PageSize, "menu %v forced %d", menu, forced)
			}
		}
	}
}

func TestReconcile(t *testing.T) {
	base := Config{PageSizes: []int{10, 20, 50}, TotalItems: 500}

	tests := []struct {
		name  string
		prev  Config
		next  Config
		state State
		want  State
	}{
		{
			name:  "unchanged config keeps user state",
			prev:  base,
			next:  base,
			state: State{Page: 7, PageSize: 20},
			want:  State{Page: 7, PageSize: 20},
		},
		{
			name:  "equal menu in a new slice is not a change",
			prev:  base,
			next:  Config{PageSizes: []int{10, 20, 50}, TotalItems: 500},
			state: State{Page: 4, PageSize: 50},
			want:  State{Page: 4, PageSize: 50},
		},
		{
			name:  "total items change alone keeps state",
			prev:  base,
			next:  Config{PageSizes: []int{10, 20, 50}, TotalItems: 12},
			state: State{Page: 4, PageSize: 50},
			want:  State{Page: 4, PageSize: 50},
		},
		{
			name:  "changed menu resets",
			prev:  base,
			next:  Config{PageSizes: []int{25, 100}},
			state: State{Page: 9, PageSize: 20},
			want:  State{Page: 1, PageSize: 25},
		},
		{
			name:  "reordered menu counts as changed",
			prev:  base,
			next:  Config{PageSizes: []int{50, 20, 10}},
			state: State{Page: 2, PageSize: 10},
			want:  State{Page: 1, PageSize: 50},
		},
		{
			name:  "forced page adopted",
			prev:  base,
			next:  Config{PageSizes: []int{10, 20, 50}, Page: 6},
			state: State{Page: 2, PageSize: 10},
			want:  State{Page: 6, PageSize: 10},
		},
		{
			name:  "forced page overrides menu reset",
			prev:  base,
			next:  Config{PageSizes: []int{30}, Page: 4},
			state: State{Page: 2, PageSize: 10},
			want:  State{Page: 4, PageSize: 30},
		},
		{
			name:  "cleared forced page returns to default",
			prev:  Config{PageSizes: []int{10}, Page: 5},
			next:  Config{PageSizes: []int{10}},
			state: State{Page: 8, PageSize: 10},
			want:  State{Page: 1, PageSize: 10},
		},
		{
			name:  "same forced page is not re-applied",
			prev:  Config{PageSizes: []int{10}, Page: 5},
			next:  Config{PageSizes: []int{10}, Page: 5},
			state: State{Page: 8, PageSize: 10},
			want:  State{Page: 8, PageSize: 10},
		},
		{
			name:  "forced page size adopted",
			prev:  base,
			next:  Config{PageSizes: []int{10, 20, 50}, PageSize: 50},
			state: State{Page: 3, PageSize: 10},
			want:  State{Page: 3, PageSize: 50},
		},
		{
			// Known inconsistency: the reconcile path skips the menu membership check
			// that Seed applies.
			name:  "forced page size outside menu is adopted anyway",
			prev:  base,
			next:  Config{PageSizes: []int{10, 20, 50}, PageSize: 33},
			state: State{Page: 3, PageSize: 10},
			want:  State{Page: 3, PageSize: 33},
		},
		{
			name:  "cleared forced page size keeps current size",
			prev:  Config{PageSizes: []int{10, 20}, PageSize: 20},
			next:  Config{PageSizes: []int{10, 20}},
			state: State{Page: 2, PageSize: 20},
			want:  State{Page: 2, PageSize: 20},
		},
		{
			name:  "all three rules together",
			prev:  base,
			next:  Config{PageSizes: []int{5, 15}, Page: 3, PageSize: 15},
			state: State{Page: 9, PageSize: 50},
			want:  State{Page: 3, PageSize: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reconcile(tt.prev, tt.next, tt.state))
		})
	}
}
