package reconcile

import (
	"testing"
	"time"

	"learning-assistant-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func page(pageId string, lastUpdate time.Time) *entity.ContentPage {
	return &entity.ContentPage{
		PageId:     pageId,
		Title:      "Page " + pageId,
		LastUpdate: lastUpdate,
	}
}

func TestReconcile(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		remote     []*entity.ContentPage
		local      []*entity.ContentPage
		wantAdd    []string
		wantUpdate []string
	}{
		{
			name:       "empty mirror adds everything",
			remote:     []*entity.ContentPage{page("1", base), page("2", base)},
			local:      nil,
			wantAdd:    []string{"1", "2"},
			wantUpdate: nil,
		},
		{
			name:       "identical snapshots are a no-op",
			remote:     []*entity.ContentPage{page("1", base), page("2", base)},
			local:      []*entity.ContentPage{page("1", base), page("2", base)},
			wantAdd:    nil,
			wantUpdate: nil,
		},
		{
			name:       "newer remote page is updated",
			remote:     []*entity.ContentPage{page("1", base.Add(time.Hour))},
			local:      []*entity.ContentPage{page("1", base)},
			wantAdd:    nil,
			wantUpdate: []string{"1"},
		},
		{
			name:       "older remote page is left alone",
			remote:     []*entity.ContentPage{page("1", base.Add(-time.Hour))},
			local:      []*entity.ContentPage{page("1", base)},
			wantAdd:    nil,
			wantUpdate: nil,
		},
		{
			name:       "equal timestamps count as up to date",
			remote:     []*entity.ContentPage{page("1", base)},
			local:      []*entity.ContentPage{page("1", base)},
			wantAdd:    nil,
			wantUpdate: nil,
		},
		{
			name: "mixed add, update and unchanged",
			remote: []*entity.ContentPage{
				page("1", base),
				page("2", base.Add(time.Minute)),
				page("3", base),
			},
			local: []*entity.ContentPage{
				page("2", base),
				page("3", base),
			},
			wantAdd:    []string{"1"},
			wantUpdate: []string{"2"},
		},
		{
			name:       "page deleted remotely is kept locally",
			remote:     []*entity.ContentPage{page("1", base)},
			local:      []*entity.ContentPage{page("1", base), page("9", base)},
			wantAdd:    nil,
			wantUpdate: nil,
		},
		{
			name: "duplicate local rows, last one wins",
			remote: []*entity.ContentPage{
				page("1", base.Add(time.Minute)),
			},
			local: []*entity.ContentPage{
				page("1", base.Add(2*time.Hour)),
				page("1", base), // later row shadows the earlier one
			},
			wantAdd:    nil,
			wantUpdate: []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reconcile(tt.remote, tt.local)
			assert.Equal(t, tt.wantAdd, pageIds(result.ToAdd))
			assert.Equal(t, tt.wantUpdate, pageIds(result.ToUpdate))
		})
	}
}

func TestReconcilePartition(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	remote := []*entity.ContentPage{
		page("1", base),
		page("2", base.Add(time.Hour)),
		page("3", base),
		page("4", base.Add(-time.Hour)),
		page("5", base),
	}
	local := []*entity.ContentPage{
		page("2", base),
		page("3", base),
		page("4", base),
	}

	result := Reconcile(remote, local)

	// Every remote page lands in exactly one bucket
	seen := make(map[string]int)
	for _, p := range result.ToAdd {
		seen[p.PageId]++
	}
	for _, p := range result.ToUpdate {
		seen[p.PageId]++
	}
	for _, n := range seen {
		assert.Equal(t, 1, n)
	}
	unchanged := len(remote) - len(result.ToAdd) - len(result.ToUpdate)
	assert.Equal(t, 3, len(result.ToAdd)+len(result.ToUpdate))
	assert.Equal(t, 2, unchanged)
}

func TestReconcilePreservesRemoteOrder(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	remote := []*entity.ContentPage{
		page("c", base),
		page("a", base),
		page("b", base),
	}

	result := Reconcile(remote, nil)
	assert.Equal(t, []string{"c", "a", "b"}, pageIds(result.ToAdd))
}

func pageIds(pages []*entity.ContentPage) []string {
	if len(pages) == 0 {
		return nil
	}
	ids := make([]string, len(pages))
	for i, p := range pages {
		ids[i] = p.PageId
	}
	return ids
}
