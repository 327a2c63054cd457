// Package reconcile computes the minimal set of remote content pages that
// must be written to the local mirror, by comparing last-update timestamps.
package reconcile

import (
	"learning-assistant-be/internal/entity"
)

// Result partitions a remote snapshot against the local mirror. Every
// remote page lands in exactly one of ToAdd, ToUpdate, or the implicit
// unchanged set; both slices preserve the relative order of the remote
// input.
type Result struct {
	ToAdd    []*entity.ContentPage
	ToUpdate []*entity.ContentPage
}

// Reconcile diffs a freshly fetched remote snapshot against the locally
// known pages. A page missing locally is added; a page whose remote
// LastUpdate is strictly newer than the local one is updated. Equal
// timestamps count as already up to date, so a same-instant edit is not
// re-written. Duplicate PageIds in local are tolerated, last one wins.
//
// Both inputs must be complete snapshots: diffing a partial remote fetch
// would misclassify pages, so callers fetch everything first.
func Reconcile(remote, local []*entity.ContentPage) Result {
	known := make(map[string]*entity.ContentPage, len(local))
	for _, p := range local {
		known[p.PageId] = p
	}

	var result Result
	for _, r := range remote {
		existing, ok := known[r.PageId]
		switch {
		case !ok:
			result.ToAdd = append(result.ToAdd, r)
		case r.LastUpdate.After(existing.LastUpdate):
			result.ToUpdate = append(result.ToUpdate, r)
		}
	}
	return result
}
