package events

import "time"

const (
	TypeContentSynced    = "CONTENT_SYNCED"
	TypeSyncRequested    = "CONTENT_SYNC_REQUESTED"
	TypeProfileCompleted = "PROFILE_COMPLETED"
)

// NewContentSynced is emitted after a reconciliation run has written the
// mirror and published to the search index.
func NewContentSynced(spaceKey string, added, updated, indexed int) Event {
	return BaseEvent{
		Type: TypeContentSynced,
		Data: map[string]interface{}{
			"space_key": spaceKey,
			"added":     added,
			"updated":   updated,
			"indexed":   indexed,
		},
		OccurredAt: time.Now(),
	}
}

// NewSyncRequested asks the sync subscriber to run an on-demand
// reconciliation.
func NewSyncRequested(spaceKey string) Event {
	return BaseEvent{
		Type: TypeSyncRequested,
		Data: map[string]interface{}{
			"space_key": spaceKey,
		},
		OccurredAt: time.Now(),
	}
}

// NewProfileCompleted is emitted when an interview finishes and the
// profile row has been appended.
func NewProfileCompleted(userID string, profileID string) Event {
	return BaseEvent{
		Type: TypeProfileCompleted,
		Data: map[string]interface{}{
			"user_id":    userID,
			"profile_id": profileID,
		},
		OccurredAt: time.Now(),
	}
}
