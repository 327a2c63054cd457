package dto

import (
	"time"

	"github.com/google/uuid"
)

type SyncContentResponse struct {
	RemoteTotal int `json:"remote_total"`
	Added       int `json:"added"`
	Updated     int `json:"updated"`
	Unchanged   int `json:"unchanged"`
	Indexed     int `json:"indexed"`
	IndexFailed int `json:"index_failed"`
	// ChangedPageIds is for in-process callers that want to embed the
	// changed pages synchronously; it is not part of the HTTP response.
	ChangedPageIds []string `json:"-"`
}

// PublishEmbedPageMessage is the in-process message that asks the consumer
// to (re)embed one synced page. It carries the natural page id because
// freshly reconciled remote pages don't know their local surrogate id.
type PublishEmbedPageMessage struct {
	PageId string `json:"page_id"`
}

type ContentPageResponse struct {
	Id            uuid.UUID  `json:"id"`
	PageId        string     `json:"page_id"`
	Title         string     `json:"title"`
	Version       int        `json:"version"`
	Space         string     `json:"space"`
	SpaceKey      string     `json:"space_key"`
	LastUpdate    time.Time  `json:"last_update"`
	LastUpdater   string     `json:"last_updater"`
	Indexed       bool       `json:"indexed"`
	LastIndexedAt *time.Time `json:"last_indexed_at,omitempty"`
}
