package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContentPage mirrors one unit of remote knowledge-base content. PageId is
// the natural key used for reconciliation; Id is a local surrogate that is
// generated once and never reused. Pages are never deleted by the sync
// engine.
type ContentPage struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PageId        string
	Title         string
	Body          string
	Space         string
	SpaceId       int64
	SpaceKey      string
	Type          string
	Version       int
	LastUpdate    time.Time
	LastUpdater   string
	Indexed       bool
	LastIndexedAt *time.Time
	CreatedAt     time.Time
}
