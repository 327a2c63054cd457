package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByPageId filters content pages by their remote natural key
type ByPageId struct {
	PageId string
}

func (s ByPageId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("page_id = ?", s.PageId)
}

// BySpaceKey filters content pages by their space grouping
type BySpaceKey struct {
	SpaceKey string
}

func (s BySpaceKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("space_key = ?", s.SpaceKey)
}

// NotIndexed selects pages that have not been published to the search index
type NotIndexed struct{}

func (s NotIndexed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("indexed = ?", false)
}

// ByLocalPageId filters embeddings by the local surrogate id of their page
type ByLocalPageId struct {
	PageId uuid.UUID
}

func (s ByLocalPageId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("page_id = ?", s.PageId)
}
