package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContentEmbedding struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	PageId         uuid.UUID `gorm:"type:uuid;index"`
	Document       string
	EmbeddingValue []float32
	ChunkIndex     int
	CreatedAt      time.Time
}
