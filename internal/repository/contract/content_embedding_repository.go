package contract

import (
	"context"

	"github.com/google/uuid"

	"learning-assistant-be/internal/entity"
	"learning-assistant-be/internal/repository/specification"
)

// ScoredContentEmbedding pairs an embedding row with its cosine similarity
// to a query vector.
type ScoredContentEmbedding struct {
	Embedding  *entity.ContentEmbedding
	Similarity float64
}

type ContentEmbeddingRepository interface {
	CreateAll(ctx context.Context, embeddings []*entity.ContentEmbedding) error
	DeleteByPageId(ctx context.Context, pageId uuid.UUID) error
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*ScoredContentEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
