package mapper

import (
	"github.com/pgvector/pgvector-go"

	"learning-assistant-be/internal/entity"
	"learning-assistant-be/internal/model"
)

type ContentEmbeddingMapper struct{}

func NewContentEmbeddingMapper() *ContentEmbeddingMapper {
	return &ContentEmbeddingMapper{}
}

func (m *ContentEmbeddingMapper) ToEntity(e *model.ContentEmbedding) *entity.ContentEmbedding {
	if e == nil {
		return nil
	}
	return &entity.ContentEmbedding{
		Id:             e.Id,
		PageId:         e.PageId,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *ContentEmbeddingMapper) ToModel(e *entity.ContentEmbedding) *model.ContentEmbedding {
	if e == nil {
		return nil
	}
	return &model.ContentEmbedding{
		Id:             e.Id,
		PageId:         e.PageId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *ContentEmbeddingMapper) ToEntities(embeddings []*model.ContentEmbedding) []*entity.ContentEmbedding {
	entities := make([]*entity.ContentEmbedding, len(embeddings))
	for i, e := range embeddings {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
