package implementation

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"learning-assistant-be/internal/entity"
	"learning-assistant-be/internal/mapper"
	"learning-assistant-be/internal/model"
	"learning-assistant-be/internal/repository/contract"
	"learning-assistant-be/internal/repository/specification"
)

type ContentEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentEmbeddingMapper
}

func NewContentEmbeddingRepository(db *gorm.DB) contract.ContentEmbeddingRepository {
	return &ContentEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentEmbeddingMapper(),
	}
}

func (r *ContentEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContentEmbeddingRepositoryImpl) CreateAll(ctx context.Context, embeddings []*entity.ContentEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.ContentEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *ContentEmbeddingRepositoryImpl) DeleteByPageId(ctx context.Context, pageId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("page_id = ?", pageId).Delete(&model.ContentEmbedding{}).Error
}

// SearchSimilar returns the nearest chunks by cosine distance. Query
// vectors must be normalized; 1 - (a <=> b) is then the cosine similarity.
func (r *ContentEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredContentEmbedding, error) {
	queryVector := pgvector.NewVector(embedding)

	type row struct {
		model.ContentEmbedding
		Similarity float64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.ContentEmbedding{}).
		Select("content_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Order(gorm.Expr("embedding_value <=> ?", queryVector)).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredContentEmbedding, len(rows))
	for i := range rows {
		scored[i] = &contract.ScoredContentEmbedding{
			Embedding:  r.mapper.ToEntity(&rows[i].ContentEmbedding),
			Similarity: rows[i].Similarity,
		}
	}
	return scored, nil
}

func (r *ContentEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ContentEmbedding{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
