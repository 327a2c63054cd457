package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"learning-assistant-be/internal/entity"
	"learning-assistant-be/internal/mapper"
	"learning-assistant-be/internal/model"
	"learning-assistant-be/internal/repository/contract"
	"learning-assistant-be/internal/repository/specification"
)

type ContentPageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentPageMapper
}

func NewContentPageRepository(db *gorm.DB) contract.ContentPageRepository {
	return &ContentPageRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentPageMapper(),
	}
}

func (r *ContentPageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContentPageRepositoryImpl) CreateAll(ctx context.Context, pages []*entity.ContentPage) error {
	if len(pages) == 0 {
		return nil
	}
	models := r.mapper.ToModels(pages)
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*pages[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *ContentPageRepositoryImpl) Update(ctx context.Context, page *entity.ContentPage) error {
	m := r.mapper.ToModel(page)
	if err := r.db.WithContext(ctx).Model(&model.ContentPage{}).
		Where("page_id = ?", m.PageId).
		Updates(map[string]interface{}{
			"title":           m.Title,
			"body":            m.Body,
			"space":           m.Space,
			"space_id":        m.SpaceId,
			"space_key":       m.SpaceKey,
			"type":            m.Type,
			"version":         m.Version,
			"last_update":     m.LastUpdate,
			"last_updater":    m.LastUpdater,
			"indexed":         m.Indexed,
			"last_indexed_at": m.LastIndexedAt,
		}).Error; err != nil {
		return err
	}
	return nil
}

func (r *ContentPageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContentPage, error) {
	var m model.ContentPage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ContentPageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentPage, error) {
	var models []*model.ContentPage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ContentPageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ContentPage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
