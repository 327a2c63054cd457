package mapper

import (
	"learning-assistant-be/internal/entity"
	"learning-assistant-be/internal/model"
)

type ContentPageMapper struct{}

func NewContentPageMapper() *ContentPageMapper {
	return &ContentPageMapper{}
}

func (m *ContentPageMapper) ToEntity(p *model.ContentPage) *entity.ContentPage {
	if p == nil {
		return nil
	}
	return &entity.ContentPage{
		Id:            p.Id,
		PageId:        p.PageId,
		Title:         p.Title,
		Body:          p.Body,
		Space:         p.Space,
		SpaceId:       p.SpaceId,
		SpaceKey:      p.SpaceKey,
		Type:          p.Type,
		Version:       p.Version,
		LastUpdate:    p.LastUpdate,
		LastUpdater:   p.LastUpdater,
		Indexed:       p.Indexed,
		LastIndexedAt: p.LastIndexedAt,
		CreatedAt:     p.CreatedAt,
	}
}

func (m *ContentPageMapper) ToModel(p *entity.ContentPage) *model.ContentPage {
	if p == nil {
		return nil
	}
	return &model.ContentPage{
		Id:            p.Id,
		PageId:        p.PageId,
		Title:         p.Title,
		Body:          p.Body,
		Space:         p.Space,
		SpaceId:       p.SpaceId,
		SpaceKey:      p.SpaceKey,
		Type:          p.Type,
		Version:       p.Version,
		LastUpdate:    p.LastUpdate,
		LastUpdater:   p.LastUpdater,
		Indexed:       p.Indexed,
		LastIndexedAt: p.LastIndexedAt,
		CreatedAt:     p.CreatedAt,
	}
}

func (m *ContentPageMapper) ToEntities(pages []*model.ContentPage) []*entity.ContentPage {
	entities := make([]*entity.ContentPage, len(pages))
	for i, p := range pages {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *ContentPageMapper) ToModels(pages []*entity.ContentPage) []*model.ContentPage {
	models := make([]*model.ContentPage, len(pages))
	for i, p := range pages {
		models[i] = m.ToModel(p)
	}
	return models
}
