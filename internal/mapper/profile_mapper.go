package mapper

import (
	"encoding/json"

	"learning-assistant-be/internal/entity"
	"learning-assistant-be/internal/model"
	"learning-assistant-be/pkg/interview"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) (*entity.Profile, error) {
	if p == nil {
		return nil, nil
	}

	answers := make(map[string]interview.Answer)
	if len(p.Answers) > 0 {
		if err := json.Unmarshal(p.Answers, &answers); err != nil {
			return nil, err
		}
	}

	return &entity.Profile{
		Id:        p.Id,
		UserId:    p.UserId,
		Answers:   answers,
		CreatedAt: p.CreatedAt,
	}, nil
}

func (m *ProfileMapper) ToModel(p *entity.Profile) (*model.Profile, error) {
	if p == nil {
		return nil, nil
	}

	answers, err := json.Marshal(p.Answers)
	if err != nil {
		return nil, err
	}

	return &model.Profile{
		Id:        p.Id,
		UserId:    p.UserId,
		Answers:   answers,
		CreatedAt: p.CreatedAt,
	}, nil
}

func (m *ProfileMapper) ToEntities(profiles []*model.Profile) ([]*entity.Profile, error) {
	entities := make([]*entity.Profile, len(profiles))
	for i, p := range profiles {
		e, err := m.ToEntity(p)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
