// FILE: internal/service/profile_service.go
package service

import (
	"context"

	"learning-assistant-be/internal/dto"
	"learning-assistant-be/internal/repository/specification"
	"learning-assistant-be/internal/repository/unitofwork"
)

type IProfileService interface {
	FindAllByUser(ctx context.Context, userID string) ([]dto.ProfileResponse, error)
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory) IProfileService {
	return &profileService{
		uowFactory: uowFactory,
	}
}

func (s *profileService) FindAllByUser(ctx context.Context, userID string) ([]dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profiles, err := uow.ProfileRepository().FindAll(ctx, specification.ByUserId{UserId: userID})
	if err != nil {
		return nil, err
	}

	res := make([]dto.ProfileResponse, len(profiles))
	for i, p := range profiles {
		answers := make(map[string]string, len(p.Answers))
		for key, ans := range p.Answers {
			answers[key] = ans.Display()
		}
		res[i] = dto.ProfileResponse{
			Id:        p.Id,
			UserId:    p.UserId,
			Answers:   answers,
			CreatedAt: p.CreatedAt,
		}
	}
	return res, nil
}
