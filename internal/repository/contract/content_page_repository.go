package contract

import (
	"context"

	"learning-assistant-be/internal/entity"
	"learning-assistant-be/internal/repository/specification"
)

type ContentPageRepository interface {
	CreateAll(ctx context.Context, pages []*entity.ContentPage) error
	Update(ctx context.Context, page *entity.ContentPage) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContentPage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentPage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
