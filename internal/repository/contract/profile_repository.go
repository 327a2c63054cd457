package contract

import (
	"context"

	"learning-assistant-be/internal/entity"
	"learning-assistant-be/internal/repository/specification"
)

// ProfileRepository persists completed interview profiles. Append is
// all-or-nothing for one profile; there is no update or delete.
type ProfileRepository interface {
	Append(ctx context.Context, profile *entity.Profile) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
