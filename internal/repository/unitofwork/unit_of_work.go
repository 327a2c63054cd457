package unitofwork

import (
	"context"

	"learning-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProfileRepository() contract.ProfileRepository
	ContentPageRepository() contract.ContentPageRepository
	ContentEmbeddingRepository() contract.ContentEmbeddingRepository
}
