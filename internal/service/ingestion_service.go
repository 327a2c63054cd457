// FILE: internal/service/ingestion_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"learning-assistant-be/internal/dto"
	"learning-assistant-be/internal/entity"
	"learning-assistant-be/internal/pkg/logger"
	"learning-assistant-be/internal/repository/unitofwork"
	"learning-assistant-be/pkg/confluence"
	"learning-assistant-be/pkg/events"
	pkgNats "learning-assistant-be/pkg/nats"
	"learning-assistant-be/pkg/reconcile"
	"learning-assistant-be/pkg/search"

	"github.com/google/uuid"
)

// ContentSource supplies complete remote snapshots. The Confluence client
// is the production implementation.
type ContentSource interface {
	FetchAll(ctx context.Context, spaceKey string, pageSize int) ([]confluence.Page, error)
}

// IIngestionService mirrors the remote knowledge base into the local
// database and pushes changed pages to the search index.
type IIngestionService interface {
	Sync(ctx context.Context) (*dto.SyncContentResponse, error)
	ListPages(ctx context.Context) ([]dto.ContentPageResponse, error)
}

type ingestionService struct {
	source           ContentSource
	spaceKey         string
	pageSize         int
	uowFactory       unitofwork.RepositoryFactory
	indexPublisher   *search.Publisher
	publisherService IPublisherService
	eventPublisher   *pkgNats.Publisher
	log              logger.ILogger
}

func NewIngestionService(
	source ContentSource,
	spaceKey string,
	pageSize int,
	uowFactory unitofwork.RepositoryFactory,
	indexPublisher *search.Publisher,
	publisherService IPublisherService,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IIngestionService {
	return &ingestionService{
		source:           source,
		spaceKey:         spaceKey,
		pageSize:         pageSize,
		uowFactory:       uowFactory,
		indexPublisher:   indexPublisher,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

// Sync runs one full reconciliation pass: fetch the remote snapshot, diff
// it against the local mirror, write adds and updates, then index the
// changed pages. A failed remote fetch aborts the whole run; the mirror is
// never updated from a partial snapshot.
func (s *ingestionService) Sync(ctx context.Context) (*dto.SyncContentResponse, error) {
	pages, err := s.source.FetchAll(ctx, s.spaceKey, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch remote content: %w", err)
	}

	remote := make([]*entity.ContentPage, len(pages))
	for i, p := range pages {
		remote[i] = &entity.ContentPage{
			PageId:      p.PageId,
			Title:       p.Title,
			Body:        p.Body,
			Space:       p.Space,
			SpaceId:     p.SpaceId,
			SpaceKey:    p.SpaceKey,
			Type:        p.Type,
			Version:     p.Version,
			LastUpdate:  p.LastUpdate,
			LastUpdater: p.LastUpdater,
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	local, err := uow.ContentPageRepository().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load local mirror: %w", err)
	}

	result := reconcile.Reconcile(remote, local)

	now := time.Now()
	for _, page := range result.ToAdd {
		page.Id = uuid.New()
		page.CreatedAt = now
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin sync transaction: %w", err)
	}
	defer uow.Rollback()

	if len(result.ToAdd) > 0 {
		if err := uow.ContentPageRepository().CreateAll(ctx, result.ToAdd); err != nil {
			return nil, fmt.Errorf("insert %d pages: %w", len(result.ToAdd), err)
		}
	}
	for _, page := range result.ToUpdate {
		if err := uow.ContentPageRepository().Update(ctx, page); err != nil {
			return nil, fmt.Errorf("update page %s: %w", page.PageId, err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit sync transaction: %w", err)
	}

	changed := append(append([]*entity.ContentPage{}, result.ToAdd...), result.ToUpdate...)

	report, err := s.index(ctx, changed)
	if err != nil {
		// The mirror is already committed; indexing can be re-run later.
		s.log.Error("ingestion", "Indexing failed after mirror commit", map[string]interface{}{
			"changed": len(changed),
			"error":   err.Error(),
		})
	}

	s.enqueueEmbeddings(ctx, changed)

	if s.eventPublisher != nil {
		evt := events.NewContentSynced(s.spaceKey, len(result.ToAdd), len(result.ToUpdate), report.Succeeded)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("ingestion", "Failed to publish CONTENT_SYNCED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	changedIds := make([]string, len(changed))
	for i, page := range changed {
		changedIds[i] = page.PageId
	}

	return &dto.SyncContentResponse{
		RemoteTotal:    len(remote),
		Added:          len(result.ToAdd),
		Updated:        len(result.ToUpdate),
		Unchanged:      len(remote) - len(result.ToAdd) - len(result.ToUpdate),
		Indexed:        report.Succeeded,
		IndexFailed:    len(report.Failed),
		ChangedPageIds: changedIds,
	}, nil
}

func (s *ingestionService) ListPages(ctx context.Context) ([]dto.ContentPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pages, err := uow.ContentPageRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ContentPageResponse, len(pages))
	for i, p := range pages {
		res[i] = dto.ContentPageResponse{
			Id:            p.Id,
			PageId:        p.PageId,
			Title:         p.Title,
			Version:       p.Version,
			Space:         p.Space,
			SpaceKey:      p.SpaceKey,
			LastUpdate:    p.LastUpdate,
			LastUpdater:   p.LastUpdater,
			Indexed:       p.Indexed,
			LastIndexedAt: p.LastIndexedAt,
		}
	}
	return res, nil
}

// index pushes the changed pages to the search backend and marks the ones
// the backend accepted.
func (s *ingestionService) index(ctx context.Context, changed []*entity.ContentPage) (search.UpsertReport, error) {
	if len(changed) == 0 {
		return search.UpsertReport{}, nil
	}

	if err := s.indexPublisher.EnsureIndex(ctx); err != nil {
		return search.UpsertReport{}, err
	}

	report, err := s.indexPublisher.Upsert(ctx, changed)
	if err != nil {
		return report, err
	}

	failed := make(map[string]bool, len(report.Failed))
	for _, f := range report.Failed {
		failed[f.Key] = true
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()
	for _, page := range changed {
		if failed[page.PageId] {
			continue
		}
		page.Indexed = true
		page.LastIndexedAt = &now
		if err := uow.ContentPageRepository().Update(ctx, page); err != nil {
			s.log.Warn("ingestion", "Failed to mark page indexed", map[string]interface{}{
				"page_id": page.PageId,
				"error":   err.Error(),
			})
		}
	}

	return report, nil
}

// enqueueEmbeddings asks the consumer to re-embed each changed page.
// Delivery is best effort.
func (s *ingestionService) enqueueEmbeddings(ctx context.Context, changed []*entity.ContentPage) {
	for _, page := range changed {
		payload := dto.PublishEmbedPageMessage{PageId: page.PageId}
		data, err := json.Marshal(payload)
		if err != nil {
			continue
		}
		if err := s.publisherService.Publish(ctx, data); err != nil {
			s.log.Warn("ingestion", "Failed to enqueue embedding", map[string]interface{}{
				"page_id": page.PageId,
				"error":   err.Error(),
			})
		}
	}
}
