package service

import (
	"context"
	"testing"
	"time"

	"learning-assistant-be/internal/entity"
	"learning-assistant-be/internal/repository/specification"
	"learning-assistant-be/pkg/confluence"
	"learning-assistant-be/pkg/search"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
)

type fakeContentSource struct {
	pages []confluence.Page
	err   error
}

func (f *fakeContentSource) FetchAll(ctx context.Context, spaceKey string, pageSize int) ([]confluence.Page, error) {
	return f.pages, f.err
}

type fakeContentPageRepo struct {
	local   []*entity.ContentPage
	created []*entity.ContentPage
	updated []*entity.ContentPage
}

func (r *fakeContentPageRepo) CreateAll(ctx context.Context, pages []*entity.ContentPage) error {
	r.created = append(r.created, pages...)
	return nil
}

func (r *fakeContentPageRepo) Update(ctx context.Context, page *entity.ContentPage) error {
	r.updated = append(r.updated, page)
	return nil
}

func (r *fakeContentPageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContentPage, error) {
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByPageId); ok {
			for _, p := range r.local {
				if p.PageId == byId.PageId {
					return p, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeContentPageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentPage, error) {
	return r.local, nil
}

func (r *fakeContentPageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.local)), nil
}

type fakeIndexer struct {
	hasIndex    bool
	createCalls int
	uploads     [][]search.Document
}

func (f *fakeIndexer) HasIndex(ctx context.Context, name string) (bool, error) {
	return f.hasIndex, nil
}

func (f *fakeIndexer) CreateIndex(ctx context.Context, name string, fields []search.Field) error {
	f.createCalls++
	f.hasIndex = true
	return nil
}

func (f *fakeIndexer) UploadDocuments(ctx context.Context, index string, docs []search.Document) ([]search.DocumentResult, error) {
	f.uploads = append(f.uploads, docs)
	results := make([]search.DocumentResult, len(docs))
	for i, d := range docs {
		results[i] = search.DocumentResult{Key: d.ID, Succeeded: true}
	}
	return results, nil
}

func newTestIngestionService(source ContentSource, pages *fakeContentPageRepo, indexer *fakeIndexer) IIngestionService {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	return NewIngestionService(
		source,
		"ENG",
		25,
		&fakeUowFactory{uow: &fakeUow{pages: pages}},
		search.NewPublisher(indexer, "content"),
		NewPublisherService(pubSub, "EMBED_PAGE_CONTENT"),
		nil,
		noopLogger{},
	)
}

func TestSyncAddsUpdatesAndIndexes(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	source := &fakeContentSource{
		pages: []confluence.Page{
			{PageId: "1", Title: "New Page", LastUpdate: base},
			{PageId: "2", Title: "Changed Page", LastUpdate: base.Add(time.Hour)},
			{PageId: "3", Title: "Stable Page", LastUpdate: base},
		},
	}
	pages := &fakeContentPageRepo{
		local: []*entity.ContentPage{
			{PageId: "2", Title: "Changed Page", LastUpdate: base},
			{PageId: "3", Title: "Stable Page", LastUpdate: base},
		},
	}
	indexer := &fakeIndexer{}

	svc := newTestIngestionService(source, pages, indexer)
	res, err := svc.Sync(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 3, res.RemoteTotal)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Unchanged)
	assert.Equal(t, 2, res.Indexed)
	assert.Equal(t, 0, res.IndexFailed)
	assert.ElementsMatch(t, []string{"1", "2"}, res.ChangedPageIds)

	// Added pages get a fresh surrogate id
	assert.Len(t, pages.created, 1)
	assert.NotEqual(t, pages.created[0].Id.String(), "00000000-0000-0000-0000-000000000000")

	// The missing index was created once, then both changed pages uploaded
	assert.Equal(t, 1, indexer.createCalls)
	assert.Len(t, indexer.uploads, 1)
	assert.Len(t, indexer.uploads[0], 2)
}

func TestSyncNoChangesSkipsIndex(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	source := &fakeContentSource{
		pages: []confluence.Page{{PageId: "1", LastUpdate: base}},
	}
	pages := &fakeContentPageRepo{
		local: []*entity.ContentPage{{PageId: "1", LastUpdate: base}},
	}
	indexer := &fakeIndexer{}

	svc := newTestIngestionService(source, pages, indexer)
	res, err := svc.Sync(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 0, res.Added)
	assert.Equal(t, 0, res.Updated)
	assert.Equal(t, 1, res.Unchanged)

	// Nothing changed, so the search backend is never touched
	assert.Equal(t, 0, indexer.createCalls)
	assert.Empty(t, indexer.uploads)
}

func TestSyncAbortsWhenSourceFails(t *testing.T) {
	source := &fakeContentSource{err: confluence.ErrSourceUnavailable}
	pages := &fakeContentPageRepo{}
	indexer := &fakeIndexer{}

	svc := newTestIngestionService(source, pages, indexer)
	_, err := svc.Sync(context.Background())

	assert.ErrorIs(t, err, confluence.ErrSourceUnavailable)
	assert.Empty(t, pages.created)
	assert.Empty(t, pages.updated)
	assert.Empty(t, indexer.uploads)
}
