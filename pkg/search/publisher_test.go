package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"learning-assistant-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

type fakeIndexer struct {
	hasIndex      bool
	hasIndexErr   error
	createCalls   int
	createErr     error
	uploadCalls   int
	uploadedDocs  []Document
	uploadResults []DocumentResult
	uploadErr     error
}

func (f *fakeIndexer) HasIndex(ctx context.Context, name string) (bool, error) {
	return f.hasIndex, f.hasIndexErr
}

func (f *fakeIndexer) CreateIndex(ctx context.Context, name string, fields []Field) error {
	f.createCalls++
	return f.createErr
}

func (f *fakeIndexer) UploadDocuments(ctx context.Context, index string, docs []Document) ([]DocumentResult, error) {
	f.uploadCalls++
	f.uploadedDocs = docs
	return f.uploadResults, f.uploadErr
}

func TestEnsureIndexCreatesWhenAbsent(t *testing.T) {
	indexer := &fakeIndexer{hasIndex: false}
	p := NewPublisher(indexer, "content")

	assert.NoError(t, p.EnsureIndex(context.Background()))
	assert.Equal(t, 1, indexer.createCalls)
}

func TestEnsureIndexIsIdempotent(t *testing.T) {
	indexer := &fakeIndexer{hasIndex: true}
	p := NewPublisher(indexer, "content")

	assert.NoError(t, p.EnsureIndex(context.Background()))
	assert.NoError(t, p.EnsureIndex(context.Background()))
	assert.Equal(t, 0, indexer.createCalls)
}

func TestEnsureIndexWrapsBackendError(t *testing.T) {
	indexer := &fakeIndexer{hasIndexErr: ErrIndexUnavailable}
	p := NewPublisher(indexer, "content")

	err := p.EnsureIndex(context.Background())
	assert.ErrorIs(t, err, ErrIndexUnavailable)
}

func TestUpsertEmptyBatchSkipsBackend(t *testing.T) {
	indexer := &fakeIndexer{}
	p := NewPublisher(indexer, "content")

	report, err := p.Upsert(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, UpsertReport{}, report)
	assert.Equal(t, 0, indexer.uploadCalls)
}

func TestUpsertMapsPagesToDocuments(t *testing.T) {
	lastUpdate := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	indexer := &fakeIndexer{
		uploadResults: []DocumentResult{{Key: "p-1", Succeeded: true}},
	}
	p := NewPublisher(indexer, "content")

	pages := []*entity.ContentPage{
		{
			PageId:     "p-1",
			Title:      "Go Basics",
			Body:       "cleaned body",
			Version:    3,
			LastUpdate: lastUpdate,
			Space:      "Engineering",
		},
	}

	report, err := p.Upsert(context.Background(), pages)
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Submitted)
	assert.Equal(t, 1, report.Succeeded)
	assert.Empty(t, report.Failed)

	assert.Len(t, indexer.uploadedDocs, 1)
	doc := indexer.uploadedDocs[0]
	assert.Equal(t, "p-1", doc.ID)
	assert.Equal(t, "Go Basics", doc.Title)
	assert.Equal(t, "cleaned body", doc.Content)
	assert.Equal(t, 3, doc.Version)
	assert.Equal(t, "2025-06-01T12:30:00Z", doc.LastUpdate)
	assert.Equal(t, "Engineering", doc.Space)
}

func TestUpsertReportsPartialFailures(t *testing.T) {
	indexer := &fakeIndexer{
		uploadResults: []DocumentResult{
			{Key: "p-1", Succeeded: true},
			{Key: "p-2", Succeeded: false, Message: "field too large"},
		},
	}
	p := NewPublisher(indexer, "content")

	pages := []*entity.ContentPage{
		{PageId: "p-1"},
		{PageId: "p-2"},
	}

	report, err := p.Upsert(context.Background(), pages)
	assert.NoError(t, err)
	assert.Equal(t, 2, report.Submitted)
	assert.Equal(t, 1, report.Succeeded)
	assert.Len(t, report.Failed, 1)
	assert.Equal(t, "p-2", report.Failed[0].Key)
	assert.Equal(t, "field too large", report.Failed[0].Message)
}

func TestUpsertWholeBatchFailure(t *testing.T) {
	indexer := &fakeIndexer{uploadErr: errors.New("503 service unavailable")}
	p := NewPublisher(indexer, "content")

	report, err := p.Upsert(context.Background(), []*entity.ContentPage{{PageId: "p-1"}})
	assert.Error(t, err)
	assert.Equal(t, 1, report.Submitted)
	assert.Equal(t, 0, report.Succeeded)
}
