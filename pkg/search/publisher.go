package search

import (
	"context"
	"fmt"

	"learning-assistant-be/internal/entity"
)

// ContentFields is the index schema for synchronized content pages.
var ContentFields = []Field{
	{Name: "id", Type: "String", Key: true},
	{Name: "title", Type: "String", Searchable: true},
	{Name: "content", Type: "String", Searchable: true},
	{Name: "version", Type: "Int64"},
	{Name: "last_update", Type: "String"},
	{Name: "space", Type: "String", Searchable: true},
}

// Publisher makes reconciled content pages searchable. It does not retry
// failed documents; a layer above decides whether to re-run.
type Publisher struct {
	indexer   Indexer
	indexName string
}

func NewPublisher(indexer Indexer, indexName string) *Publisher {
	return &Publisher{
		indexer:   indexer,
		indexName: indexName,
	}
}

// EnsureIndex creates the content index if it does not exist yet. Calling
// it when the index is already present is a no-op.
func (p *Publisher) EnsureIndex(ctx context.Context) error {
	exists, err := p.indexer.HasIndex(ctx, p.indexName)
	if err != nil {
		return fmt.Errorf("check index %q: %w", p.indexName, err)
	}
	if exists {
		return nil
	}
	if err := p.indexer.CreateIndex(ctx, p.indexName, ContentFields); err != nil {
		return fmt.Errorf("create index %q: %w", p.indexName, err)
	}
	return nil
}

// Upsert maps the pages to flat documents and submits them as one batch.
// An empty input returns an empty report without touching the backend,
// which rejects zero-document batches.
func (p *Publisher) Upsert(ctx context.Context, pages []*entity.ContentPage) (UpsertReport, error) {
	if len(pages) == 0 {
		return UpsertReport{}, nil
	}

	docs := make([]Document, len(pages))
	for i, page := range pages {
		docs[i] = Document{
			ID:         page.PageId,
			Title:      page.Title,
			Content:    page.Body,
			Version:    page.Version,
			LastUpdate: page.LastUpdate.Format("2006-01-02T15:04:05Z07:00"),
			Space:      page.Space,
		}
	}

	results, err := p.indexer.UploadDocuments(ctx, p.indexName, docs)
	if err != nil {
		return UpsertReport{Submitted: len(docs)}, fmt.Errorf("upload %d documents: %w", len(docs), err)
	}

	report := UpsertReport{Submitted: len(docs)}
	for _, r := range results {
		if r.Succeeded {
			report.Succeeded++
		} else {
			report.Failed = append(report.Failed, r)
		}
	}
	return report, nil
}
