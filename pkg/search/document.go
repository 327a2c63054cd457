package search

import (
	"context"
	"errors"
)

// ErrIndexUnavailable reports that the search backend rejected an index
// create or a document batch outright. Partial per-document failures are
// reported through UpsertReport instead.
var ErrIndexUnavailable = errors.New("search index unavailable")

// Document is the flat shape submitted to the search index.
type Document struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Version    int    `json:"version"`
	LastUpdate string `json:"last_update"`
	Space      string `json:"space"`
}

// Field declares one column of an index schema.
type Field struct {
	Name       string
	Type       string
	Key        bool
	Searchable bool
}

// DocumentResult is the per-document outcome of a batch upload.
type DocumentResult struct {
	Key       string
	Succeeded bool
	Message   string
}

// UpsertReport summarizes one batch upsert.
type UpsertReport struct {
	Submitted int
	Succeeded int
	Failed    []DocumentResult
}

// Indexer is the consumed search-service capability. Implementations talk
// to a concrete backend; the publisher stays backend-agnostic.
type Indexer interface {
	HasIndex(ctx context.Context, name string) (bool, error)
	CreateIndex(ctx context.Context, name string, fields []Field) error
	UploadDocuments(ctx context.Context, index string, docs []Document) ([]DocumentResult, error)
}
