// Package azure implements the search.Indexer contract against an
// Azure-AI-Search-compatible REST API.
package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"learning-assistant-be/pkg/search"
)

const apiVersion = "2023-11-01"

type Client struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

var _ search.Indexer = &Client{}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		Endpoint: endpoint,
		APIKey:   apiKey,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// --- Wire structs (internal to this package) ---

type indexDefinition struct {
	Name   string       `json:"name"`
	Fields []indexField `json:"fields"`
}

type indexField struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Key        bool   `json:"key,omitempty"`
	Searchable bool   `json:"searchable"`
}

type batchAction struct {
	Action string `json:"@search.action"`
	search.Document
}

type batchRequest struct {
	Value []batchAction `json:"value"`
}

type batchResponse struct {
	Value []batchResult `json:"value"`
}

type batchResult struct {
	Key          string `json:"key"`
	Status       bool   `json:"status"`
	ErrorMessage string `json:"errorMessage"`
	StatusCode   int    `json:"statusCode"`
}

// --- Interface Implementation ---

func (c *Client) HasIndex(ctx context.Context, name string) (bool, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/indexes/%s", url.PathEscape(name)), nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", search.ErrIndexUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: unexpected status %d checking index %s", search.ErrIndexUnavailable, resp.StatusCode, name)
	}
}

func (c *Client) CreateIndex(ctx context.Context, name string, fields []search.Field) error {
	def := indexDefinition{Name: name, Fields: make([]indexField, len(fields))}
	for i, f := range fields {
		fieldType := "Edm.String"
		if f.Type == "Int64" {
			fieldType = "Edm.Int64"
		}
		def.Fields[i] = indexField{
			Name:       f.Name,
			Type:       fieldType,
			Key:        f.Key,
			Searchable: f.Searchable,
		}
	}

	body, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("marshal index definition: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/indexes/%s", url.PathEscape(name)), body)
	if err != nil {
		return fmt.Errorf("%w: %v", search.ErrIndexUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: create index %s returned %d: %s", search.ErrIndexUnavailable, name, resp.StatusCode, string(respBody))
	}
	return nil
}

func (c *Client) UploadDocuments(ctx context.Context, index string, docs []search.Document) ([]search.DocumentResult, error) {
	batch := batchRequest{Value: make([]batchAction, len(docs))}
	for i, d := range docs {
		batch.Value[i] = batchAction{Action: "mergeOrUpload", Document: d}
	}

	body, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("marshal batch: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/indexes/%s/docs/index", url.PathEscape(index)), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", search.ErrIndexUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read batch response: %w", err)
	}

	// 207 carries per-document statuses, so it is handled like 200.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusMultiStatus {
		return nil, fmt.Errorf("%w: batch upload returned %d: %s", search.ErrIndexUnavailable, resp.StatusCode, string(respBody))
	}

	var parsed batchResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decode batch response: %w", err)
	}

	results := make([]search.DocumentResult, len(parsed.Value))
	for i, r := range parsed.Value {
		results[i] = search.DocumentResult{
			Key:       r.Key,
			Succeeded: r.Status,
			Message:   r.ErrorMessage,
		}
	}
	return results, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	endpoint := fmt.Sprintf("%s%s?api-version=%s", c.Endpoint, path, apiVersion)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.APIKey)

	return c.Client.Do(req)
}
