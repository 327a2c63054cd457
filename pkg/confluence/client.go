// Package confluence fetches pages from a Confluence space over its REST
// API and maps them to local content entities.
package confluence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrSourceUnavailable reports that the remote content source could not be
// reached or rejected the request. Fetches are not retried here; retry and
// backoff belong to the caller.
var ErrSourceUnavailable = errors.New("content source unavailable")

type Client struct {
	BaseURL  string
	Username string
	APIKey   string
	Client   *http.Client
}

func NewClient(baseURL, username, apiKey string) *Client {
	return &Client{
		BaseURL:  baseURL,
		Username: username,
		APIKey:   apiKey,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Page is one remote content page with its body already cleaned to plain
// text.
type Page struct {
	PageId      string
	Title       string
	Body        string
	Space       string
	SpaceId     int64
	SpaceKey    string
	Type        string
	Version     int
	LastUpdate  time.Time
	LastUpdater string
}

// --- Wire structs (internal to this package) ---

type contentListResponse struct {
	Results []contentResult `json:"results"`
	Size    int             `json:"size"`
}

type contentResult struct {
	Id      string         `json:"id"`
	Type    string         `json:"type"`
	Title   string         `json:"title"`
	Space   contentSpace   `json:"space"`
	Version contentVersion `json:"version"`
	Body    contentBody    `json:"body"`
}

type contentSpace struct {
	Id   int64  `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

type contentVersion struct {
	Number int              `json:"number"`
	When   time.Time        `json:"when"`
	By     contentVersionBy `json:"by"`
}

type contentVersionBy struct {
	DisplayName string `json:"displayName"`
}

type contentBody struct {
	Storage contentBodyStorage `json:"storage"`
}

type contentBodyStorage struct {
	Value string `json:"value"`
}

// FetchAll retrieves every page of a space, paginating internally with the
// given page size. The returned slice is a single consistent snapshot; a
// failure on any request fails the whole fetch so the reconciler never
// diffs a partial view.
func (c *Client) FetchAll(ctx context.Context, spaceKey string, pageSize int) ([]Page, error) {
	if pageSize <= 0 {
		pageSize = 50
	}

	var pages []Page
	for start := 0; ; start += pageSize {
		params := url.Values{}
		params.Set("spaceKey", spaceKey)
		params.Set("type", "page")
		params.Set("start", strconv.Itoa(start))
		params.Set("limit", strconv.Itoa(pageSize))
		params.Set("expand", "history,space,version,body.storage")

		var list contentListResponse
		if err := c.get(ctx, "/rest/api/content?"+params.Encode(), &list); err != nil {
			return nil, err
		}

		for _, r := range list.Results {
			pages = append(pages, mapResult(r))
		}

		if list.Size < pageSize {
			break
		}
	}
	return pages, nil
}

// FetchOne retrieves a single page by its remote identifier.
func (c *Client) FetchOne(ctx context.Context, pageID string) (*Page, error) {
	params := url.Values{}
	params.Set("expand", "history,space,version,body.storage")

	var result contentResult
	if err := c.get(ctx, fmt.Sprintf("/rest/api/content/%s?%s", url.PathEscape(pageID), params.Encode()), &result); err != nil {
		return nil, err
	}

	page := mapResult(result)
	return &page, nil
}

func mapResult(r contentResult) Page {
	return Page{
		PageId:      r.Id,
		Title:       r.Title,
		Body:        Clean(r.Body.Storage.Value),
		Space:       r.Space.Name,
		SpaceId:     r.Space.Id,
		SpaceKey:    r.Space.Key,
		Type:        r.Type,
		Version:     r.Version.Number,
		LastUpdate:  r.Version.When,
		LastUpdater: r.Version.By.DisplayName,
	}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.Username, c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrSourceUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrSourceUnavailable, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
