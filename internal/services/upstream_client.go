package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"xdimension/internal/models"
)

// Response shapes seen across upstream deployments. The adapter is driven by
// an explicit mode flag instead of guessing per request.
const (
	ListShapeData  = "data"
	ListShapeItems = "items"

	SearchShapeItem  = "item"
	SearchShapeItems = "items"
)

const searchAction = "search_game_items"

// UpstreamClient forwards item list and search requests to the third-party
// item API and reshapes responses into the local item representation.
type UpstreamClient struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	listShape   string
	searchShape string
}

// UpstreamResponse carries either the mapped items or, for non-JSON upstream
// bodies, the raw payload to pass through verbatim.
type UpstreamResponse struct {
	StatusCode  int
	IsJSON      bool
	ContentType string
	Raw         []byte
	Items       []models.GameItem
}

func NewUpstreamClient(httpClient *http.Client, baseURL, apiKey, listShape, searchShape string) *UpstreamClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if listShape == "" {
		listShape = ListShapeData
	}
	if searchShape == "" {
		searchShape = SearchShapeItem
	}
	return &UpstreamClient{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		listShape:   listShape,
		searchShape: searchShape,
	}
}

// ListItems fetches the upstream item list and maps it to GameItems with
// source "api". A non-JSON upstream body is returned raw with its status code.
func (c *UpstreamClient) ListItems(ctx context.Context) (UpstreamResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return UpstreamResponse{}, fmt.Errorf("create request: %w", err)
	}
	// An unset credential degrades to an empty header value upstream rather
	// than failing locally.
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UpstreamResponse{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if raw, ok, err := passthroughNonJSON(resp); err != nil {
		return UpstreamResponse{}, err
	} else if ok {
		return raw, nil
	}

	var parsed struct {
		Data  []upstreamItem `json:"data"`
		Items []upstreamItem `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return UpstreamResponse{}, fmt.Errorf("decode response: %w", err)
	}

	records := parsed.Data
	if c.listShape == ListShapeItems {
		records = parsed.Items
	}

	items := make([]models.GameItem, 0, len(records))
	for _, rec := range records {
		items = append(items, rec.toGameItem())
	}
	return UpstreamResponse{StatusCode: resp.StatusCode, IsJSON: true, Items: items}, nil
}

// SearchItems posts the keyword to the upstream endpoint and normalizes the
// match to an array, empty when nothing matched.
func (c *UpstreamClient) SearchItems(ctx context.Context, keyword string) (UpstreamResponse, error) {
	payload := map[string]string{
		"postBody": keyword,
		"action":   searchAction,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return UpstreamResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return UpstreamResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UpstreamResponse{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if raw, ok, err := passthroughNonJSON(resp); err != nil {
		return UpstreamResponse{}, err
	} else if ok {
		return raw, nil
	}

	var parsed struct {
		OK    bool           `json:"ok"`
		Item  *upstreamItem  `json:"item"`
		Items []upstreamItem `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return UpstreamResponse{}, fmt.Errorf("decode response: %w", err)
	}

	items := []models.GameItem{}
	if c.searchShape == SearchShapeItems {
		for _, rec := range parsed.Items {
			items = append(items, rec.toGameItem())
		}
	} else if parsed.OK && parsed.Item != nil {
		items = append(items, parsed.Item.toGameItem())
	}
	return UpstreamResponse{StatusCode: resp.StatusCode, IsJSON: true, Items: items}, nil
}

// passthroughNonJSON reads the body raw when the upstream answered with
// something other than JSON, e.g. an HTML error page.
func passthroughNonJSON(resp *http.Response) (UpstreamResponse, bool, error) {
	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		return UpstreamResponse{}, false, nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return UpstreamResponse{}, false, fmt.Errorf("read response: %w", err)
	}
	return UpstreamResponse{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Raw:         raw,
	}, true, nil
}

type upstreamItem struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Type        string      `json:"type"`
	Power       string      `json:"power"`
	Effect      string      `json:"effect"`
	Rarity      string      `json:"rarity"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl"`
	UserID      string      `json:"userId"`
	CreatedAt   *time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time  `json:"updatedAt"`
	FileName    *string     `json:"fileName"`
}

func (u upstreamItem) toGameItem() models.GameItem {
	id, _ := u.ID.Int64()
	item := models.GameItem{
		ID:          int(id),
		Name:        u.Name,
		Category:    u.Category,
		Type:        u.Type,
		Power:       u.Power,
		Effect:      u.Effect,
		Rarity:      u.Rarity,
		Description: u.Description,
		ImageURL:    u.ImageURL,
		UserID:      u.UserID,
		UpdatedAt:   u.UpdatedAt,
		FileName:    u.FileName,
		Source:      models.SourceAPI,
	}
	if u.CreatedAt != nil {
		item.CreatedAt = *u.CreatedAt
	}
	return item
}
