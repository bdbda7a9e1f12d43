package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZoVoS/welsh-advanced/internal/models"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

// BackendAPI reads categories and items from a remote quiz backend
// exposing /api/categories and /api/category/{id}/items.
type BackendAPI struct {
	baseURL string
	client  *http.Client
}

func NewBackendAPI(baseURL string, timeout time.Duration) *BackendAPI {
	return &BackendAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (b *BackendAPI) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := b.get(ctx, "/api/categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return categories, nil
}

func (b *BackendAPI) Items(ctx context.Context, categoryID string) ([]models.VocabularyItem, error) {
	var items []models.VocabularyItem
	path := fmt.Sprintf("/api/category/%s/items", url.PathEscape(categoryID))
	if err := b.get(ctx, path, &items); err != nil {
		return nil, fmt.Errorf("failed to get items of %s: %w", categoryID, err)
	}

	for i := range items {
		fillVariants(&items[i])
	}

	return items, nil
}

func (b *BackendAPI) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

// fillVariants applies the backend's defaults for items that arrive
// without variant lists.
func fillVariants(item *models.VocabularyItem) {
	if len(item.EnglishTexts) == 0 && item.English != "" {
		item.EnglishTexts = []string{item.English}
	}
	if len(item.WelshTexts) == 0 && item.Welsh != "" {
		item.WelshTexts = []string{item.Welsh}
	}
}
