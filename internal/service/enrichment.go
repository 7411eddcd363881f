package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/avc/account-marketplace/internal/domain"
)

// HTTPEnrichmentClient реализует domain.EnrichmentClient поверх
// HTTP API сервиса обогащения профилей.
type HTTPEnrichmentClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewEnrichmentClient создает новый EnrichmentClient
func NewEnrichmentClient(baseURL string) domain.EnrichmentClient {
	return &HTTPEnrichmentClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchProfile получает подписчиков и аватар по имени аккаунта
func (c *HTTPEnrichmentClient) FetchProfile(ctx context.Context, username string) (*domain.EnrichmentResult, error) {
	url := fmt.Sprintf("%s/api/profiles/%s", c.baseURL, username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("enrichment client: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCollaboratorUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var result domain.EnrichmentResult
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, fmt.Errorf("enrichment client: failed to decode response: %w", err)
		}
		return &result, nil

	case http.StatusNotFound:
		// Профиль не найден: листинг остается без обогащения
		return &domain.EnrichmentResult{}, nil

	case http.StatusTooManyRequests:
		// Слишком много запросов, нужно повторить позже
		retryAfter := resp.Header.Get("Retry-After")
		seconds, _ := strconv.Atoi(retryAfter)
		return nil, NewRateLimitError(time.Duration(seconds) * time.Second)

	default:
		return nil, fmt.Errorf("%w: unexpected status code %d", domain.ErrCollaboratorUnavailable, resp.StatusCode)
	}
}
