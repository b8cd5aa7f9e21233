// Package tmdb wraps the TMDB HTTP API behind domain.CatalogRepository.
// It is a pure request/response layer: no caching, no retries, no
// business logic.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rgray/cinelog/internal/domain"
)

const (
	// DefaultBaseURL is the production TMDB API root
	DefaultBaseURL = "https://api.themoviedb.org/3"

	defaultTimeout  = 30 * time.Second
	defaultLanguage = "en-US"
	userAgent       = "Cinelog/1.0"
)

// Client implements domain.CatalogRepository for TMDB
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new TMDB API client. An empty baseURL selects the
// production API; an empty language selects en-US.
func NewClient(baseURL, apiKey, language string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if language == "" {
		language = defaultLanguage
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: language,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated GET against the API
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("tmdb request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("tmdb request failed", "error", err)
		return nil, domain.ErrCatalogUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized:
		return nil, domain.ErrAuthFailed
	case http.StatusNotFound:
		return nil, domain.ErrItemNotFound
	default:
		c.logger.Error("tmdb request error", "status", resp.StatusCode, "path", path)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
}

func (c *Client) getPage(ctx context.Context, path string, query url.Values, kind domain.MediaKind) (*domain.CatalogPage, error) {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return nil, err
	}
	var resp pageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return mapPage(&resp, kind), nil
}

func pageQuery(page int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	return q
}

// Genres returns the id/name genre list for a media kind
func (c *Client) Genres(ctx context.Context, kind domain.MediaKind) ([]domain.Genre, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/genre/%s/list", kind), nil)
	if err != nil {
		return nil, err
	}
	var resp genreListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return mapGenres(&resp), nil
}

// Trending returns the daily trending page for a media kind
func (c *Client) Trending(ctx context.Context, kind domain.MediaKind, page int) (*domain.CatalogPage, error) {
	return c.getPage(ctx, fmt.Sprintf("/trending/%s/day", kind), pageQuery(page), kind)
}

// Popular returns the popular page for a media kind
func (c *Client) Popular(ctx context.Context, kind domain.MediaKind, page int) (*domain.CatalogPage, error) {
	return c.getPage(ctx, fmt.Sprintf("/%s/popular", kind), pageQuery(page), kind)
}

// Search queries the catalog by title/keyword
func (c *Client) Search(ctx context.Context, kind domain.MediaKind, query string, page int) (*domain.CatalogPage, error) {
	q := pageQuery(page)
	q.Set("query", query)
	q.Set("include_adult", "false")
	return c.getPage(ctx, fmt.Sprintf("/search/%s", kind), q, kind)
}

// Discover lists items matching the filter
func (c *Client) Discover(ctx context.Context, kind domain.MediaKind, filter domain.DiscoverFilter, page int) (*domain.CatalogPage, error) {
	q := pageQuery(page)
	if filter.GenreID > 0 {
		q.Set("with_genres", strconv.FormatInt(filter.GenreID, 10))
	}
	if filter.Year != "" {
		// Movies and TV use different year parameters
		if kind == domain.MediaKindTV {
			q.Set("first_air_date_year", filter.Year)
		} else {
			q.Set("primary_release_year", filter.Year)
		}
	}
	if filter.MinVote > 0 {
		q.Set("vote_average.gte", strconv.FormatFloat(filter.MinVote, 'f', -1, 64))
	}
	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "popularity.desc"
	}
	q.Set("sort_by", sortBy)
	return c.getPage(ctx, fmt.Sprintf("/discover/%s", kind), q, kind)
}

// Detail returns one item with extended fields
func (c *Client) Detail(ctx context.Context, kind domain.MediaKind, id int64) (*domain.CatalogItem, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/%s/%d", kind, id), nil)
	if err != nil {
		return nil, err
	}
	var resp detailResult
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return mapDetail(&resp, kind), nil
}
