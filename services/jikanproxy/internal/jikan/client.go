package jikan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Endpoint labels used for metrics and logs.
const (
	EndpointAnimeSearch = "anime_search"
	EndpointTopAnime    = "top_anime"
	EndpointAnimeFull   = "anime_full"
	EndpointGenres      = "genres"
)

// Client exposes the upstream endpoints this service uses and turns raw
// responses into typed results or classified errors.
type Client struct {
	doer Doer
}

func NewClient(doer Doer) *Client {
	return &Client{doer: doer}
}

// SearchAnime calls GET /anime with params (search and discovery).
func (c *Client) SearchAnime(ctx context.Context, params url.Values) (*AnimeListResponse, error) {
	var out AnimeListResponse
	if err := c.get(ctx, EndpointAnimeSearch, "/anime", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TopAnime calls GET /top/anime.
func (c *Client) TopAnime(ctx context.Context, params url.Values) (*AnimeListResponse, error) {
	var out AnimeListResponse
	if err := c.get(ctx, EndpointTopAnime, "/top/anime", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnimeFull calls GET /anime/{id}/full.
func (c *Client) AnimeFull(ctx context.Context, malID int) (*AnimeResponse, error) {
	if malID <= 0 {
		return nil, fmt.Errorf("jikan: malID required")
	}
	var out AnimeResponse
	if err := c.get(ctx, EndpointAnimeFull, "/anime/"+strconv.Itoa(malID)+"/full", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnimeGenres calls GET /genres/anime.
func (c *Client) AnimeGenres(ctx context.Context) (*GenreListResponse, error) {
	var out GenreListResponse
	if err := c.get(ctx, EndpointGenres, "/genres/anime", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	resp, err := c.doer.Fetch(ctx, endpoint, path, params)
	if err != nil {
		return err
	}
	if resp == nil {
		return fmt.Errorf("%w: %s: empty response", ErrUnavailable, endpoint)
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s after %d attempts", ErrRateLimited, endpoint, resp.Attempts)
	case resp.StatusCode != http.StatusOK:
		return &StatusError{Endpoint: endpoint, Code: resp.StatusCode, Body: snippet(resp.Body)}
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("%w: %s: %w body=%q", ErrDecode, endpoint, err, snippet(resp.Body))
	}
	return nil
}

func snippet(b []byte) string {
	return string(b[:min(len(b), 200)])
}
