package tvmaze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cinevoxa/models"
)

// Minimal TVMaze client (shows, search, and cast endpoints we need)

const DefaultBaseURL = "https://api.tvmaze.com"

// ErrUpstream covers every failure reaching or parsing the upstream API:
// network errors, non-2xx statuses, and malformed bodies. Callers that
// canceled their context get context.Canceled instead, never ErrUpstream.
var ErrUpstream = errors.New("upstream request failed")

type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// ListShows fetches the full show index.
func (c *Client) ListShows(ctx context.Context) ([]models.RawShow, error) {
	var shows []models.RawShow
	if err := c.doGET(ctx, "/shows", nil, &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

// SearchShows forwards the query verbatim; an empty query is passed through.
func (c *Client) SearchShows(ctx context.Context, query string) ([]models.RawSearchResult, error) {
	params := url.Values{"q": []string{query}}
	var results []models.RawSearchResult
	if err := c.doGET(ctx, "/search/shows", params, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetShow fetches a single show by id.
func (c *Client) GetShow(ctx context.Context, id string) (*models.RawShow, error) {
	var show models.RawShow
	if err := c.doGET(ctx, "/shows/"+url.PathEscape(id), nil, &show); err != nil {
		return nil, err
	}
	return &show, nil
}

// GetCast fetches the cast list for a show.
func (c *Client) GetCast(ctx context.Context, id string) ([]models.CastMember, error) {
	var cast []models.CastMember
	if err := c.doGET(ctx, "/shows/"+url.PathEscape(id)+"/cast", nil, &cast); err != nil {
		return nil, err
	}
	return cast, nil
}

// Raw pass-through variants used by the proxy gateway. The body is returned
// unmodified so the gateway never re-encodes upstream JSON.

func (c *Client) RawShows(ctx context.Context) ([]byte, error) {
	return c.raw(ctx, "/shows", nil)
}

func (c *Client) RawSearch(ctx context.Context, query string) ([]byte, error) {
	return c.raw(ctx, "/search/shows", url.Values{"q": []string{query}})
}

func (c *Client) RawShow(ctx context.Context, id string) ([]byte, error) {
	return c.raw(ctx, "/shows/"+url.PathEscape(id), nil)
}

func (c *Client) RawCast(ctx context.Context, id string) ([]byte, error) {
	return c.raw(ctx, "/shows/"+url.PathEscape(id)+"/cast", nil)
}

func (c *Client) raw(ctx context.Context, path string, params url.Values) ([]byte, error) {
	body, err := c.fetch(ctx, path, params)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) doGET(ctx context.Context, path string, params url.Values, v any) error {
	body, err := c.fetch(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUpstream, path, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUpstream, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		// Preserve cancellation so superseded callers can tell it apart
		// from a genuine upstream failure.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: GET %s returned status %d", ErrUpstream, path, resp.StatusCode)
	}

	return body, nil
}
