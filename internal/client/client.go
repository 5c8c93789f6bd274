// Package client implements the read-only JSON API client for the
// leaderboard service.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gitstars/starboard/internal/log"
	"github.com/gitstars/starboard/internal/model"
	"github.com/gitstars/starboard/internal/state"
)

// DefaultTimeout bounds a single request. The original client set none;
// an explicit bound is the permitted hardening.
const DefaultTimeout = 15 * time.Second

// Client talks to the leaderboard service's four read-only endpoints.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the service at baseURL. A non-positive timeout
// falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured service URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Leaderboard fetches one page of the leaderboard for the given state.
func (c *Client) Leaderboard(ctx context.Context, s state.ViewState) (*model.LeaderboardPage, error) {
	var page model.LeaderboardPage
	if err := c.getJSON(ctx, "/api/leaderboard", s.APIValues(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Repo fetches the detail record for one repository by owner/repo name.
func (c *Client) Repo(ctx context.Context, name string) (*model.RepoDetail, error) {
	var detail model.RepoDetail
	if err := c.getJSON(ctx, "/api/repo", url.Values{"name": {name}}, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// History fetches the metric history segments for one repository.
func (c *Client) History(ctx context.Context, name string) (*model.History, error) {
	var hist model.History
	if err := c.getJSON(ctx, "/api/repo/history", url.Values{"name": {name}}, &hist); err != nil {
		return nil, err
	}
	return &hist, nil
}

// RepoWithHistory fetches the detail and history concurrently. Both must
// succeed: on any failure the other result is discarded and only the
// error is returned, so the caller never renders a partial detail view.
func (c *Client) RepoWithHistory(ctx context.Context, name string) (*model.RepoDetail, *model.History, error) {
	var (
		detail *model.RepoDetail
		hist   *model.History
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = c.Repo(ctx, name)
		return err
	})
	g.Go(func() error {
		var err error
		hist, err = c.History(ctx, name)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return detail, hist, nil
}

// getJSON issues a GET and decodes the response into out. Non-2xx
// responses become a *StatusError carrying the server's detail message
// when one is present.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debug("api request", "url", u)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Message: errorDetail(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// errorDetail extracts the {"detail": "..."} message the service attaches
// to error responses. Unparseable bodies yield "".
func errorDetail(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}
	return payload.Detail
}
