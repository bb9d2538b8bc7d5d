// Package api is the HTTP client for the notes REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Paintersrp/notes/internal/note"
)

// BasePath is the collection path appended to the server URL.
const BasePath = "/api/notes"

const requestIDHeader = "X-Request-ID"

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	token   string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithToken sends the token as a bearer Authorization header.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New returns a client for the server at serverURL, e.g. "http://localhost:8080".
func New(serverURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(serverURL))
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", serverURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: scheme and host are required", serverURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/") + BasePath,
		http:    &http.Client{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) ListNotes(ctx context.Context, search string) ([]note.Note, error) {
	endpoint := c.baseURL
	if search != "" {
		endpoint += "?search=" + url.QueryEscape(search)
	}

	var notes []note.Note
	if err := c.do(ctx, "fetch notes", http.MethodGet, endpoint, nil, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []note.Note{}
	}
	return notes, nil
}

func (c *Client) GetNote(ctx context.Context, id string) (note.Note, error) {
	var n note.Note
	err := c.do(ctx, "fetch note", http.MethodGet, c.noteURL(id), nil, &n)
	return n, err
}

func (c *Client) CreateNote(ctx context.Context, in note.Input) (note.Note, error) {
	var n note.Note
	err := c.do(ctx, "create note", http.MethodPost, c.baseURL, in, &n)
	return n, err
}

func (c *Client) UpdateNote(ctx context.Context, id string, in note.Input) (note.Note, error) {
	var n note.Note
	err := c.do(ctx, "update note", http.MethodPut, c.noteURL(id), in, &n)
	return n, err
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, "delete note", http.MethodDelete, c.noteURL(id), nil, nil)
}

func (c *Client) noteURL(id string) string {
	return c.baseURL + "/" + url.PathEscape(id)
}

// do performs a single round trip. A nil out discards the response body.
func (c *Client) do(ctx context.Context, op, method, endpoint string, body, out any) error {
	fail := func(status int, err error) error {
		return &RequestError{Op: op, Method: method, URL: endpoint, StatusCode: status, Err: err}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fail(0, fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fail(0, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("notes api request failed",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("url", endpoint),
			zap.Error(err),
		)
		return fail(0, err)
	}
	defer resp.Body.Close()

	c.log.Debug("notes api request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fail(resp.StatusCode, nil)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
