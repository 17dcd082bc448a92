// Package cms talks to the store CMS over its REST API. The catalog
// pipeline upserts products, categories, brands, and articles; records
// are keyed by slug so re-running a seed is idempotent.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client communicates with the CMS HTTP API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RetryableError marks transient CMS failures (throttling, 5xx, network)
// worth retrying with backoff.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Login authenticates and stores the session token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var res struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/login", nil, body, &res); err != nil {
		return fmt.Errorf("cms login: %w", err)
	}
	if res.Token == "" {
		return fmt.Errorf("cms login: no token in response")
	}
	c.token = res.Token
	return nil
}

// FindOne returns the first document in collection whose field equals
// value, or nil when none exists.
func (c *Client) FindOne(ctx context.Context, collection, field, value string) (map[string]any, error) {
	q := url.Values{}
	q.Set(fmt.Sprintf("where[%s][equals]", field), value)
	q.Set("limit", "1")

	var res struct {
		Docs []map[string]any `json:"docs"`
	}
	if err := c.do(ctx, http.MethodGet, "/"+collection, q, nil, &res); err != nil {
		return nil, fmt.Errorf("find %s by %s: %w", collection, field, err)
	}
	if len(res.Docs) == 0 {
		return nil, nil
	}
	return res.Docs[0], nil
}

// Create inserts a new document into collection.
func (c *Client) Create(ctx context.Context, collection string, doc any) error {
	if err := c.do(ctx, http.MethodPost, "/"+collection, nil, doc, nil); err != nil {
		return fmt.Errorf("create in %s: %w", collection, err)
	}
	return nil
}

// Update patches an existing document by id.
func (c *Client) Update(ctx context.Context, collection, id string, doc any) error {
	if err := c.do(ctx, http.MethodPatch, "/"+collection+"/"+id, nil, doc, nil); err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

// Upsert creates the document or patches the one whose keyField already
// equals keyValue.
func (c *Client) Upsert(ctx context.Context, collection, keyField, keyValue string, doc any) error {
	existing, err := c.FindOne(ctx, collection, keyField, keyValue)
	if err != nil {
		return err
	}
	if existing == nil {
		return c.Create(ctx, collection, doc)
	}
	id := documentID(existing)
	if id == "" {
		return fmt.Errorf("upsert %s: existing document has no id", collection)
	}
	return c.Update(ctx, collection, id, doc)
}

func documentID(doc map[string]any) string {
	switch v := doc["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	}
	return ""
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "JWT "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RetryableError{Err: fmt.Errorf("%s %s: %w", method, path, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		reqErr := fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return &RetryableError{Err: reqErr}
		}
		return reqErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Close releases any resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
