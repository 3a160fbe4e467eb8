package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the hosted database through its PostgREST API. It is
// constructed once at startup and injected into every repository.
type Client struct {
	baseURL    string
	key        string
	httpClient *http.Client
}

func NewClient(rawURL, key string) (*Client, error) {
	if rawURL == "" || key == "" {
		return nil, errors.New("supabase url and key are required")
	}

	return &Client{
		baseURL: strings.TrimRight(rawURL, "/"),
		key:     key,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// From starts a query against one table.
func (c *Client) From(table string) *Query {
	return &Query{
		client: c,
		table:  table,
		method: http.MethodGet,
		params: url.Values{},
	}
}

// Query builds a single-table request: one verb, optional payload, zero or
// more equality filters.
type Query struct {
	client  *Client
	table   string
	method  string
	payload any
	params  url.Values
}

func (q *Query) Select(columns string) *Query {
	q.method = http.MethodGet
	q.params.Set("select", columns)
	return q
}

func (q *Query) Insert(payload any) *Query {
	q.method = http.MethodPost
	q.payload = payload
	return q
}

func (q *Query) Update(payload any) *Query {
	q.method = http.MethodPatch
	q.payload = payload
	return q
}

func (q *Query) Delete() *Query {
	q.method = http.MethodDelete
	return q
}

func (q *Query) Eq(column string, value any) *Query {
	q.params.Add(column, fmt.Sprintf("eq.%v", value))
	return q
}

// Execute sends the request and decodes the JSON array response into dest
// (pass a *[]T, or nil to discard). Writes ask for the affected rows back,
// so callers can detect "matched nothing" as an empty result.
func (q *Query) Execute(ctx context.Context, dest any) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", q.client.baseURL, q.table)
	if enc := q.params.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	var body io.Reader
	if q.payload != nil {
		raw, err := json.Marshal(q.payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", q.table, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, q.method, endpoint, body)
	if err != nil {
		return err
	}

	req.Header.Set("apikey", q.client.key)
	req.Header.Set("Authorization", "Bearer "+q.client.key)
	req.Header.Set("Accept", "application/json")
	if q.payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if q.method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	res, err := q.client.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%s %s: %s", q.method, q.table, remoteMessage(res.StatusCode, raw))
	}

	if dest == nil || len(raw) == 0 {
		return nil
	}

	return json.Unmarshal(raw, dest)
}

func remoteMessage(status int, raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return http.StatusText(status)
}
