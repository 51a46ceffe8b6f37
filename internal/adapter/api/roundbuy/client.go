// Package roundbuy is the client of the RoundBuy admin REST API.
// Every method is a single HTTP call: nothing is retried, cached or deduplicated.
package roundbuy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
)

type Client struct {
	baseURL string
	http    *http.Client
	metrics *Metrics
}

// NewClient returns a client for the API at baseURL (e.g. http://localhost:3000/api).
// metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, metrics *Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		metrics: metrics,
	}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

// do sends one request and returns the "data" member of the response body,
// or the whole body when the backend does not wrap it.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WrapIntoDomainError(err, errors.ErrValidation, op)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, errors.WrapIntoDomainError(err, errors.ErrUpstream, op)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s, ok := entity.SessionFromContext(ctx); ok && s.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.AccessToken)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(op, method, "error", time.Since(start))
		return nil, errors.WrapIntoDomainError(err, errors.ErrUpstream, op)
	}
	defer func() { _ = resp.Body.Close() }()
	c.metrics.observe(op, method, strconv.Itoa(resp.StatusCode), time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIntoDomainError(err, errors.ErrUpstream, op)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, statusError(op, resp.StatusCode, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		return env.Data, nil
	}
	return raw, nil
}

func statusError(op string, status int, body []byte) error {
	msg := backendMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}

	var code errors.ErrorCode
	switch status {
	case http.StatusUnauthorized:
		code = errors.ErrUnauthorized
	case http.StatusForbidden:
		code = errors.ErrForbidden
	case http.StatusNotFound:
		code = errors.ErrNoDataFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = errors.ErrValidation
	default:
		code = errors.ErrUpstream
	}
	return errors.NewDomainError(code, "%s: %s", op, msg)
}

// backendMessage extracts {"message": "..."}, {"error": "..."} or {"error": {"message": "..."}}.
func backendMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	if len(eb.Error) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(eb.Error, &s); err == nil {
		return s
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(eb.Error, &nested); err == nil {
		return nested.Message
	}
	return ""
}

func unmarshal(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

// decodePage accepts a bare array or an object holding the items and a pagination block.
// The items are looked up under itemsKey, then "items", then the first array member.
// paginated reports whether the backend paged the result itself.
func decodePage(raw json.RawMessage, itemsKey string) (page entity.Page, paginated bool, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return entity.Page{Items: []entity.Record{}}, false, nil
	}

	if trimmed[0] == '[' {
		var items []entity.Record
		if err := unmarshal(trimmed, &items); err != nil {
			return entity.Page{}, false, err
		}
		return entity.Page{Items: nonNil(items), Total: len(items)}, false, nil
	}

	var obj map[string]json.RawMessage
	if err := unmarshal(trimmed, &obj); err != nil {
		return entity.Page{}, false, err
	}

	itemsRaw, ok := obj[itemsKey]
	if !ok {
		itemsRaw, ok = obj["items"]
	}
	if !ok {
		for _, k := range slices.Sorted(maps.Keys(obj)) {
			if v := bytes.TrimSpace(obj[k]); len(v) > 0 && v[0] == '[' {
				itemsRaw, ok = v, true
				break
			}
		}
	}

	var items []entity.Record
	if ok {
		if err := unmarshal(itemsRaw, &items); err != nil {
			return entity.Page{}, false, err
		}
	}
	page = entity.Page{Items: nonNil(items), Total: len(items)}

	if pr, has := obj["pagination"]; has {
		var p entity.Pagination
		if err := unmarshal(pr, &p); err != nil {
			return entity.Page{}, false, err
		}
		page.Total = p.Total
		paginated = true
	}
	return page, paginated, nil
}

// decodeRecord returns the object under key when the backend nests it ({"user": {...}}), else the object itself.
func decodeRecord(raw json.RawMessage, key string) (entity.Record, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return entity.Record{}, nil
	}

	var rec entity.Record
	if err := unmarshal(trimmed, &rec); err != nil {
		return nil, err
	}
	if key != "" {
		if nested, ok := rec[key].(map[string]any); ok {
			return entity.Record(nested), nil
		}
	}
	return rec, nil
}

func nonNil(items []entity.Record) []entity.Record {
	if items == nil {
		return []entity.Record{}
	}
	return items
}

func (c *Client) list(ctx context.Context, op, path, itemsKey string, q entity.ListQuery) (entity.Page, error) {
	raw, err := c.do(ctx, op, http.MethodGet, path, q.Values(), nil)
	if err != nil {
		return entity.Page{}, err
	}

	page, paginated, err := decodePage(raw, itemsKey)
	if err != nil {
		return entity.Page{}, errors.WrapIntoDomainError(err, errors.ErrUpstream, op)
	}

	// Unpaginated endpoints return every row; show only the requested window.
	if !paginated && q.Limit > 0 && len(page.Items) > q.Limit {
		from, to := q.Window(len(page.Items))
		page.Items = page.Items[from:to]
	}
	return page, nil
}

func (c *Client) get(ctx context.Context, op, path, key string) (entity.Record, error) {
	raw, err := c.do(ctx, op, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	rec, err := decodeRecord(raw, key)
	if err != nil {
		return nil, errors.WrapIntoDomainError(err, errors.ErrUpstream, op)
	}
	return rec, nil
}

func (c *Client) send(ctx context.Context, op, method, path string, body any) (entity.Record, error) {
	raw, err := c.do(ctx, op, method, path, nil, body)
	if err != nil {
		return nil, err
	}
	rec, err := decodeRecord(raw, "")
	if err != nil {
		return nil, errors.WrapIntoDomainError(err, errors.ErrUpstream, op)
	}
	return rec, nil
}

func (c *Client) create(ctx context.Context, op, path string, rec entity.Record) (entity.Record, error) {
	return c.send(ctx, op, http.MethodPost, path, rec)
}

func (c *Client) update(ctx context.Context, op, path, id string, rec entity.Record) (entity.Record, error) {
	return c.send(ctx, op, http.MethodPut, itemPath(path, id), rec)
}

func (c *Client) remove(ctx context.Context, op, path, id string) error {
	_, err := c.do(ctx, op, http.MethodDelete, itemPath(path, id), nil, nil)
	return err
}

func itemPath(path, id string) string {
	return fmt.Sprintf("%s/%s", path, url.PathEscape(id))
}
