// Package client talks to the inventory API and keeps the client-side view of its data.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrNetwork is returned when the server could not be reached at all.
var ErrNetwork = errors.New("Network error: Could not connect to the server. Please check your internet connection.")

type networkError struct {
	cause error
}

func (e *networkError) Error() string   { return ErrNetwork.Error() }
func (e *networkError) Unwrap() []error { return []error{ErrNetwork, e.cause} }

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Client is a thin JSON client. It never retries.
type Client struct {
	http *resty.Client
	now  func() time.Time

	mu    sync.RWMutex
	token string
}

// New creates a Client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30*time.Second).
			SetHeader("Content-Type", "application/json"),
		now: time.Now,
	}
}

// SetToken sets the bearer token sent with every request. Empty clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	c.mu.RLock()
	if c.token != "" {
		req.SetAuthToken(c.token)
	}
	c.mu.RUnlock()
	return req
}

// do sends the request and decodes a 2xx body into out, when out is not nil.
func (c *Client) do(req *resty.Request, method, path string, out interface{}) error {
	if method == resty.MethodGet {
		req.SetQueryParam("_", strconv.FormatInt(c.now().UnixMilli(), 10))
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		// A response means the server answered and only decoding failed.
		if resp != nil && resp.RawResponse != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
		return &networkError{cause: err}
	}

	if resp.IsError() {
		return &APIError{StatusCode: resp.StatusCode(), Message: errorMessage(resp.StatusCode(), resp.Body())}
	}
	return nil
}

// errorMessage extracts the server message from {"error": {"message": ...}}
// or {"error": "..."}.
func errorMessage(status int, body []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Error) > 0 {
		var detail struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(envelope.Error, &detail); err == nil && detail.Message != "" {
			return detail.Message
		}
		var text string
		if err := json.Unmarshal(envelope.Error, &text); err == nil && text != "" {
			return text
		}
	}
	return fmt.Sprintf("HTTP error! status: %d", status)
}

func (c *Client) Login(ctx context.Context, role, credential string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"role": role, "credential": credential}
	if err := c.do(c.request(ctx).SetBody(body), resty.MethodPost, "/login", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchAll(ctx context.Context) (*Snapshot, error) {
	var out Snapshot
	if err := c.do(c.request(ctx), resty.MethodGet, "/data/all", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchStore(ctx context.Context, storeCode string) (*Snapshot, error) {
	var out Snapshot
	req := c.request(ctx).SetQueryParam("storeCode", storeCode)
	if err := c.do(req, resty.MethodGet, "/data/store", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddItem(ctx context.Context, item NewItem) (*Item, error) {
	var out Item
	if err := c.do(c.request(ctx).SetBody(item), resty.MethodPost, "/items", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateItem(ctx context.Context, itemID string, update ItemUpdate) (*Item, error) {
	var out Item
	path := "/items/" + url.PathEscape(itemID)
	if err := c.do(c.request(ctx).SetBody(update), resty.MethodPut, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	return c.do(c.request(ctx), resty.MethodDelete, "/items/"+url.PathEscape(itemID), nil)
}

func (c *Client) AddStaff(ctx context.Context, staff NewStaff) (*StaffCreated, error) {
	var out StaffCreated
	if err := c.do(c.request(ctx).SetBody(staff), resty.MethodPost, "/admin/staff", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteStaff(ctx context.Context, staffID string) error {
	return c.do(c.request(ctx), resty.MethodDelete, "/admin/staff/"+url.PathEscape(staffID), nil)
}

func (c *Client) DeleteAccessCode(ctx context.Context, code string) error {
	return c.do(c.request(ctx), resty.MethodDelete, "/admin/access-codes/"+url.PathEscape(code), nil)
}

func (c *Client) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	var out AskResponse
	if err := c.do(c.request(ctx).SetBody(req), resty.MethodPost, "/ai/ask", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
