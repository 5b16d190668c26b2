// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/icpc-scoreboard/models"
)

const defaultTimeout = 30 * time.Second

// Client talks to a running scoreboard API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Timeout: d, Transport: c.http.Transport}
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response is a completed request.
type Response struct {
	StatusCode int
	RequestID  string
	Body       []byte
}

// Decode parses the body with Decode. An empty body yields nil.
func (r *Response) Decode() (any, error) {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil, nil
	}
	return Decode(r.Body)
}

// StatusError reports a non-2xx answer.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Routes fetches the route directory.
func (c *Client) Routes(ctx context.Context) ([]models.RouteEntry, error) {
	resp, err := c.Get(ctx, "/routes")
	if err != nil {
		return nil, err
	}
	var routes []models.RouteEntry
	if err := json.Unmarshal(resp.Body, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode routes: %w", err)
	}
	return routes, nil
}

// Get performs a GET on path, which may carry a query string.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Edit sends a mutating request. POST sends input as the body. PUT reads
// the "id" field of the input object into the path and sends the rest.
// DELETE uses the whole input as the id.
func (c *Client) Edit(ctx context.Context, route EditRoute, input string) (*Response, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrInputRequired
	}

	switch route.Method {
	case http.MethodPost:
		if !json.Valid([]byte(input)) {
			return nil, fmt.Errorf("client: request body is not valid JSON")
		}
		return c.do(ctx, http.MethodPost, route.Path, strings.NewReader(input))
	case http.MethodPut:
		path, body, err := spliceID(route.Path, input)
		if err != nil {
			return nil, err
		}
		return c.do(ctx, http.MethodPut, path, bytes.NewReader(body))
	case http.MethodDelete:
		return c.do(ctx, http.MethodDelete, FillRoute(route.Path, []string{input}), nil)
	}
	return nil, fmt.Errorf("client: unsupported method %s", route.Method)
}

func spliceID(template, input string) (string, []byte, error) {
	v, err := Decode([]byte(input))
	if err != nil {
		return "", nil, err
	}
	obj, ok := asObject(v)
	if !ok {
		return "", nil, ErrIDRequired
	}

	raw, _ := obj.Get("id")
	var id string
	switch t := raw.(type) {
	case float64:
		id = strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		id = t
	}
	if id == "" {
		return "", nil, ErrIDRequired
	}
	obj.Delete("id")

	body, err := marshal(obj, "")
	if err != nil {
		return "", nil, err
	}
	return FillRoute(template, []string{id}), body, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(path, "/"), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	r := &Response{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get("X-Request-ID"),
		Body:       data,
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
		var er models.ErrorResponse
		if json.Unmarshal(data, &er) == nil {
			se.Message = er.Message
		}
		return r, se
	}
	return r, nil
}
