package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/fieldkeeper/internal/logging"
	"github.com/google/uuid"
)

// TokenSource yields the current session token. ok is false when there is
// no session.
type TokenSource interface {
	Token(ctx context.Context) (token string, ok bool)
}

const (
	headerContentType   = "Content-Type"
	headerAccept        = "Accept"
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"

	contentTypeJSON = "application/json"
)

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
	newID   func() string
}

type Option func(*Client)

// WithHTTPClient replaces the default transport. Timeouts, if any, are the
// transport's business.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     logging.NewDiscard(),
		newID:   func() string { return uuid.NewString() },
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type call struct {
	op       string
	method   string
	path     string
	body     any
	auth     bool
	fallback string
}

func (c *Client) token(ctx context.Context, op string) (string, error) {
	t, ok := c.tokens.Token(ctx)
	if !ok || t == "" {
		return "", &Error{
			Op:      op,
			Kind:    ErrAuthenticationRequired,
			Message: "You are not logged in. Please log in again.",
		}
	}
	return t, nil
}

// do issues the call and returns the raw body of a 2xx response.
func (c *Client) do(ctx context.Context, cl call) ([]byte, error) {
	var token string
	if cl.auth {
		t, err := c.token(ctx, cl.op)
		if err != nil {
			return nil, err
		}
		token = t
	}

	var payload io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", cl.op, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", cl.op, err)
	}

	reqID := c.newID()
	req.Header.Set(headerContentType, contentTypeJSON)
	req.Header.Set(headerAccept, contentTypeJSON)
	req.Header.Set(headerRequestID, reqID)
	if cl.auth {
		req.Header.Set(headerAuthorization, "Token "+token)
	}

	log := c.log.With("op", cl.op, "request_id", reqID)
	log.Debug(ctx, "sending request", "method", cl.method, "path", cl.path)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(ctx, "request failed", "error", err)
		return nil, &Error{
			Op:      cl.op,
			Kind:    ErrTransport,
			Message: "Unable to reach the server. Please check your connection.",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(ctx, "reading response failed", "status", resp.StatusCode, "error", err)
		return nil, &Error{
			Op:      cl.op,
			Kind:    ErrTransport,
			Status:  resp.StatusCode,
			Message: "Connection lost while reading the server response.",
			Err:     err,
		}
	}

	if err := checkStatus(cl.op, resp.StatusCode, body, cl.fallback); err != nil {
		log.Warn(ctx, "server returned an error", "status", resp.StatusCode, "error", err)
		return nil, err
	}

	log.Debug(ctx, "response received", "status", resp.StatusCode, "bytes", len(body))
	return body, nil
}

// checkStatus maps a non-2xx status to ErrServer carrying the body's "error"
// field, or fallback when the field is missing or the body is not JSON.
func checkStatus(op string, status int, body []byte, fallback string) error {
	if status >= 200 && status < 300 {
		return nil
	}

	msg := ""
	var m map[string]any
	if json.Unmarshal(body, &m) == nil {
		msg = textOf(m["error"])
	}
	if msg == "" {
		msg = fallback
	}
	if msg == "" {
		msg = DefaultFailureMessage
	}
	return &Error{Op: op, Kind: ErrServer, Status: status, Message: msg}
}
