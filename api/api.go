// Package api is the HTTP client for the stock backend.
//
// Every endpoint answers with the same JSON envelope
// {success, data?, count?, message?}. A call succeeds only when the
// transport status is 2xx and the envelope's success flag is true;
// anything else surfaces as an *Error. There is no retry policy and no
// caching: failures go straight back to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Kind classifies an API failure.
type Kind int

const (
	// KindTransport is a non-2xx HTTP status.
	KindTransport Kind = iota
	// KindApplication is a 2xx response whose envelope reported failure.
	KindApplication
)

// Error is the uniform failure returned by every client operation.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, transport errors only
	Message string // server-supplied or per-action fallback, application errors only
}

func (e *Error) Error() string {
	if e.Kind == KindTransport {
		return fmt.Sprintf("HTTP error: status %d", e.Status)
	}
	return e.Message
}

// envelope is the wrapper shape shared by all backend responses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Count   int             `json:"count,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Config carries the connection settings and the identifiers the
// console operates as. Both ids come from configuration, never from
// literals in the UI code.
type Config struct {
	BaseURL     string
	PortfolioID string
	UserID      string
	HTTPClient  *http.Client // defaults to http.DefaultClient
	Logger      *slog.Logger // defaults to a discard logger
}

// Client issues requests against the backend REST API.
type Client struct {
	baseURL     string
	portfolioID string
	userID      string
	http        *http.Client
	log         *slog.Logger
}

// New builds a client from cfg.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		portfolioID: cfg.PortfolioID,
		userID:      cfg.UserID,
		http:        httpClient,
		log:         logger,
	}, nil
}

// do performs one request and unwraps the response envelope. fallback
// is the application error message used when the server sends none.
func (c *Client) do(ctx context.Context, method, path string, body any, fallback string) (*envelope, error) {
	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("cannot encode %s %s body: %w", method, path, err)
		}
		rd = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("cannot build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	id := uuid.NewString()
	req.Header.Set("X-Request-ID", id)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s %s response: %w", method, path, err)
	}
	c.log.Info("api request", "id", id, "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Kind: KindTransport, Status: resp.StatusCode}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("cannot decode %s %s response: %w", method, path, err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallback
		}
		return nil, &Error{Kind: KindApplication, Message: msg}
	}
	return &env, nil
}
