package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 4 << 20

// ErrNetwork matches every NetworkError.
var ErrNetwork = errors.New("network error")

// NetworkError is an unreachable API (StatusCode 0) or a failed response.
type NetworkError struct {
	Op         string
	StatusCode int
	Reason     string
}

func (e *NetworkError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: unreachable: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: http %d: %s", e.Op, e.StatusCode, e.Reason)
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// Unreachable reports whether the request never got a response.
func (e *NetworkError) Unreachable() bool {
	return e.StatusCode == 0
}

// Doer sends one HTTP request.
type Doer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}

// Client talks to the Kazi Mashinani REST API. Responses are wrapped in a
// {success, data, message} envelope. Requests are never retried.
type Client struct {
	doer    Doer
	baseURL string
	token   string
	logger  zerolog.Logger
}

func New(doer Doer, baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		doer:    doer,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		logger:  logger,
	}
}

// WithToken returns a copy of c that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (e envelope) reason() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

func (c *Client) do(ctx context.Context, op, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := fhttp.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-request-id", requestID)
	if body != nil {
		req.Header.Set("content-type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("authorization", "Bearer "+c.token)
	}

	c.logger.Debug().Str("op", op).Str("request_id", requestID).Msg("api request")
	resp, err := c.doer.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Reason: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Reason: err.Error()}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason := env.reason()
		if decodeErr != nil || reason == "" {
			reason = fhttp.StatusText(resp.StatusCode)
		}
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Reason: reason}
	}
	if decodeErr != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Reason: "malformed response: " + decodeErr.Error()}
	}
	if env.Success != nil && !*env.Success {
		reason := env.reason()
		if reason == "" {
			reason = "request rejected"
		}
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Reason: reason}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Reason: "malformed data: " + err.Error()}
	}
	return nil
}
