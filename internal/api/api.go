// Package api implements the HTTP clients for the remote MentorHub API.
// Every client shares the same request core: bearer injection from the
// session store, error taxonomy mapping, per-operation metrics, spans, and
// structured call logging.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-client/internal/session"
	"github.com/mentorhub/mentorhub-client/pkg/errors"
	"github.com/mentorhub/mentorhub-client/pkg/httpclient"
	"github.com/mentorhub/mentorhub-client/pkg/logger"
	"github.com/mentorhub/mentorhub-client/pkg/metrics"
	"github.com/mentorhub/mentorhub-client/pkg/tracing"
)

const serviceName = "mentorhub-api"

// APIError carries the HTTP status and server-provided message of a failed
// call. Unwrap maps the status onto the client error taxonomy so callers
// dispatch with errors.Is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed (status %d)", e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return errors.ErrValidation
	case http.StatusUnauthorized:
		return errors.ErrUnauthorized
	case http.StatusForbidden:
		return errors.ErrForbidden
	case http.StatusNotFound:
		return errors.ErrNotFound
	default:
		return errors.ErrTransport
	}
}

// Client is the shared request core for the domain clients.
type Client struct {
	baseURL string
	http    httpclient.Client
	session *session.Store
}

// NewClient creates the request core. baseURL points at the API root,
// e.g. http://host/api.
func NewClient(baseURL string, httpClient httpclient.Client, sess *session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		session: sess,
	}
}

// request issues one API call. A nil out skips response decoding; an
// *string out captures the raw body as text (the login endpoint returns the
// token as a plain text body).
func (c *Client) request(ctx context.Context, operation, method, path string, authed bool, body io.Reader, contentType string, out any) error {
	start := time.Now()

	err := c.do(ctx, operation, method, path, authed, body, contentType, out)

	duration := metrics.MeasureDuration(start)
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.APIRequestDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.APIRequestTotal.WithLabelValues(operation, status).Inc()
	if err != nil {
		logger.LogAPICall(serviceName, operation, status, duration, zap.Error(err))
	} else {
		logger.LogAPICall(serviceName, operation, status, duration)
	}

	return err
}

func (c *Client) do(ctx context.Context, operation, method, path string, authed bool, body io.Reader, contentType string, out any) error {
	ctx, span := tracing.StartSpan(ctx, operation,
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.TransportError(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json, text/plain")

	if authed {
		token, ok := c.session.Token()
		if !ok {
			return errors.ErrUnauthorized
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.TransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	switch target := out.(type) {
	case nil:
		return nil
	case *string:
		data, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return errors.TransportError(readErr)
		}
		*target = string(data)
		return nil
	default:
		if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
			return errors.TransportError(fmt.Errorf("decode response: %w", decodeErr))
		}
		return nil
	}
}

// getJSON issues an authenticated-or-not GET and decodes JSON into out.
func (c *Client) getJSON(ctx context.Context, operation, path string, authed bool, out any) error {
	return c.request(ctx, operation, http.MethodGet, path, authed, nil, "", out)
}

// postJSON marshals body as JSON and issues a POST.
func (c *Client) postJSON(ctx context.Context, operation, path string, authed bool, body, out any) error {
	payload, err := encodeBody(body)
	if err != nil {
		return err
	}
	return c.request(ctx, operation, http.MethodPost, path, authed, payload, "application/json", out)
}

// putJSON marshals body as JSON and issues a PUT.
func (c *Client) putJSON(ctx context.Context, operation, path string, authed bool, body, out any) error {
	payload, err := encodeBody(body)
	if err != nil {
		return err
	}
	return c.request(ctx, operation, http.MethodPut, path, authed, payload, "application/json", out)
}

// delete issues a DELETE.
func (c *Client) delete(ctx context.Context, operation, path string, authed bool) error {
	return c.request(ctx, operation, http.MethodDelete, path, authed, nil, "", nil)
}

func encodeBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return bytes.NewReader(data), nil
}

// readErrorMessage extracts a message from an error body. The server
// answers with either {"error": ...}, {"message": ...}, or plain text.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var structured struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if jsonErr := json.Unmarshal(data, &structured); jsonErr == nil {
		if structured.Error != "" {
			return structured.Error
		}
		if structured.Message != "" {
			return structured.Message
		}
	}

	return strings.TrimSpace(string(data))
}
