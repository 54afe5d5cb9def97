// Package upstream is the one place that knows how to call the external
// REST backends: build a URL, attach the right credential, perform a single
// attempt, and normalize non-2xx responses into AppErrors. No retries, no
// backoff.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"

	"meetbrief-api/core/constants"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/logger"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: constants.UpstreamTimeout},
	}
}

// NewUnbounded returns a client with no transport-level timeout; callers
// must bound the request with a context deadline. Used for calendar sync,
// which can legitimately run for minutes.
func NewUnbounded(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

type Request struct {
	Method string
	Path   string
	Query  map[string]string
	// Bearer is attached as "Authorization: Bearer ..." when set.
	Bearer string
	// Header carries extra headers (e.g. the bridge API key).
	Header map[string]string
	Body   any
}

// DoJSON performs the request and decodes a 2xx JSON body into out (out may
// be nil). Non-2xx responses become AppErrors carrying the upstream message.
func (c *Client) DoJSON(ctx context.Context, req Request, out any) error {
	var bodyReader io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "encode request body", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.url(req), bodyReader)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "build request", err)
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	c.setHeaders(httpReq, req)

	return c.send(httpReq, req, out)
}

// DoRaw performs the request with a prebuilt body (multipart uploads).
func (c *Client) DoRaw(ctx context.Context, req Request, contentType string, body io.Reader, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.url(req), body)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "build request", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	c.setHeaders(httpReq, req)

	return c.send(httpReq, req, out)
}

func (c *Client) url(req Request) string {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		values := neturl.Values{}
		for k, v := range req.Query {
			values.Set(k, v)
		}
		u += "?" + values.Encode()
	}
	return u
}

func (c *Client) setHeaders(httpReq *http.Request, req Request) {
	if req.Bearer != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Bearer)
	}
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}
}

func (c *Client) send(httpReq *http.Request, req Request, out any) error {
	resp, err := c.http.Do(httpReq)
	if err != nil {
		logger.Error("Upstream:Request:Error", "method", req.Method, "path", req.Path, "error", err)
		return errors.NewAppError(errors.ErrUpstream, "upstream request failed", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := extractMessage(raw)
		if msg == "" {
			msg = fmt.Sprintf("upstream returned %d", resp.StatusCode)
		}
		logger.Warn("Upstream:NonOK", "method", req.Method, "path", req.Path, "status", resp.StatusCode, "message", msg)
		if resp.StatusCode == http.StatusUnauthorized {
			return errors.NewAppError(errors.ErrUnauthorized, msg, nil)
		}
		return errors.NewAppError(errors.ErrUpstream, msg, nil)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.NewAppError(errors.ErrUpstream, "decode upstream response", err)
	}
	return nil
}

// extractMessage pulls a human message out of the usual upstream error
// envelopes: {"message": ...}, {"error": ...}, {"detail": ...}.
func extractMessage(raw []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return strings.TrimSpace(string(raw))
	}
	for _, m := range []string{envelope.Message, envelope.Error, envelope.Detail} {
		if m != "" {
			return m
		}
	}
	return ""
}
