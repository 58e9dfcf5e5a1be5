// Package httpclient is the JSON-over-HTTP plumbing shared by the payment provider adapters.
package httpclient

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
)

// maxResponseBytes bounds how much of a provider response is read
const maxResponseBytes = 1 << 20

// Client calls one provider's REST API
type Client struct {
	provider string
	baseURL  string
	http     *http.Client
	logger   coreport.Logger
	debug    bool
}

// New creates a Client for provider rooted at baseURL
func New(provider, baseURL string, timeout time.Duration, debug bool, logger coreport.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		provider: provider,
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
		debug:    debug,
	}
}

// Request describes one API call
type Request struct {
	Operation string
	Method    string
	Path      string
	Header    http.Header
	Body      any // JSON-encoded when not nil
}

// Response is a raw provider answer
type Response struct {
	StatusCode int
	Body       []byte
}

// Decode unmarshals the body into out
func (r *Response) Decode(out any) error {
	return json.Unmarshal(r.Body, out)
}

// Do sends the request. Transport failures and non-2xx answers come back as *errs.ProviderError;
// messageOf extracts the provider's own error text from a failed response body.
func (c *Client) Do(ctx context.Context, req Request, messageOf func(body []byte) (code, message string)) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errs.NewProviderError(c.provider, req.Operation, 0, "MARSHAL_ERROR", err.Error())
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, body)
	if err != nil {
		return nil, errs.NewProviderError(c.provider, req.Operation, 0, "REQUEST_ERROR", err.Error())
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Error("Provider request failed", map[string]any{
			"provider":  c.provider,
			"operation": req.Operation,
			"error":     err.Error(),
		})
		return nil, errs.NewProviderError(c.provider, req.Operation, 0, "API_ERROR", err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errs.NewProviderError(c.provider, req.Operation, resp.StatusCode, "RESPONSE_ERROR", err.Error())
	}

	fields := map[string]any{
		"provider":    c.provider,
		"operation":   req.Operation,
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if c.debug {
		fields["response_body"] = string(respBody)
	}
	c.logger.Debug("Provider response received", fields)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		code, message := "", http.StatusText(resp.StatusCode)
		if messageOf != nil {
			if pc, pm := messageOf(respBody); pm != "" || pc != "" {
				code, message = pc, pm
			}
		}
		return nil, errs.NewProviderError(c.provider, req.Operation, resp.StatusCode, code, message)
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// Sign returns the hex HMAC-SHA256 of payload under secret
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares a received hex signature with the expected one in constant time
func VerifySignature(secret string, payload []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	expected := Sign(secret, payload)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature))))
}

// DecodeError wraps a malformed provider payload as a permanent provider error
func DecodeError(provider, operation string, err error) error {
	return errs.NewProviderError(provider, operation, http.StatusOK, "PARSE_ERROR", fmt.Sprintf("unexpected response: %s", err.Error()))
}
