package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
)

// maxDebugBody bounds how much of a callback body is buffered for logging
const maxDebugBody = 64 << 10

// redacted keys are matched case-insensitively in headers, query, form and JSON bodies
var redacted = map[string]bool{
	"apikey":        true,
	"api_key":       true,
	"x-token":       true,
	"token":         true,
	"secret":        true,
	"secret_key":    true,
	"authorization": true,
	"signature":     true,
	"cookie":        true,
}

const redactedValue = "[REDACTED]"

// CinetPayDebug logs the full CinetPay callback payload when enabled.
// The body is restored so the handler can read it again.
func CinetPayDebug(enabled bool, log coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxDebugBody))
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), c.Request.Body))
		}

		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"client_ip":  c.ClientIP(),
			"request_id": logger.RequestID(c.Request.Context()),
			"headers":    redactValues(c.Request.Header),
			"query":      redactValues(c.Request.URL.Query()),
		}

		contentType := c.ContentType()
		switch {
		case strings.Contains(contentType, "application/x-www-form-urlencoded"):
			if form, err := url.ParseQuery(string(body)); err == nil {
				fields["form"] = redactValues(form)
			}
		case len(body) > 0:
			var parsed map[string]any
			if json.Unmarshal(body, &parsed) == nil {
				fields["json"] = redactJSON(parsed)
			} else {
				fields["body_bytes"] = len(body)
			}
		}

		log.Info("CinetPay callback received", fields)
		c.Next()
	}
}

func redactValues(values map[string][]string) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if redacted[strings.ToLower(k)] {
			out[k] = redactedValue
			continue
		}
		if len(v) == 1 {
			out[k] = v[0]
		} else {
			out[k] = v
		}
	}
	return out
}

func redactJSON(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		switch {
		case redacted[strings.ToLower(k)]:
			out[k] = redactedValue
		default:
			if nested, ok := v.(map[string]any); ok {
				out[k] = redactJSON(nested)
			} else {
				out[k] = v
			}
		}
	}
	return out
}
