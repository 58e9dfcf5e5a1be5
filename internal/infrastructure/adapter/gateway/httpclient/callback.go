package httpclient

import (
	"encoding/json"
	"net/url"
	"strconv"

	gatewayport "github.com/guidy-app/joblight/internal/domain/port/gateway"
)

// Fields merges a callback's form, query and flat JSON body into one lookup.
// Form values win over query values, which win over body values.
type Fields struct {
	cb   gatewayport.Callback
	body map[string]any
}

// NewFields parses the callback body once
func NewFields(cb gatewayport.Callback) *Fields {
	f := &Fields{cb: cb}
	if len(cb.Body) > 0 {
		_ = json.Unmarshal(cb.Body, &f.body)
	}
	return f
}

// Get returns the first non-empty value for key
func (f *Fields) Get(key string) string {
	if v := f.cb.Form.Get(key); v != "" {
		return v
	}
	if v := f.cb.Query.Get(key); v != "" {
		return v
	}
	if v, ok := f.body[key]; ok {
		switch s := v.(type) {
		case string:
			return s
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64)
		}
	}
	return ""
}

// Body returns the decoded JSON body, if any
func (f *Fields) Body() map[string]any {
	return f.body
}

// Raw flattens every received value for storage in webhook_events
func (f *Fields) Raw() map[string]any {
	raw := make(map[string]any, len(f.body)+len(f.cb.Form)+len(f.cb.Query))
	for k, v := range f.body {
		raw[k] = v
	}
	copyValues(raw, f.cb.Query)
	copyValues(raw, f.cb.Form)
	return raw
}

func copyValues(dst map[string]any, values url.Values) {
	for k, v := range values {
		if len(v) == 1 {
			dst[k] = v[0]
		} else {
			dst[k] = v
		}
	}
}
