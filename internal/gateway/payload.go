package gateway

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// PayloadKind classifies a response body.
type PayloadKind int

const (
	// PayloadEmpty is a zero-length body.
	PayloadEmpty PayloadKind = iota
	// PayloadJSON is a body that parsed as JSON.
	PayloadJSON
	// PayloadText is a non-empty body that is not valid JSON.
	PayloadText
)

// String returns the kind name.
func (k PayloadKind) String() string {
	switch k {
	case PayloadJSON:
		return "json"
	case PayloadText:
		return "text"
	default:
		return "empty"
	}
}

// Payload is the parsed response body.
type Payload struct {
	Kind PayloadKind
	Raw  []byte
}

// ParsePayload classifies body without failing.
func ParsePayload(body []byte) Payload {
	if len(body) == 0 {
		return Payload{Kind: PayloadEmpty}
	}
	if json.Valid(body) {
		return Payload{Kind: PayloadJSON, Raw: body}
	}
	return Payload{Kind: PayloadText, Raw: body}
}

// Value returns the decoded payload: a JSON value, the raw string for text,
// or nil when empty.
func (p Payload) Value() any {
	switch p.Kind {
	case PayloadJSON:
		var v any
		if err := json.Unmarshal(p.Raw, &v); err != nil {
			return string(p.Raw)
		}
		return v
	case PayloadText:
		return string(p.Raw)
	default:
		return nil
	}
}

// Message returns the "message" field when the payload is a JSON object
// whose message is a string.
func (p Payload) Message() (string, bool) {
	if p.Kind != PayloadJSON {
		return "", false
	}
	var shape struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(p.Raw, &shape); err != nil || shape.Message == nil {
		return "", false
	}
	return *shape.Message, true
}

// Decode stores the payload into out.
//
// JSON is unmarshalled, text is delivered only to a *string, and an empty
// payload leaves out untouched.
func (p Payload) Decode(out any) error {
	if out == nil {
		return nil
	}
	switch p.Kind {
	case PayloadJSON:
		if err := json.Unmarshal(p.Raw, out); err != nil {
			return fmt.Errorf("decode response into %s: %w", reflect.TypeOf(out), err)
		}
	case PayloadText:
		if s, ok := out.(*string); ok {
			*s = string(p.Raw)
		}
	}
	return nil
}

// Content returns the list carried by the payload: the payload itself when
// it is a JSON array, or its "content" field when it is an object.
func (p Payload) Content() (json.RawMessage, bool) {
	if p.Kind != PayloadJSON {
		return nil, false
	}
	var probe any
	if err := json.Unmarshal(p.Raw, &probe); err != nil {
		return nil, false
	}
	switch probe.(type) {
	case []any:
		return p.Raw, true
	case map[string]any:
		var envelope struct {
			Content json.RawMessage `json:"content"`
		}
		if err := json.Unmarshal(p.Raw, &envelope); err != nil || len(envelope.Content) == 0 {
			return nil, false
		}
		return envelope.Content, true
	default:
		return nil, false
	}
}
