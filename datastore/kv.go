package datastore

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// KeyValuePair is a datastore entry as returned by the keys endpoint.
type KeyValuePair struct {
	Name      string          `json:"name"`
	Value     json.RawMessage `json:"value"`
	Scope     string          `json:"scope,omitempty"`
	User      string          `json:"user,omitempty"`
	Secret    bool            `json:"secret,omitempty"`
	Encrypted bool            `json:"encrypted,omitempty"`
}

// errNoValue is returned by Text when the entry carries no value field.
var errNoValue = errors.New("response has no value field")

// Text returns the value for substitution into a template.
// JSON strings are returned unquoted; any other JSON value is returned as
// compact JSON text.
func (kv KeyValuePair) Text() (string, error) {
	raw := bytes.TrimSpace(kv.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", errNoValue
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", errors.Wrap(err, "could not decode string value")
		}
		return s, nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", errors.Wrap(err, "could not decode value")
	}
	return buf.String(), nil
}

// faultResponse is the error document returned by the StackStorm API.
type faultResponse struct {
	Faultstring string `json:"faultstring"`
}

const maxDetailLength = 256

// readDetail extracts a short description of a failed response from its body.
func readDetail(body io.Reader, status string) string {
	data, _ := io.ReadAll(io.LimitReader(body, 4096))

	var fault faultResponse
	if err := json.Unmarshal(data, &fault); err == nil && fault.Faultstring != "" {
		return fault.Faultstring
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return status
	}
	if len(text) > maxDetailLength {
		text = text[:maxDetailLength] + "..."
	}
	return text
}
