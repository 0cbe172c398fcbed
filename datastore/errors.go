package datastore

import (
	"fmt"

	"github.com/pkg/errors"
)

// KeyNotFoundError is returned when the datastore has no such key.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found in the datastore", e.Key)
}

// AuthenticationError is returned when the datastore rejects the credential,
// or requires one that was not sent.
type AuthenticationError struct {
	Key        string
	StatusCode int
	Detail     string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed reading key %q: status %d: %s", e.Key, e.StatusCode, e.Detail)
}

// RequestError is returned for transport failures, unexpected statuses and
// responses that cannot be decoded.
type RequestError struct {
	Key string
	// StatusCode is zero when no response was received.
	StatusCode int
	Detail     string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request for key %q failed: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("request for key %q failed with status %d: %s", e.Key, e.StatusCode, e.Detail)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsKeyNotFound reports whether err, or an error it wraps, is a KeyNotFoundError.
func IsKeyNotFound(err error) bool {
	var nf *KeyNotFoundError
	return errors.As(err, &nf)
}
