// Package options describes how a lookup reaches the StackStorm datastore:
// where the API lives, which credential to present and how keys are read.
package options

import (
	"time"

	"github.com/cnabio/st2kv-go/schema"
)

// Option names as passed by the templating engine.
const (
	NameSchemaVersion = "schemaVersion"
	NameAPIURL        = "api_url"
	NameHostname      = "hostname"
	NamePort          = "port"
	NameSSLVerify     = "ssl_verify"
	NameAuthToken     = "auth_token"
	NameAPIKey        = "api_key"
	NameDecrypt       = "decrypt"
	NameUser          = "user"
	NameTimeout       = "timeout"
)

// DefaultHostname is used to build the API URL when neither api_url nor
// hostname is given.
const DefaultHostname = "localhost"

// LookupOptions holds the named options of one lookup invocation.
//
// It is a plain value: copies are independent and nothing in this module
// mutates options after they have been decoded.
type LookupOptions struct {
	// SchemaVersion is the version of the options document, when one was given.
	SchemaVersion schema.Version `json:"schemaVersion,omitempty" yaml:"schemaVersion,omitempty"`
	// APIURL is the full URL of the API endpoint. When set, Hostname and
	// Port are ignored.
	APIURL string `json:"api_url,omitempty" yaml:"api_url,omitempty"`
	// Hostname of the StackStorm server.
	Hostname string `json:"hostname" yaml:"hostname"`
	// Port of the StackStorm server. Empty means the scheme default.
	Port string `json:"port,omitempty" yaml:"port,omitempty"`
	// SSLVerify controls verification of the server certificate.
	SSLVerify bool `json:"ssl_verify" yaml:"ssl_verify"`
	// AuthToken is an authentication token received from StackStorm auth.
	AuthToken string `json:"auth_token,omitempty" yaml:"auth_token,omitempty"`
	// APIKey is an API key generated with `st2 apikey create`.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	// Decrypt asks the datastore to return secret values in plain text.
	Decrypt bool `json:"decrypt" yaml:"decrypt"`
	// User owns the key; required to read user-scoped keys.
	User string `json:"user,omitempty" yaml:"user,omitempty"`
	// Timeout bounds each request. Zero means no explicit deadline.
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Default returns the options used when the caller sets nothing.
func Default() LookupOptions {
	return LookupOptions{
		Hostname:  DefaultHostname,
		SSLVerify: true,
	}
}
