package datastore

import (
	"net"
	"net/url"
	"strings"

	"github.com/cnabio/st2kv-go/credentials"
	"github.com/cnabio/st2kv-go/options"
)

// Query parameter names understood by the keys endpoint.
const (
	ParamDecrypt = "decrypt"
	ParamScope   = "scope"
	ParamUser    = "user"

	// ScopeUser selects keys owned by a single user.
	ScopeUser = "user"
)

// Request holds everything shared by the reads of one lookup invocation.
type Request struct {
	// BaseURL is the API endpoint, e.g. https://localhost/api.
	BaseURL string
	// HeaderName is the authentication header, empty when no credential
	// was resolved.
	HeaderName  string
	HeaderValue string
	// Query is appended to every key URL.
	Query url.Values
}

// NewRequest validates the options and combines them with the credential.
func NewRequest(opts options.LookupOptions, cred credentials.Credential) (Request, error) {
	if err := opts.Validate(); err != nil {
		return Request{}, err
	}

	q := url.Values{}
	if opts.Decrypt {
		q.Set(ParamDecrypt, "true")
	}
	if opts.User != "" {
		q.Set(ParamScope, ScopeUser)
		q.Set(ParamUser, opts.User)
	}

	r := Request{
		BaseURL: BaseURL(opts),
		Query:   q,
	}
	if name, value, ok := cred.Header(); ok {
		r.HeaderName = name
		r.HeaderValue = value
	}
	return r, nil
}

// BaseURL returns the API endpoint described by the options.
//
// api_url is used as given, apart from a trailing slash. Otherwise the URL
// is https://{hostname}[:{port}]/api. IPv6 addresses are bracketed; any
// other hostname, including one that already carries a port, is used as is.
func BaseURL(opts options.LookupOptions) string {
	if opts.APIURL != "" {
		return strings.TrimSuffix(opts.APIURL, "/")
	}

	host := opts.Hostname
	bare := strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	ip := net.ParseIP(bare)
	isIPv6 := ip != nil && ip.To4() == nil

	switch {
	case opts.Port != "" && isIPv6:
		host = net.JoinHostPort(bare, opts.Port)
	case opts.Port != "":
		host = host + ":" + opts.Port
	case isIPv6:
		host = "[" + bare + "]"
	}
	return "https://" + host + "/api"
}

// KeyURL returns the URL reading a single key.
func (r Request) KeyURL(key string) string {
	u := r.BaseURL + "/keys/" + url.PathEscape(key)
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}
