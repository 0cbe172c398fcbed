package credentials

import (
	"github.com/cnabio/st2kv-go/options"
	"github.com/cnabio/st2kv-go/secrets"
)

// Environment variables consulted when no credential option is given.
const (
	EnvActionAuthToken = "ST2_ACTION_AUTH_TOKEN"
	EnvAuthToken       = "ST2_AUTH_TOKEN"
	EnvAPIKey          = "ST2_API_KEY"
)

// envSources lists the environment variables in order of precedence.
var envSources = []struct {
	name string
	kind Kind
}{
	{EnvActionAuthToken, AuthToken},
	{EnvAuthToken, AuthToken},
	{EnvAPIKey, APIKey},
}

// Resolve picks the credential to present for a lookup.
//
// Precedence, highest first:
//
//   - the auth_token option
//   - the api_key option
//   - ST2_ACTION_AUTH_TOKEN, set when running inside a StackStorm action
//   - ST2_AUTH_TOKEN
//   - ST2_API_KEY
//
// The first non-empty source wins and the others are ignored. When nothing
// matches, a credential of kind None is returned. env may be nil, in which
// case only the options are consulted.
func Resolve(opts options.LookupOptions, env secrets.Environment) Credential {
	if opts.AuthToken != "" {
		return Credential{Kind: AuthToken, Value: opts.AuthToken, Source: options.NameAuthToken}
	}
	if opts.APIKey != "" {
		return Credential{Kind: APIKey, Value: opts.APIKey, Source: options.NameAPIKey}
	}

	if env == nil {
		return Credential{Kind: None}
	}
	for _, src := range envSources {
		if v, ok := env.LookupEnv(src.name); ok && v != "" {
			return Credential{Kind: src.kind, Value: v, Source: src.name}
		}
	}
	return Credential{Kind: None}
}
