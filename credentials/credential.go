package credentials

import "fmt"

// Kind identifies the type of credential presented to the StackStorm API.
type Kind int

const (
	// None means no credential was found; requests are sent unauthenticated
	// and the server decides the outcome.
	None Kind = iota
	// APIKey is a key created with `st2 apikey create`.
	APIKey
	// AuthToken is a token issued by StackStorm auth.
	AuthToken
)

// Header names used to present each kind of credential.
const (
	HeaderAuthToken = "X-Auth-Token"
	HeaderAPIKey    = "St2-Api-Key"
)

func (k Kind) String() string {
	switch k {
	case APIKey:
		return "api_key"
	case AuthToken:
		return "auth_token"
	default:
		return "none"
	}
}

// Credential is the single credential resolved for one lookup invocation.
type Credential struct {
	Kind Kind
	// Value is the secret itself. It is empty for None.
	Value string
	// Source names where the value came from: an option name or an
	// environment variable.
	Source string
}

// Header returns the request header carrying the credential.
// ok is false for None, in which case no header is sent.
func (c Credential) Header() (name string, value string, ok bool) {
	switch c.Kind {
	case AuthToken:
		return HeaderAuthToken, c.Value, true
	case APIKey:
		return HeaderAPIKey, c.Value, true
	default:
		return "", "", false
	}
}

// String describes the credential without revealing its value.
func (c Credential) String() string {
	if c.Kind == None {
		return "none"
	}
	return fmt.Sprintf("%s from %s", c.Kind, c.Source)
}
