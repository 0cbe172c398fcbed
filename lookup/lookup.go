// Package lookup is the entry point called by the templating engine: it
// resolves a list of datastore keys to their values.
package lookup

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/oklog/ulid"
	"go.uber.org/zap"

	"github.com/cnabio/st2kv-go/credentials"
	"github.com/cnabio/st2kv-go/datastore"
	"github.com/cnabio/st2kv-go/options"
	"github.com/cnabio/st2kv-go/secrets"
	"github.com/cnabio/st2kv-go/secrets/host"
)

// Lookup resolves keys against the datastore. The zero value reads
// credentials from the process environment and logs nothing.
type Lookup struct {
	// Env is consulted for credentials when none is given as an option.
	Env secrets.Environment
	// HTTPClient, when set, is used instead of a client built from the
	// ssl_verify and timeout options.
	HTTPClient *http.Client
	// Logger receives debug output. Credentials are never logged.
	Logger *zap.Logger
}

// Option configures a Lookup.
type Option func(*Lookup)

// WithEnvironment sets the environment consulted for credentials.
func WithEnvironment(env secrets.Environment) Option {
	return func(l *Lookup) {
		l.Env = env
	}
}

// WithHTTPClient sets the HTTP client used for every request.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Lookup) {
		l.HTTPClient = c
	}
}

// WithLogger sets the logger.
func WithLogger(lg *zap.Logger) Option {
	return func(l *Lookup) {
		l.Logger = lg
	}
}

// New creates a Lookup.
func New(opts ...Option) *Lookup {
	l := &Lookup{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run resolves keys with the process environment and default settings.
// It is the function a templating engine calls.
func Run(ctx context.Context, keys []string, raw map[string]interface{}) ([]string, error) {
	return New().Run(ctx, keys, raw)
}

// Run decodes the named options and resolves keys.
func (l *Lookup) Run(ctx context.Context, keys []string, raw map[string]interface{}) ([]string, error) {
	if err := checkKeys(keys); err != nil {
		return nil, err
	}
	opts, err := options.FromMap(raw)
	if err != nil {
		return nil, err
	}
	return l.Lookup(ctx, keys, opts)
}

// Lookup resolves keys, in order, to their values.
//
// Errors are returned as produced: *options.ConfigurationError before any
// request is sent, then *datastore.KeyNotFoundError,
// *datastore.AuthenticationError or *datastore.RequestError for the first
// key that fails. No values are returned alongside an error.
func (l *Lookup) Lookup(ctx context.Context, keys []string, opts options.LookupOptions) ([]string, error) {
	if err := checkKeys(keys); err != nil {
		return nil, err
	}

	logger := l.logger().With(zap.String("invocation", invocationID()))

	cred := credentials.Resolve(opts, l.environment())
	req, err := datastore.NewRequest(opts, cred)
	if err != nil {
		return nil, err
	}

	logger.Debug("resolved lookup",
		zap.Int("keys", len(keys)),
		zap.String("base_url", req.BaseURL),
		zap.Stringer("credential", cred),
		zap.Bool("decrypt", opts.Decrypt),
		zap.String("user", opts.User),
	)

	httpClient := l.HTTPClient
	if httpClient == nil {
		httpClient = datastore.NewHTTPClient(opts)
	}
	client := datastore.NewClient(req,
		datastore.WithHTTPClient(httpClient),
		datastore.WithLogger(logger),
	)

	values, err := client.Fetch(ctx, keys)
	if err != nil {
		logger.Debug("lookup failed", zap.Error(err))
		return nil, err
	}
	return values, nil
}

func checkKeys(keys []string) error {
	if len(keys) == 0 {
		return options.NewConfigurationError("at least one key is required")
	}
	for i, key := range keys {
		if key == "" {
			return options.NewConfigurationError("key %d is empty", i)
		}
	}
	return nil
}

func (l *Lookup) environment() secrets.Environment {
	if l.Env != nil {
		return l.Env
	}
	return &host.Environment{}
}

func (l *Lookup) logger() *zap.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return zap.NewNop()
}

// invocationID generates a ULID correlating the log entries of one call.
func invocationID() string {
	now := time.Now()
	entropy := rand.New(rand.NewSource(now.UnixNano()))
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}
