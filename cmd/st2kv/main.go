// Command st2kv prints values from the StackStorm key/value datastore.
//
// Usage:
//
//	st2kv [flags] KEY...
//
// One value is printed per line, in the order the keys were given.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cnabio/st2kv-go/datastore"
	"github.com/cnabio/st2kv-go/lookup"
	"github.com/cnabio/st2kv-go/options"
	"github.com/cnabio/st2kv-go/valuesource"
)

// Exit codes.
const (
	exitOK            = 0
	exitFailure       = 1
	exitNotFound      = 2
	exitUnauthorized  = 3
	exitConfiguration = 4
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Environ(), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one lookup. environ holds "NAME=value" pairs, as returned by
// os.Environ, and is the only environment consulted for credentials.
func run(ctx context.Context, args, environ []string, stdout, stderr io.Writer) int {
	cfg, opts, keys, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(stderr, "st2kv: %v\n", err)
		return exitConfiguration
	}

	lg := zap.NewNop()
	if cfg.Verbose {
		lg = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(stderr),
			zapcore.DebugLevel,
		))
	}
	defer lg.Sync() //nolint:errcheck

	l := lookup.New(
		lookup.WithEnvironment(valuesource.FromEnviron(environ)),
		lookup.WithLogger(lg),
	)
	values, err := l.Lookup(ctx, keys, opts)
	if err != nil {
		fmt.Fprintf(stderr, "st2kv: %v\n", err)
		return exitCode(err)
	}

	for _, v := range values {
		fmt.Fprintln(stdout, v)
	}
	return exitOK
}

func exitCode(err error) int {
	var (
		cfgErr  *options.ConfigurationError
		authErr *datastore.AuthenticationError
	)
	switch {
	case datastore.IsKeyNotFound(err):
		return exitNotFound
	case errors.As(err, &authErr):
		return exitUnauthorized
	case errors.As(err, &cfgErr):
		return exitConfiguration
	default:
		return exitFailure
	}
}
