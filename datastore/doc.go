// Package datastore reads keys from the StackStorm key/value datastore over
// its HTTP API.
//
// A Request is built once per lookup from the options and the resolved
// credential, then a Client issues one GET per key:
//
//	GET {base}/keys/{key}?decrypt=true&scope=user&user=dave
//
// Every response is classified into a value, a *KeyNotFoundError, an
// *AuthenticationError or a *RequestError.
//
// Reads are counted in RequestsTotal and RequestDuration. A program that
// exposes metrics registers them once with RegisterMetrics. HTTP clients
// built by NewHTTPClient trace requests through otelhttp, which reports to
// the global OpenTelemetry tracer provider; nothing is exported until the
// program installs one with otel.SetTracerProvider.
package datastore
