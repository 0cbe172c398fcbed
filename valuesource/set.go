package valuesource

import (
	"strings"

	"github.com/cnabio/st2kv-go/secrets"
)

var _ secrets.Environment = Set{}

// Set is an in-memory set of named values.
// It stands in for the process environment wherever the caller wants to
// control exactly which variables the credential resolver can see.
type Set map[string]string

// FromEnviron builds a Set from "NAME=value" pairs, as returned by os.Environ.
// Malformed entries are skipped; later duplicates win.
func FromEnviron(pairs []string) Set {
	s := make(Set, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			continue
		}
		s[name] = value
	}
	return s
}

// LookupEnv returns the named value and whether it is present in the set.
func (s Set) LookupEnv(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}
