package options

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Load reads lookup options from a YAML document at the given path.
//
// The document uses the same option names as the templating engine, e.g.
//
//	schemaVersion: 1.0.0
//	hostname: stackstorm.domain.tld
//	port: 8443
//	decrypt: true
func Load(path string) (LookupOptions, error) {
	raw, err := ReadFile(path)
	if err != nil {
		return LookupOptions{}, err
	}
	return FromMap(raw)
}

// ReadFile reads the named options of a YAML document without decoding
// them, so that further options can be layered over the file before the
// result is passed to FromMap.
func ReadFile(path string) (map[string]interface{}, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read options file %s", path)
	}

	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigurationError{Err: errors.Wrapf(err, "could not parse options file %s", path)}
	}
	return raw, nil
}
