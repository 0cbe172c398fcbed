package options

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/cnabio/st2kv-go/schema"
)

// FromMap decodes the named options handed over by the templating engine.
//
// The document is first checked against the options schema, so unknown
// names and wrongly typed values are rejected. A nil value leaves the
// option at its default. The decoded options are validated before they are
// returned.
func FromMap(raw map[string]interface{}) (LookupOptions, error) {
	valErrors, err := schema.ValidateOptions(raw)
	if err != nil {
		return LookupOptions{}, &ConfigurationError{Err: err}
	}
	if len(valErrors) > 0 {
		var result *multierror.Error
		for _, ve := range valErrors {
			result = multierror.Append(result, ve)
		}
		return LookupOptions{}, configurationErrors(result)
	}

	o := Default()
	var result *multierror.Error
	for name, value := range raw {
		if value == nil {
			continue
		}
		if err := o.set(name, value); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := configurationErrors(result); err != nil {
		return LookupOptions{}, err
	}

	return o, o.Validate()
}

func (o *LookupOptions) set(name string, value interface{}) error {
	var err error
	switch name {
	case NameSchemaVersion:
		o.SchemaVersion = schema.Version(fmt.Sprint(value))
	case NameAPIURL:
		o.APIURL = fmt.Sprint(value)
	case NameHostname:
		o.Hostname = fmt.Sprint(value)
	case NamePort:
		o.Port, err = toPort(value)
	case NameSSLVerify:
		o.SSLVerify, err = toBool(value)
	case NameAuthToken:
		o.AuthToken = fmt.Sprint(value)
	case NameAPIKey:
		o.APIKey = fmt.Sprint(value)
	case NameDecrypt:
		o.Decrypt, err = toBool(value)
	case NameUser:
		o.User = fmt.Sprint(value)
	case NameTimeout:
		o.Timeout, err = toDuration(value)
	default:
		err = fmt.Errorf("unknown option %q", name)
	}
	if err != nil {
		return fmt.Errorf("%s: %v", name, err)
	}
	return nil
}

func toBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
		return false, fmt.Errorf("cannot interpret %q as a boolean", v)
	default:
		return false, fmt.Errorf("cannot interpret %T as a boolean", value)
	}
}

func toPort(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case json.Number:
		return v.String(), nil
	case float64:
		if v != math.Trunc(v) {
			return "", fmt.Errorf("%v is not a whole number", v)
		}
		return strconv.FormatInt(int64(v), 10), nil
	default:
		return "", fmt.Errorf("cannot interpret %T as a port", value)
	}
}

// toDuration accepts Go duration strings ("30s", "1m30s") and plain
// numbers, which are read as seconds.
func toDuration(value interface{}) (time.Duration, error) {
	switch v := value.(type) {
	case string:
		if secs, err := strconv.ParseFloat(v, 64); err == nil {
			return seconds(secs), nil
		}
		return time.ParseDuration(v)
	case int:
		return time.Duration(v) * time.Second, nil
	case int64:
		return time.Duration(v) * time.Second, nil
	case float64:
		return seconds(v), nil
	case json.Number:
		secs, err := v.Float64()
		if err != nil {
			return 0, err
		}
		return seconds(secs), nil
	default:
		return 0, fmt.Errorf("cannot interpret %T as a duration", value)
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
