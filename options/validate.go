package options

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/hashicorp/go-multierror"
)

// Validate checks that the options describe a reachable API endpoint.
//
// All problems are reported at once, as a single *ConfigurationError.
func (o LookupOptions) Validate() error {
	var result *multierror.Error

	if o.SchemaVersion != "" {
		if err := o.SchemaVersion.CheckSupported(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if o.APIURL != "" {
		if err := validateAPIURL(o.APIURL); err != nil {
			result = multierror.Append(result, err)
		}
	} else {
		if o.Hostname == "" {
			result = multierror.Append(result, fmt.Errorf("%s must be set when %s is empty", NameHostname, NameAPIURL))
		}
		if o.Port != "" {
			if err := validatePort(o.Port); err != nil {
				result = multierror.Append(result, err)
			}
			if hasPort(o.Hostname) {
				result = multierror.Append(result, fmt.Errorf("%s %q already includes a port, %s must be empty", NameHostname, o.Hostname, NamePort))
			}
		}
	}

	if o.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("%s must not be negative, got %s", NameTimeout, o.Timeout))
	}

	return configurationErrors(result)
}

func validateAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s %q is not a valid URL: %v", NameAPIURL, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s %q must use the http or https scheme", NameAPIURL, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s %q has no host", NameAPIURL, raw)
	}
	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" {
		return fmt.Errorf("%s %q must not carry a query or fragment", NameAPIURL, raw)
	}
	return nil
}

// hasPort reports whether hostname is in host:port form. A bare IPv6
// address is not.
func hasPort(hostname string) bool {
	_, port, err := net.SplitHostPort(hostname)
	return err == nil && port != ""
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%s %q is not a valid TCP port", NamePort, port)
	}
	return nil
}
