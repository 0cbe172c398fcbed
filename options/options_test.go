package options

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	o := Default()

	is := assert.New(t)
	is.Equal("localhost", o.Hostname)
	is.True(o.SSLVerify)
	is.False(o.Decrypt)
	is.Empty(o.APIURL)
	is.Empty(o.Port)
	is.Empty(o.AuthToken)
	is.Empty(o.APIKey)
	is.Empty(o.User)
	is.Zero(o.Timeout)
	is.NoError(o.Validate())
}

func TestFromMap(t *testing.T) {
	testCases := []struct {
		name string
		raw  map[string]interface{}
		want func(o *LookupOptions)
	}{{
		name: "nothing set",
		raw:  nil,
		want: func(o *LookupOptions) {},
	}, {
		name: "every option",
		raw: map[string]interface{}{
			"api_url":    "http://st2.domain.tld/st2/api",
			"hostname":   "ignored.tld",
			"port":       "9101",
			"ssl_verify": false,
			"auth_token": "ysfd456",
			"api_key":    "xyz123",
			"decrypt":    true,
			"user":       "dave",
			"timeout":    "1m",
		},
		want: func(o *LookupOptions) {
			o.APIURL = "http://st2.domain.tld/st2/api"
			o.Hostname = "ignored.tld"
			o.Port = "9101"
			o.SSLVerify = false
			o.AuthToken = "ysfd456"
			o.APIKey = "xyz123"
			o.Decrypt = true
			o.User = "dave"
			o.Timeout = time.Minute
		},
	}, {
		name: "null values keep defaults",
		raw: map[string]interface{}{
			"hostname":   nil,
			"ssl_verify": nil,
			"port":       nil,
		},
		want: func(o *LookupOptions) {},
	}, {
		name: "integer port",
		raw:  map[string]interface{}{"port": 443},
		want: func(o *LookupOptions) { o.Port = "443" },
	}, {
		name: "float port from a JSON host",
		raw:  map[string]interface{}{"port": float64(8443)},
		want: func(o *LookupOptions) { o.Port = "8443" },
	}, {
		name: "string booleans",
		raw:  map[string]interface{}{"ssl_verify": "no", "decrypt": "Yes"},
		want: func(o *LookupOptions) {
			o.SSLVerify = false
			o.Decrypt = true
		},
	}, {
		name: "timeout in seconds",
		raw:  map[string]interface{}{"timeout": 2.5},
		want: func(o *LookupOptions) { o.Timeout = 2500 * time.Millisecond },
	}, {
		name: "timeout as numeric string",
		raw:  map[string]interface{}{"timeout": "10"},
		want: func(o *LookupOptions) { o.Timeout = 10 * time.Second },
	}, {
		name: "schema version",
		raw:  map[string]interface{}{"schemaVersion": "1.2.0"},
		want: func(o *LookupOptions) { o.SchemaVersion = "1.2.0" },
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromMap(tc.raw)
			require.NoError(t, err)

			want := Default()
			tc.want(&want)
			assert.Equal(t, want, got)
		})
	}
}

func TestFromMap_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		raw      map[string]interface{}
		contains []string
	}{{
		name:     "unknown option",
		raw:      map[string]interface{}{"passwd": "hunter2"},
		contains: []string{"passwd"},
	}, {
		name:     "wrong type",
		raw:      map[string]interface{}{"decrypt": 1},
		contains: []string{"decrypt"},
	}, {
		name:     "unparsable boolean",
		raw:      map[string]interface{}{"ssl_verify": "maybe"},
		contains: []string{`ssl_verify: cannot interpret "maybe" as a boolean`},
	}, {
		name:     "unparsable timeout",
		raw:      map[string]interface{}{"timeout": "soon"},
		contains: []string{"timeout:"},
	}, {
		name:     "relative api url",
		raw:      map[string]interface{}{"api_url": "st2.domain.tld/api"},
		contains: []string{`api_url "st2.domain.tld/api" must use the http or https scheme`},
	}, {
		name: "several problems at once",
		raw: map[string]interface{}{
			"hostname": "",
			"port":     "0",
		},
		contains: []string{
			"hostname must be set when api_url is empty",
			`port "0" is not a valid TCP port`,
		},
	}, {
		name:     "unsupported schema version",
		raw:      map[string]interface{}{"schemaVersion": "2.0.0"},
		contains: []string{`unsupported schema version "2.0.0"`},
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromMap(tc.raw)
			require.Error(t, err)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "expected a ConfigurationError, got %T", err)
			for _, s := range tc.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		opts LookupOptions
		err  string
	}{{
		name: "api url wins over an empty hostname",
		opts: LookupOptions{APIURL: "https://x/api"},
	}, {
		name: "api url without host",
		opts: LookupOptions{APIURL: "https:///api"},
		err:  `invalid lookup configuration: api_url "https:///api" has no host`,
	}, {
		name: "malformed api url",
		opts: LookupOptions{APIURL: "https://[::1"},
		err:  `invalid lookup configuration: api_url "https://[::1" is not a valid URL: parse "https://[::1": missing ']' in host`,
	}, {
		name: "port out of range",
		opts: LookupOptions{Hostname: "h", Port: "65536"},
		err:  `invalid lookup configuration: port "65536" is not a valid TCP port`,
	}, {
		name: "port ignored with api url",
		opts: LookupOptions{APIURL: "https://x/api", Port: "nope"},
	}, {
		name: "hostname carrying a port",
		opts: LookupOptions{Hostname: "st2.domain.tld:8443"},
	}, {
		name: "hostname carrying a port and a port option",
		opts: LookupOptions{Hostname: "st2.domain.tld:8443", Port: "443"},
		err:  `invalid lookup configuration: hostname "st2.domain.tld:8443" already includes a port, port must be empty`,
	}, {
		name: "ipv6 hostname and port",
		opts: LookupOptions{Hostname: "::1", Port: "443"},
	}, {
		name: "api url with a query",
		opts: LookupOptions{APIURL: "https://x/api?token=abc"},
		err:  `invalid lookup configuration: api_url "https://x/api?token=abc" must not carry a query or fragment`,
	}, {
		name: "api url with a fragment",
		opts: LookupOptions{APIURL: "https://x/api#keys"},
		err:  `invalid lookup configuration: api_url "https://x/api#keys" must not carry a query or fragment`,
	}, {
		name: "negative timeout",
		opts: LookupOptions{Hostname: "h", Timeout: -time.Second},
		err:  "invalid lookup configuration: timeout must not be negative, got -1s",
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	o, err := Load("testdata/options.yaml")
	require.NoError(t, err)

	want := Default()
	want.SchemaVersion = "1.0.0"
	want.Hostname = "stackstorm.domain.tld"
	want.Port = "8443"
	want.SSLVerify = false
	want.APIKey = "xyz123"
	want.Decrypt = true
	want.User = "dave"
	want.Timeout = 45 * time.Second
	assert.Equal(t, want, o)
}

func TestLoad_UnknownOption(t *testing.T) {
	_, err := Load("testdata/unknown.yaml")
	require.Error(t, err)
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "passwd")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read options file testdata/missing.yaml")
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("hostname: [unterminated"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "could not parse options file")
}

func TestReadFile(t *testing.T) {
	raw, err := ReadFile("testdata/options.yaml")
	require.NoError(t, err)

	is := assert.New(t)
	is.Equal("stackstorm.domain.tld", raw["hostname"])
	is.Equal(8443, raw["port"])
	is.Equal(false, raw["ssl_verify"])
	is.Equal("45s", raw["timeout"])

	raw["user"] = "bob"
	o, err := FromMap(raw)
	require.NoError(t, err)
	is.Equal("bob", o.User)
	is.Equal("8443", o.Port)
}

func TestReadFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, ioutil.WriteFile(path, nil, 0600))

	raw, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, raw)
}
