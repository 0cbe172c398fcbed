package main

import (
	"flag"
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/pkg/errors"

	"github.com/cnabio/st2kv-go/options"
)

// Config holds the command line flags.
//
// The option flags are layered over the options file: only flags given on
// the command line replace a value from the file. Credentials in the
// environment are picked up by the lookup itself, through the ST2_*
// variables.
type Config struct {
	ConfigFile string        `flag:"config" usage:"YAML options file (default st2kv.yaml, then /etc/st2kv/config.yaml)"`
	APIURL     string        `flag:"api-url" usage:"URL of the StackStorm API endpoint (overrides hostname and port)"`
	Hostname   string        `flag:"hostname" default:"localhost" usage:"StackStorm host used to build https://<hostname>[:<port>]/api"`
	Port       string        `flag:"port" usage:"StackStorm port used to build the API URL"`
	SSLVerify  bool          `flag:"ssl-verify" default:"true" usage:"Verify the server certificate (--ssl-verify=false to disable)"`
	AuthToken  string        `flag:"auth-token" usage:"StackStorm auth token"`
	APIKey     string        `flag:"api-key" usage:"StackStorm API key"`
	Decrypt    bool          `flag:"decrypt" default:"false" usage:"Return secret values decrypted (--decrypt=true)"`
	User       string        `flag:"user" usage:"Owner of user-scoped keys"`
	Timeout    time.Duration `flag:"timeout" usage:"Per request timeout, 0 for none"`
	Verbose    bool          `flag:"verbose" default:"false" usage:"Log requests to stderr"`
}

// configFiles are tried in order when no --config is given; the first one
// found is loaded.
var configFiles = []string{"st2kv.yaml", "/etc/st2kv/config.yaml"}

// flagOptions maps option flags to the option they set.
var flagOptions = map[string]string{
	"api-url":    options.NameAPIURL,
	"hostname":   options.NameHostname,
	"port":       options.NamePort,
	"ssl-verify": options.NameSSLVerify,
	"auth-token": options.NameAuthToken,
	"api-key":    options.NameAPIKey,
	"decrypt":    options.NameDecrypt,
	"user":       options.NameUser,
	"timeout":    options.NameTimeout,
}

// loadConfig parses the command line and returns the flags, the lookup
// options and the keys to look up.
func loadConfig(args []string) (*Config, options.LookupOptions, []string, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipEnv:   true,
		SkipFiles: true,
		Args:      args,
	})
	if err := loader.Load(); err != nil {
		return nil, options.LookupOptions{}, nil, errors.Wrap(err, "parse flags")
	}

	raw := map[string]interface{}{}
	path, err := cfg.optionsFile()
	if err != nil {
		return nil, options.LookupOptions{}, nil, err
	}
	if path != "" {
		if raw, err = options.ReadFile(path); err != nil {
			return nil, options.LookupOptions{}, nil, err
		}
	}

	loader.Flags().Visit(func(f *flag.Flag) {
		if name, ok := flagOptions[f.Name]; ok {
			raw[name] = f.Value.String()
		}
	})

	opts, err := options.FromMap(raw)
	if err != nil {
		return nil, options.LookupOptions{}, nil, err
	}
	return &cfg, opts, loader.Flags().Args(), nil
}

// optionsFile returns the options file to load, or "" when there is none.
func (c *Config) optionsFile() (string, error) {
	if c.ConfigFile != "" {
		return c.ConfigFile, nil
	}
	for _, path := range configFiles {
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", errors.Wrapf(err, "could not read options file %s", path)
		}
	}
	return "", nil
}
