package secrets

// Environment defines the interface for reading named values from an
// environment, such as the process environment of the calling host.
type Environment interface {
	// LookupEnv returns the value of the named variable and whether it was
	// defined at all.
	// Examples:
	// - name=ST2_AUTH_TOKEN
	// - name=ST2_API_KEY
	LookupEnv(name string) (string, bool)
}

// EnvironmentFunc adapts a plain lookup function, such as os.LookupEnv, to
// an Environment.
type EnvironmentFunc func(name string) (string, bool)

// LookupEnv calls f(name).
func (f EnvironmentFunc) LookupEnv(name string) (string, bool) {
	return f(name)
}
