package host

import (
	"os"

	"github.com/cnabio/st2kv-go/secrets"
)

var _ secrets.Environment = &Environment{}

// Environment reads variables from the environment of the current process.
type Environment struct{}

func (h *Environment) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}
