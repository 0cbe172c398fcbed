package valuesource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnviron(t *testing.T) {
	set := FromEnviron([]string{
		"ST2_API_KEY=xyz123",
		"ST2_AUTH_TOKEN=",
		"EQUALS=a=b",
		"malformed",
		"=nameless",
		"ST2_API_KEY=override",
	})

	is := assert.New(t)
	is.Len(set, 3)
	is.Equal("override", set["ST2_API_KEY"])
	is.Equal("a=b", set["EQUALS"])

	val, ok := set.LookupEnv("ST2_AUTH_TOKEN")
	is.True(ok, "an empty variable is still defined")
	is.Empty(val)

	_, ok = set.LookupEnv("malformed")
	is.False(ok)
}
