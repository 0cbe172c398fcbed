package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsSchema_IsJSON(t *testing.T) {
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(OptionsSchema()), &doc))
	assert.Equal(t, false, doc["additionalProperties"])
}

func TestValidateOptions(t *testing.T) {
	testCases := []struct {
		name   string
		doc    map[string]interface{}
		fields []string
	}{{
		name: "empty",
		doc:  map[string]interface{}{},
	}, {
		name: "nil document",
		doc:  nil,
	}, {
		name: "all options",
		doc: map[string]interface{}{
			"api_url":    "https://st2.example.com/api",
			"hostname":   "st2.example.com",
			"port":       "443",
			"ssl_verify": false,
			"auth_token": "ysfd456",
			"api_key":    "xyz123",
			"decrypt":    "yes",
			"user":       "dave",
			"timeout":    "30s",
		},
	}, {
		name: "integer port and numeric timeout",
		doc: map[string]interface{}{
			"port":    8443,
			"timeout": 2.5,
		},
	}, {
		name: "null values",
		doc: map[string]interface{}{
			"port":       nil,
			"auth_token": nil,
		},
	}, {
		name:   "unknown option",
		doc:    map[string]interface{}{"passwd": "hunter2"},
		fields: []string{"(root)"},
	}, {
		name:   "wrong type",
		doc:    map[string]interface{}{"user": 42},
		fields: []string{"user"},
	}, {
		name:   "port out of range",
		doc:    map[string]interface{}{"port": 70000},
		fields: []string{"port"},
	}, {
		name:   "port not numeric",
		doc:    map[string]interface{}{"port": "https"},
		fields: []string{"port"},
	}, {
		name:   "negative timeout",
		doc:    map[string]interface{}{"timeout": -1},
		fields: []string{"timeout"},
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			valErrors, err := ValidateOptions(tc.doc)
			require.NoError(t, err)

			var fields []string
			for _, ve := range valErrors {
				fields = append(fields, ve.Field)
			}
			assert.Equal(t, tc.fields, fields)
		})
	}
}
