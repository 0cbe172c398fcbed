package schema

import (
	_ "embed"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed options.schema.json
var optionsSchema string

// OptionsSchema returns the JSON schema that raw lookup options are validated against.
func OptionsSchema() string {
	return optionsSchema
}

// ValidationError describes a single way in which a document does not
// conform to its schema.
type ValidationError struct {
	// Field is the path of the offending value, "(root)" for the document itself.
	Field string
	// Message is a human readable description of the problem.
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateOptions validates a raw options document, as handed over by the
// templating engine, against the options schema.
//
// The returned error is only set when validation could not be performed;
// schema violations are reported in the returned slice.
func ValidateOptions(doc map[string]interface{}) ([]ValidationError, error) {
	if doc == nil {
		doc = map[string]interface{}{}
	}

	sl := gojsonschema.NewStringLoader(optionsSchema)
	dl := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(sl, dl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate options")
	}

	var valErrors []ValidationError
	for _, re := range result.Errors() {
		valErrors = append(valErrors, ValidationError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return valErrors, nil
}
