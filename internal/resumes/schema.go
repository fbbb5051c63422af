package resumes

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var createSchema []byte

// ValidateCreatePayload checks the raw request body against the resume
// schema. The returned details list one message per violation.
func ValidateCreatePayload(raw []byte) ([]string, error) {
	schemaLoader := gojsonschema.NewBytesLoader(createSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrInvalidInput)
	}
	if result.Valid() {
		return nil, nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return details, ErrInvalidInput
}
