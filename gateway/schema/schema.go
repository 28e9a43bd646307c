// Package schema validates raw gateway event payloads against an
// embedded JSON schema of the API Gateway v2 HTTP event format.
package schema

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrValidationFailed is returned when a payload does not match the
// event schema.
var ErrValidationFailed = errors.New("event validation failed")

type Schema struct {
	schema *gojsonschema.Schema
}

//go:embed event.json
var event json.RawMessage

var eventLoader = gojsonschema.NewBytesLoader(event)

// NewEventSchema compiles the embedded gateway event schema.
func NewEventSchema() (*Schema, error) {
	s, err := gojsonschema.NewSchema(eventLoader)
	if err != nil {
		return nil, err
	}

	return &Schema{schema: s}, nil
}

// Validate checks a raw event payload against the schema.
func (s *Schema) Validate(payload []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, resultError := range result.Errors() {
		details = append(details, resultError.String())
	}

	return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(details, "; "))
}
