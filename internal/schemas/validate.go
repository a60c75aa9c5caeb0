// Package schemas provides JSON Schema validation for structured crew
// payloads, catching malformed LLM output before it reaches later stages.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// analysisSchema constrains the analyze stage's JSON payload. The shape
// mirrors types.Analysis; unknown fields are rejected so the write stage
// only ever sees data it understands.
const analysisSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["contact", "experience", "skills", "education"],
  "additionalProperties": false,
  "properties": {
    "contact": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "address": {"type": "string"},
        "linkedin": {"type": "string"},
        "github": {"type": "string"}
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["company"],
        "properties": {
          "company": {"type": "string"},
          "position": {"type": "string"},
          "duration": {"type": "string"},
          "achievements": {"type": "array", "items": {"type": "string"}},
          "description": {"type": "string"}
        }
      }
    },
    "skills": {"type": "array", "items": {"type": "string"}},
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "degree": {"type": "string"},
          "institution": {"type": "string"},
          "year": {"type": "string"},
          "gpa": {"type": "string"},
          "location": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    }
  }
}`

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "schema validation failed"
	}
	parts := make([]string, len(e.Errors))
	for i, fieldErr := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fieldErr.Field, fieldErr.Message)
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// SchemaLoadError represents errors loading or applying the schema itself
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateAnalysis validates an analyze-stage JSON document against the
// analysis schema. Returns nil when the document conforms.
func ValidateAnalysis(document string) error {
	schemaLoader := gojsonschema.NewStringLoader(analysisSchema)
	documentLoader := gojsonschema.NewStringLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Message: "failed to validate analysis document", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{}
	for _, desc := range result.Errors() {
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return validationErr
}
