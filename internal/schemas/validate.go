// Package schemas validates AI-returned JSON payloads against embedded JSON
// Schemas before the coach accepts them. A payload that fails validation is
// treated the same as a parse failure: the deterministic path takes over.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Embedded schema file names
const (
	ScoreReportSchema         = "score_report.schema.json"
	InterviewAssessmentSchema = "interview_assessment.schema.json"
)

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateScoreReport validates an AI score-report payload
func ValidateScoreReport(jsonContent string) error {
	return validate(ScoreReportSchema, jsonContent)
}

// ValidateInterviewAssessment validates an AI interview-assessment payload
func ValidateInterviewAssessment(jsonContent string) error {
	return validate(InterviewAssessmentSchema, jsonContent)
}

// validate checks JSON content against an embedded schema
func validate(schemaName, jsonContent string) error {
	schemaBytes, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaName, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
