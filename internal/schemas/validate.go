// Package schemas provides JSON Schema validation for the structured
// documents crossing the pipeline's trust boundaries: the rule configuration
// document supplied at startup and the plan document returned by the
// external generator. Schemas are embedded at compile time.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Embedded schema filenames.
const (
	generatedPlanSchema = "generated_plan.schema.json"
	ruleDocumentSchema  = "rule_document.schema.json"
)

// ValidationError carries the field-level failures of one document.
type ValidationError struct {
	Schema string
	Errors []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "document failed %s validation:", e.Schema)
	for _, msg := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(msg)
	}
	return sb.String()
}

// ValidateGeneratedPlan validates a generated plan document against the
// embedded plan schema.
func ValidateGeneratedPlan(doc []byte) error {
	return validate(generatedPlanSchema, doc)
}

// ValidateRuleDocument validates a rule configuration document against the
// embedded rule document schema.
func ValidateRuleDocument(doc []byte) error {
	return validate(ruleDocumentSchema, doc)
}

func validate(schemaName string, doc []byte) error {
	schemaBytes, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaName, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation of %s failed to run: %w", schemaName, err)
	}

	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Schema: schemaName}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return verr
}
