// Package schemas provides JSON Schema validation for outfit catalog records.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/stylesense/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed outfit_record.schema.json
var outfitRecordSchema string

// OutfitRecordSchema returns the embedded outfit record schema document.
func OutfitRecordSchema() string {
	return outfitRecordSchema
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// RecordError ties a validation failure to the record that produced it.
type RecordError struct {
	Index    int
	Category string
	Name     string
	Err      error
}

func (e *RecordError) Error() string {
	label := e.Category
	if e.Name != "" {
		label += "/" + e.Name
	}
	return fmt.Sprintf("record %d (%s): %v", e.Index, label, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// ValidateRecordFile validates a JSON file holding a single outfit record.
func ValidateRecordFile(jsonPath string) error {
	absPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return fmt.Errorf("JSON file not found: %s", absPath)
	}

	return validate(
		gojsonschema.NewStringLoader(outfitRecordSchema),
		gojsonschema.NewReferenceLoader("file://"+absPath),
		"(embedded outfit_record)",
	)
}

// ValidateRecord validates one outfit record against the embedded schema.
func ValidateRecord(rec types.OutfitRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	return ValidateJSONString(outfitRecordSchema, string(data))
}

// ValidateRecords validates every record and returns one RecordError per
// failing record, in input order.
func ValidateRecords(recs []types.OutfitRecord) []error {
	var errs []error
	for i, rec := range recs {
		if err := ValidateRecord(rec); err != nil {
			errs = append(errs, &RecordError{
				Index:    i,
				Category: rec.Category.String(),
				Name:     rec.Name,
				Err:      err,
			})
		}
	}
	return errs
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent),
		"(string schema)",
	)
}

func validate(schemaLoader, documentLoader gojsonschema.JSONLoader, schemaPath string) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaPath,
			Message: "schema validation failed during load",
			Cause:   err,
		}
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
