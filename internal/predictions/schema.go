package predictions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"career-predictor/internal/projection"
)

//go:embed prediction.schema.json
var predictionSchema []byte

// ValidationError lists every schema violation of a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a JSON path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, " %d. %s: %s;", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SchemaValidator checks predictions against the embedded output contract.
type SchemaValidator struct {
	schema *gojsonschema.Schema
}

// NewSchemaValidator compiles the embedded schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(predictionSchema))
	if err != nil {
		return nil, fmt.Errorf("compile prediction schema: %w", err)
	}
	return &SchemaValidator{schema: schema}, nil
}

// Validate encodes p and checks it against the schema.
func (v *SchemaValidator) Validate(p projection.Prediction) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prediction: %w", err)
	}
	return v.ValidateJSON(doc)
}

// ValidateJSON checks an already encoded prediction.
func (v *SchemaValidator) ValidateJSON(doc []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("validate prediction: %w", err)
	}
	if result.Valid() {
		return nil
	}
	ve := &ValidationError{}
	for _, re := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{Field: re.Field(), Message: re.Description()})
	}
	return ve
}
