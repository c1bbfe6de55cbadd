package seed

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
)

// NewReflector returns the reflector used to describe [Dataset].
func NewReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
}

// JSONSchemaExtend describes value as a positive number; it is decoded as a
// [json.Number] to keep its literal form.
func (Gene) JSONSchemaExtend(s *jsonschema.Schema) {
	v, ok := s.Properties.Get("value")
	if !ok {
		return
	}

	v.Type = "number"
	v.ExclusiveMinimum = json.Number("0")
}

// Schema returns the JSON schema of the seed format.
func Schema() *jsonschema.Schema {
	s := NewReflector().Reflect(&Dataset{})
	s.Title = "genebar seed"
	s.Description = "Initial dataset for the genebar ledger."

	return s
}

// WriteSchema writes the indented JSON schema to w.
func WriteSchema(w io.Writer) error {
	b, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal json schema: %w", err)
	}

	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to write json schema: %w", err)
	}

	return nil
}
