// Package jsonschema isolates the JSON Schema validation dependency.
package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator validates payloads against a compiled contract schema.
// santhosh-tekuri/jsonschema supports draft 2020-12, the dialect the
// upstream contract is written in.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidatorFromFile compiles the schema at path.
func NewValidatorFromFile(path string) (*Validator, error) {
	schema, err := jsonschema.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", path, err)
	}
	return &Validator{schema: schema}, nil
}

// NewValidator compiles an in-memory schema document under the given
// resource name (exported for testing).
func NewValidator(name string, schemaJSON []byte) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate checks raw JSON bytes against the schema.
func (v *Validator) Validate(data []byte) error {
	var instance interface{}
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := v.schema.Validate(instance); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
