package task

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed params.schema.json
var paramsSchemaJSON string

var paramsSchema = jsonschema.MustCompileString("params.schema.json", paramsSchemaJSON)

// DecodeParams validates a JSON parameter object against the embedded schema
// and decodes it over base. Fields absent from raw keep their value in base,
// so callers pass DefaultParams with any configured overrides.
//
// Schema violations are returned as *ParameterError naming the offending
// field. Unknown fields are ignored.
func DecodeParams(raw []byte, base Params) (Params, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Params{}, fmt.Errorf("task: decode parameters: %w", err)
	}
	if err := paramsSchema.Validate(doc); err != nil {
		return Params{}, schemaError(err)
	}

	p := base
	if err := json.Unmarshal(raw, &p); err != nil {
		return Params{}, fmt.Errorf("task: decode parameters: %w", err)
	}

	return p, nil
}

// schemaError reduces a validation tree to its first leaf.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	field := strings.TrimPrefix(leaf.InstanceLocation, "/")
	if field == "" {
		field = "parameters"
	}

	return &ParameterError{Field: field, Reason: leaf.Message}
}
