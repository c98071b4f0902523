package schema

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Parse decodes a serialized FormSchema and verifies it against the
// structural invariants. A schema referencing a kind outside the catalog
// fails with ErrUnknownFieldKind rather than silently dropping the field.
func Parse(data []byte) (FormSchema, error) {
	if len(data) == 0 {
		return FormSchema{}, fmt.Errorf("schema: document payload is empty")
	}

	var out FormSchema
	if err := json.Unmarshal(data, &out); err != nil {
		return FormSchema{}, fmt.Errorf("schema: decode: %w", err)
	}
	if err := out.Validate(); err != nil {
		return FormSchema{}, err
	}
	return out, nil
}

// Encode serializes the schema for persistence. The output is plain JSON and
// round-trips through Parse without loss of ids, order, or validation
// attributes.
func Encode(s FormSchema) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("schema: encode: %w", err)
	}
	return data, nil
}

// EncodeIndent serializes the schema with indentation for diff-friendly
// storage and golden files.
func EncodeIndent(s FormSchema) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: encode: %w", err)
	}
	return data, nil
}
