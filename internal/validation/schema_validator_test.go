package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"person.schema.json": {Data: []byte(personSchema)},
		"broken.schema.json": {Data: []byte(`{"type": `)},
	}
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator(testFS())

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{"valid data", `{"name": "John", "age": 30}`, ""},
		{"valid data without optional field", `{"name": "Jane"}`, ""},
		{"missing required field", `{"age": 25}`, "required"},
		{"wrong type for field", `{"name": "John", "age": "thirty"}`, "/age"},
		{"constraint violation", `{"name": "John", "age": -5}`, "minimum"},
		{"invalid JSON", `{"name": "John", "age": }`, "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "person.schema.json")

			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateYAML(t *testing.T) {
	v := NewSchemaValidator(testFS())

	t.Run("valid document", func(t *testing.T) {
		assert.NoError(t, v.ValidateYAML([]byte("name: John\nage: 30\n"), "person.schema.json"))
	})

	t.Run("timestamps become strings", func(t *testing.T) {
		assert.NoError(t, v.ValidateYAML([]byte("name: 2024-05-01T17:00:00Z\n"), "person.schema.json"))
	})

	t.Run("schema violation", func(t *testing.T) {
		err := v.ValidateYAML([]byte("age: -1\n"), "person.schema.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("malformed YAML", func(t *testing.T) {
		err := v.ValidateYAML([]byte("name: [unclosed"), "person.schema.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse YAML")
	})
}

func TestSchemaValidator_SchemaErrors(t *testing.T) {
	v := NewSchemaValidator(testFS())

	t.Run("missing schema", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{}`), "nope.schema.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read schema file")
	})

	t.Run("malformed schema", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{}`), "broken.schema.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse schema JSON")
	})
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator(testFS()).(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{"name": "a"}`), "person.schema.json"))
	first := v.schemas["person.schema.json"]
	require.NotNil(t, first)

	require.NoError(t, v.ValidateBytes([]byte(`{"name": "b"}`), "person.schema.json"))
	assert.Same(t, first, v.schemas["person.schema.json"])
}
