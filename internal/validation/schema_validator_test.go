package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const itemSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"item_id": {"type": "string", "pattern": "^[a-z0-9_]+$"},
			"name": {"type": "string", "minLength": 1},
			"rarity": {"type": "string", "enum": ["common", "uncommon", "rare", "legendary"]},
			"price": {"type": "integer", "minimum": 0}
		},
		"required": ["item_id", "name", "rarity"]
	}
}`

func TestValidateBytes(t *testing.T) {
	schemaPath := writeSchema(t, itemSchema)
	v := NewSchemaValidator()

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid catalog",
			data: `[{"item_id": "wand_polish", "name": "Wand Polish", "rarity": "common", "price": 5}]`,
		},
		{
			name: "empty catalog",
			data: `[]`,
		},
		{
			name:    "missing required field",
			data:    `[{"item_id": "wand_polish", "rarity": "common"}]`,
			wantErr: true,
		},
		{
			name:    "id breaks the snake_case pattern",
			data:    `[{"item_id": "Wand Polish", "name": "Wand Polish", "rarity": "common"}]`,
			wantErr: true,
		},
		{
			name:    "unknown rarity",
			data:    `[{"item_id": "wand_polish", "name": "Wand Polish", "rarity": "mythic"}]`,
			wantErr: true,
		},
		{
			name:    "negative price",
			data:    `[{"item_id": "wand_polish", "name": "Wand Polish", "rarity": "common", "price": -1}]`,
			wantErr: true,
		},
		{
			name:    "not JSON at all",
			data:    `[{"item_id": }]`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFile(t *testing.T) {
	schemaPath := writeSchema(t, itemSchema)
	v := NewSchemaValidator()

	dataPath := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(dataPath,
		[]byte(`[{"item_id": "bertie_botts", "name": "Bertie Botts Beans", "rarity": "uncommon"}]`), 0644))

	assert.NoError(t, v.ValidateFile(dataPath, schemaPath))
}

func TestValidateFileMissingData(t *testing.T) {
	schemaPath := writeSchema(t, itemSchema)
	v := NewSchemaValidator()

	err := v.ValidateFile("does_not_exist.json", schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestValidateBytesMissingSchema(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`{}`), "no_such.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestValidationErrorNamesLocation(t *testing.T) {
	schemaPath := writeSchema(t, itemSchema)
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`[{"item_id": "ok_item", "name": "", "rarity": "common"}]`), schemaPath)
	require.Error(t, err)
	// The failing element and the path into it should both be visible
	assert.Contains(t, err.Error(), "schema validation failed")
	assert.Contains(t, err.Error(), "/0")
}

func TestCompiledSchemasAreCached(t *testing.T) {
	schemaPath := writeSchema(t, itemSchema)
	v := NewSchemaValidator().(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`[]`), schemaPath))
	require.Len(t, v.schemas, 1)

	require.NoError(t, v.ValidateBytes([]byte(`[]`), schemaPath))
	assert.Len(t, v.schemas, 1)
}
