package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Schema renders the JSON Schema of the TOML file for editor completion.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:              "mapstructure",
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/atlas/config.schema.json"
	schema.Title = "Atlas Configuration"
	schema.Description = "Configuration schema for atlas, a synced browsing session manager"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json next to configFile and returns its path.
func WriteSchemaFile(configFile string) (string, error) {
	data, err := Schema()
	if err != nil {
		return "", err
	}
	path := filepath.Join(filepath.Dir(configFile), schemaName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}
