package manifest

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// manifestSchema validates the shape of a fetched manifest before the
// ordered decode runs, so a malformed endpoint fails with a clear error
// instead of a half-decoded story list.
var manifestSchema = jsonschema.MustCompileString("manifest.schema.json", `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"anyOf": [
		{"required": ["entries"]},
		{"required": ["stories"]}
	],
	"properties": {
		"entries": {"$ref": "#/$defs/entryMap"},
		"stories": {"$ref": "#/$defs/entryMap"}
	},
	"$defs": {
		"entryMap": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"required": ["id"],
				"properties": {
					"id": {"type": "string"},
					"title": {"type": "string"},
					"name": {"type": "string"},
					"type": {"type": "string"}
				}
			}
		}
	}
}`)

func validateManifest(body []byte) error {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("manifest is not valid JSON: %w", err)
	}
	if err := manifestSchema.Validate(doc); err != nil {
		return fmt.Errorf("manifest schema validation failed: %w", err)
	}
	return nil
}
