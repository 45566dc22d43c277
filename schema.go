package taglog

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// SettingsSchema returns a JSON Schema describing the YAML settings document
// accepted by [ParseSettings] and [FileProvider], for editor validation and
// completion of settings files.
func SettingsSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Title:       "taglog settings",
		Description: "Sink, decoration, and default tag configuration for a taglog Logger.",
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"console": {
				Type:        "boolean",
				Description: "Write emitted lines to the console sink.",
				Default:     rawJSON("true"),
			},
			"history": {
				Type:        "boolean",
				Description: "Record emitted lines in the history transcript.",
				Default:     rawJSON("true"),
			},
			"tagHeader": {
				Type:        "boolean",
				Description: "Prefix messages with their tag list.",
				Default:     rawJSON("true"),
			},
			"timestamp": {
				Type:        "boolean",
				Description: "Prefix messages with local wall-clock time.",
				Default:     rawJSON("false"),
			},
			"defaultTags": {
				Type:        "array",
				Description: "Tags active after settings are applied. The FORCE tag is always added.",
				Items: &jsonschema.Schema{
					Type: "string",
				},
			},
		},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

// rawJSON wraps a JSON literal for use as a schema default.
func rawJSON(s string) json.RawMessage {
	return json.RawMessage(s)
}
