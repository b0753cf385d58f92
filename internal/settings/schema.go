package settings

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns a JSON Schema for the settings file.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Settings{})
	sch.Title = "runpad settings"
	sch.Description = "Host configuration consumed by the runpad session."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
