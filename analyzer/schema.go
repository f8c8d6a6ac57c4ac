package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// responseSchema describes a well-formed analysis body. Extra fields are
// tolerated so the service can grow without breaking the form.
const responseSchema = `{
	"type": "object",
	"required": ["judgment_summary", "analysis"],
	"properties": {
		"judgment_summary": {"type": "string"},
		"analysis": {"type": "string"}
	}
}`

// compileResponseSchema compiles responseSchema. It is called once per Client.
func compileResponseSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("analysis_response.json", strings.NewReader(responseSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("analysis_response.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// validateResponse checks data against schema before it is decoded into a
// typed response.
func validateResponse(schema *jsonschema.Schema, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
