package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const extractionSchema = `{
	"type": "object",
	"required": ["type"],
	"properties": {
		"type": {"type": "string", "enum": ["EXPENSE", "INCOME", "expense", "income"]},
		"amount": {"type": ["number", "string", "null"]},
		"amountPerInstallment": {"type": ["number", "string", "null"]},
		"installments": {"type": ["integer", "null"], "minimum": 0},
		"description": {"type": ["string", "null"]},
		"date": {"type": ["string", "null"]},
		"categoryId": {"type": ["string", "null"]},
		"categoryName": {"type": ["string", "null"]},
		"confidence": {"type": ["number", "null"], "minimum": 0, "maximum": 1},
		"patterns": {"type": ["array", "null"], "items": {"type": "string"}},
		"notes": {"type": ["string", "null"]}
	}
}`

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("extraction.json", bytes.NewReader([]byte(extractionSchema))); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}

	schema, err := compiler.Compile("extraction.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return schema, nil
}

// validate checks the provider payload against the extraction schema before decoding.
func validate(schema *jsonschema.Schema, data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("unmarshal provider payload: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("provider payload does not match schema: %w", err)
	}

	return nil
}
