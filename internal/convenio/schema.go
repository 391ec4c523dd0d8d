package convenio

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildDatasetJSONSchema returns the dataset schema as a generic map
// (draft 2020-12 subset). Amounts are plain JSON numbers.
func buildDatasetJSONSchema() map[string]any {
	amount := map[string]any{"type": "number", "minimum": 0}

	definition := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"nombre": map[string]any{"type": "string", "minLength": 1},
			"salarioMinimo": map[string]any{
				"type":                 "object",
				"additionalProperties": amount,
				"minProperties":        1,
			},
			"detallesSalariales": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"salarioBase":  amount,
						"plusConvenio": amount,
					},
					"required":             []string{"salarioBase", "plusConvenio"},
					"additionalProperties": false,
				},
			},
			"reglasAntiguedad": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"tipo":           map[string]any{"type": "string", "enum": []string{SeniorityTypeQuinquenio}},
					"porcentajeBase": map[string]any{"type": "number", "exclusiveMinimum": 0, "maximum": 1},
				},
				"required":             []string{"tipo", "porcentajeBase"},
				"additionalProperties": false,
			},
			"reglasNocturnidad": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"valorHora": map[string]any{"type": "number", "exclusiveMinimum": 0},
				},
				"required":             []string{"valorHora"},
				"additionalProperties": false,
			},
			"incrementoHoraExtra": map[string]any{"type": "number", "minimum": 1},
		},
		"required":             []string{"nombre", "salarioMinimo"},
		"additionalProperties": false,
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": definition,
		"minProperties":        1,
	}
}

// validateAgainstSchema compiles schemaMap and validates data against it.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("convenios.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("convenios.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal dataset: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("dataset does not match schema: %w", err)
	}
	return nil
}
