package api

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const vehicleSchema = `{
	"type":        "object",
	"required":    ["id", "veiculo", "marca", "ano", "descricao", "vendido"],
	"properties":  {
		"id": {"type": "string"},
		"veiculo": {"type": "string"},
		"marca": {"type": "string"},
		"ano": {"type": "integer"},
		"descricao": {"type": "string"},
		"cor": {"type": ["string", "null"]},
		"vendido": {"type": "boolean"},
		"created": {"type": ["string", "null"]},
		"updated": {"type": ["string", "null"]}
	}
}`

const countMapSchema = `{"type": "object", "additionalProperties": {"type": "integer"}}`

var schemaSources = map[string]string{
	"vehicle":     vehicleSchema,
	"vehicleList": `{"type": "array", "items": ` + vehicleSchema + `}`,
	"brandList":   `{"type": "array", "items": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}}`,
	"statistics":  `{"type": "object", "required": ["totalVehicles", "soldVehicles", "unsoldVehicles"], "properties": {"totalVehicles": {"type": "integer"}, "soldVehicles": {"type": "integer"}, "unsoldVehicles": {"type": "integer"}}}`,
	"byDecade":    `{"type": "object", "required": ["vehiclesByDecade"], "properties": {"vehiclesByDecade": ` + countMapSchema + `}}`,
	"byBrand":     `{"type": "object", "required": ["vehiclesByBrand"], "properties": {"vehiclesByBrand": ` + countMapSchema + `}}`,
	"lastWeek":    `{"type": "object", "required": ["vehicles", "total"], "properties": {"vehicles": {"type": "array", "items": ` + vehicleSchema + `}, "total": {"type": "integer"}}}`,
	"voting":      `{"type": "object", "required": ["percentualVotosValidos", "percentualVotosBrancos", "percentualVotosNulos"], "properties": {"percentualVotosValidos": {"type": "number"}, "percentualVotosBrancos": {"type": "number"}, "percentualVotosNulos": {"type": "number"}}}`,
	"multiples":   `{"type": "object", "required": ["numeroLimite", "somaMultiplos"], "properties": {"numeroLimite": {"type": "integer"}, "somaMultiplos": {"type": "integer"}}}`,
	"factorial":   `{"type": "object", "required": ["numero", "fatorial"], "properties": {"numero": {"type": "integer"}, "fatorial": {"type": "number"}}}`,
	"bubbleSort":  `{"type": "object", "required": ["vetorOriginal", "vetorOrdenado"], "properties": {"vetorOriginal": {"type": "array", "items": {"type": "integer"}}, "vetorOrdenado": {"type": "array", "items": {"type": "integer"}}}}`,
}

var schemas = mustCompileSchemas(schemaSources)

func mustCompileSchemas(sources map[string]string) map[string]*gojsonschema.Schema {
	out := make(map[string]*gojsonschema.Schema, len(sources))
	for name, src := range sources {
		s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
		if err != nil {
			panic(fmt.Sprintf("api: schema %s: %v", name, err))
		}
		out[name] = s
	}
	return out
}

// checkSchema validates body against the named schema.
func checkSchema(name string, body []byte) error {
	schema, ok := schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidResponse, strings.Join(msgs, "; "))
	}
	return nil
}
