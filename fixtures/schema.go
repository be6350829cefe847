package fixtures

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// fixtureSchemaJSON constrains a conformance fixture document to one of the
// three shapes spec.md §6.3 describes: an AST/IR pair, a DSL/expected-error
// pair, or a DSL/expected-regex pair.
const fixtureSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"oneOf": [
		{"required": ["input_ast", "expected_ir"]},
		{"required": ["input_dsl", "expected_error"]},
		{"required": ["input_dsl", "expected_regex"]}
	]
}`

var fixtureSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("fixture.json", strings.NewReader(fixtureSchemaJSON)); err != nil {
		panic(err)
	}
	fixtureSchema = compiler.MustCompile("fixture.json")
}

// ValidateShape checks that a decoded fixture document (as produced by
// json.Unmarshal into interface{}) matches one of the known fixture shapes,
// before DecodeNode/DecodeIR attempt to interpret its payload.
func ValidateShape(doc interface{}) error {
	if err := fixtureSchema.Validate(doc); err != nil {
		return errors.Wrap(err, "fixture does not match a known shape")
	}
	return nil
}
