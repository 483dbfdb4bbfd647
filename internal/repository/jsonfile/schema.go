package jsonfile

import (
	"encoding/json"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pyanpyan/routinely/internal/repository"
)

// collectionSchema describes the stored document: a JSON array of checklist
// objects. Extra fields are allowed so newer exports stay importable.
const collectionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "schedule", "items", "color", "statePersistence"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "name": {"type": "string"},
      "schedule": {
        "type": "object",
        "required": ["timeRange"],
        "properties": {
          "daysOfWeek": {
            "type": "array",
            "items": {
              "enum": ["MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"]
            }
          },
          "timeRange": {
            "type": "object",
            "required": ["type"],
            "properties": {
              "type": {"enum": ["AllDay", "Specific"]},
              "startTime": {"type": "string", "pattern": "^[0-9]{2}:[0-9]{2}$"},
              "endTime": {"type": "string", "pattern": "^[0-9]{2}:[0-9]{2}$"}
            }
          }
        }
      },
      "items": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["id", "title", "state"],
          "properties": {
            "id": {"type": "string", "minLength": 1},
            "title": {"type": "string"},
            "iconId": {"type": "string"},
            "state": {
              "type": "object",
              "required": ["type"],
              "properties": {
                "type": {"enum": ["Pending", "Done", "IgnoredToday"]}
              }
            }
          }
        }
      },
      "color": {
        "enum": ["SOFT_BLUE", "CALM_GREEN", "GENTLE_PURPLE", "WARM_PEACH", "COOL_MINT", "LIGHT_LAVENDER", "PALE_YELLOW", "SOFT_ROSE"]
      },
      "statePersistence": {
        "enum": ["ZERO", "ONE_MINUTE", "FIFTEEN_MINUTES", "ONE_HOUR", "ONE_DAY", "NEVER"]
      },
      "lastAccessedAt": {"type": ["string", "null"]}
    }
  }
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("checklists.schema.json", strings.NewReader(collectionSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("checklists.schema.json")
}

// validateCollection checks an incoming document against the collection
// schema. Malformed JSON is a parse error; a schema violation is invalid
// data.
func validateCollection(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return repository.NewError(repository.JSONParse, "parsing imported document", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return repository.NewError(repository.InvalidData, "imported document does not match the checklist schema", err)
	}
	return nil
}
