package jsonfile

import (
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// snapshotSchemaJSON requires both sequences and string fields on every task.
// Extra properties are allowed so older or hand-edited files still load.
const snapshotSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["pending", "done"],
  "properties": {
    "pending": {"type": "array", "items": {"$ref": "#/definitions/task"}},
    "done": {"type": "array", "items": {"$ref": "#/definitions/task"}}
  },
  "definitions": {
    "task": {
      "type": "object",
      "required": ["title", "status"],
      "properties": {
        "title": {"type": "string"},
        "status": {"type": "string"}
      }
    }
  }
}`

var snapshotSchema = jsonschema.MustCompileString("snapshot.schema.json", snapshotSchemaJSON)

// SchemaError describes the first schema violation found in a snapshot.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("snapshot schema: %s: %s", e.Path, e.Message)
	}
	return "snapshot schema: " + e.Message
}

func validate(doc any) error {
	err := snapshotSchema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &SchemaError{Message: err.Error()}
	}

	leaf := firstLeaf(ve)
	return &SchemaError{
		Path:    pointerToPath(leaf.InstanceLocation),
		Message: leaf.Message,
	}
}

// firstLeaf walks the cause tree down to the most specific violation.
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

// pointerToPath turns "/pending/0/title" into "pending[0].title".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for i, part := range strings.Split(ptr, "/") {
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
