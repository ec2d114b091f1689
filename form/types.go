package form

import (
	"time"

	"github.com/google/uuid"
)

// FormType selects the schema, uniqueness keys and email templates that a
// submission is processed with.
type FormType string

const (
	FormTypeContact FormType = "contact"
	FormTypeCareer  FormType = "career"
	FormTypePartner FormType = "partner"
)

// Fields maps field names to submitted values. Values are strings except
// for list fields (e.g. partner interests), which are []string. A decoded
// JSON body satisfies this type directly.
type Fields map[string]any

// Str returns the string value of a field, or "" when absent or not a string.
func (f Fields) Str(name string) string {
	s, _ := f[name].(string)
	return s
}

// List returns the list value of a field. Both []string and []any (the
// shape produced by encoding/json) are accepted.
func (f Fields) List(name string) []string {
	switch v := f[name].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Submission is one validated, persisted form submission. It is immutable
// once stored; the pipeline only ever checks existence and inserts.
type Submission struct {
	Uuid      uuid.UUID
	FormType  FormType
	Fields    Fields
	CreatedAt time.Time
}
