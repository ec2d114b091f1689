package form

import (
	"fmt"
	"net/mail"
	"strings"
)

type FieldKind int

const (
	KindString FieldKind = iota
	KindEmail
	KindStringList
)

type LinkKind int

const (
	LinkNone LinkKind = iota
	LinkMailto
	LinkTel
	LinkURL
)

// FieldRule declares one field of a form schema.
type FieldRule struct {
	Name     string
	Label    string // row label in the staff notice
	Kind     FieldKind
	Required bool

	RequiredMsg string // violation message when required and missing/empty
	Fallback    string // rendered in emails when an optional field is absent

	Link     LinkKind // how the staff notice renders the value
	LinkText string   // anchor text for LinkURL values
}

// Schema is the ordered set of field rules for one form type. Order is
// preserved into the staff notice table.
type Schema struct {
	Rules []FieldRule
}

// Violation describes one failed validation rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks raw fields against the schema and returns the normalized
// field set together with every violation found. It is pure: no I/O, no
// short-circuiting, so the caller can surface all problems at once.
//
// Normalization: strings are trimmed, email fields are additionally
// lowercased, undeclared fields are dropped, absent optional fields stay
// absent, and empty list elements are discarded.
func (s Schema) Validate(raw Fields) (Fields, []Violation) {
	normalized := make(Fields, len(s.Rules))
	var violations []Violation

	for _, rule := range s.Rules {
		value, present := raw[rule.Name]

		switch rule.Kind {
		case KindString, KindEmail:
			str, ok := value.(string)
			if present && !ok {
				violations = append(violations, Violation{
					Field:   rule.Name,
					Message: fmt.Sprintf("* %s Must Be String", rule.Label),
				})
				continue
			}
			str = strings.TrimSpace(str)
			if rule.Kind == KindEmail {
				str = strings.ToLower(str)
			}
			if str == "" {
				if rule.Required {
					violations = append(violations, Violation{
						Field:   rule.Name,
						Message: rule.RequiredMsg,
					})
				}
				continue
			}
			if rule.Kind == KindEmail {
				if _, err := mail.ParseAddress(str); err != nil {
					violations = append(violations, Violation{
						Field:   rule.Name,
						Message: fmt.Sprintf("* %s Must Be A Valid Email", rule.Label),
					})
					continue
				}
			}
			normalized[rule.Name] = str

		case KindStringList:
			list, ok := asStringList(value)
			if present && !ok {
				violations = append(violations, Violation{
					Field:   rule.Name,
					Message: fmt.Sprintf("* %s Must Be A List Of Strings", rule.Label),
				})
				continue
			}
			cleaned := make([]string, 0, len(list))
			for _, item := range list {
				if item = strings.TrimSpace(item); item != "" {
					cleaned = append(cleaned, item)
				}
			}
			if len(cleaned) == 0 {
				if rule.Required {
					violations = append(violations, Violation{
						Field:   rule.Name,
						Message: rule.RequiredMsg,
					})
				}
				continue
			}
			normalized[rule.Name] = cleaned
		}
	}

	return normalized, violations
}

func asStringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
