package validate

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FieldErrors maps an input field name to the messages it failed with.
type FieldErrors map[string][]string

// Fields is a validated, normalized column map ready to hand to the store.
// Keys are database column names; only fields present in the input appear.
type Fields map[string]any

// Field declares one input field of a schema: its input key, the database
// column it lands on, whether it must be present, the rules it must pass,
// and an optional normalizer applied after the rules.
type Field struct {
	Name      string
	Column    string
	Required  bool
	Rules     []Rule
	Normalize func(value string) any
}

// Schema is a declarative validation contract for one entity operation.
// Validation is pure: it never touches the database.
type Schema struct {
	name   string
	fields []Field
}

// New builds a schema from its field declarations.
func New(name string, fields ...Field) Schema {
	return Schema{name: name, fields: fields}
}

// Name reports the schema's name, used in logs.
func (s Schema) Name() string {
	return s.name
}

// Validate checks input against the schema. It returns either a normalized
// column map covering exactly the fields present in the input, or the
// per-field error messages. Input keys not declared in the schema are
// ignored; a validated payload maps 1:1 onto the schema's column set.
func (s Schema) Validate(input map[string]any) (Fields, FieldErrors) {
	out := make(Fields, len(s.fields))
	fieldErrs := FieldErrors{}

	for _, f := range s.fields {
		raw, present := input[f.Name]
		if !present {
			if f.Required {
				fieldErrs[f.Name] = append(fieldErrs[f.Name], "is required")
			}
			continue
		}

		value, ok := raw.(string)
		if !ok {
			fieldErrs[f.Name] = append(fieldErrs[f.Name], "must be a string")
			continue
		}
		if f.Required && value == "" {
			fieldErrs[f.Name] = append(fieldErrs[f.Name], "is required")
			continue
		}

		valid := true
		for _, rule := range f.Rules {
			if msg := rule(value); msg != "" {
				fieldErrs[f.Name] = append(fieldErrs[f.Name], msg)
				valid = false
			}
		}
		if !valid {
			continue
		}

		if f.Normalize != nil {
			out[f.Column] = f.Normalize(value)
		} else {
			out[f.Column] = value
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return out, nil
}

// NullIfEmpty normalizes an optional reference: blank input becomes NULL
// rather than the empty string.
func NullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	u, err := uuid.Parse(value)
	if err != nil {
		return nil
	}
	return u
}

// AsUUID normalizes a rule-checked id value into a uuid.
func AsUUID(value string) any {
	u, _ := uuid.Parse(value)
	return u
}

// AsDate normalizes a rule-checked date value into a datatypes.Date; blank
// input becomes NULL.
func AsDate(value string) any {
	if value == "" {
		return nil
	}
	t, _ := time.Parse("2006-01-02", value)
	return datatypes.Date(t)
}

// AsTime normalizes a rule-checked RFC 3339 value into a time.Time; blank
// input becomes NULL.
func AsTime(value string) any {
	if value == "" {
		return nil
	}
	t, _ := time.Parse(time.RFC3339, value)
	return t
}
