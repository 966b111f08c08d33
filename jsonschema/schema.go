// Package jsonschema projects record schemas to JSON Schema documents.
//
// The projection covers field kinds and bounds. Cross-field invariants have no
// JSON Schema equivalent and are listed by name under x-invariants only.
package jsonschema

import (
	"context"
	"time"

	rc "github.com/reoring/recordcheck"
	"github.com/reoring/recordcheck/codec"
)

// Draft is the $schema URI emitted on the root document.
const Draft = "http://json-schema.org/draft-07/schema#"

// TimestampPattern matches the string forms the timestamp codec reads: a date,
// optionally followed by a T or space separated time. Only the T form with
// seconds may carry a zone. Numbers are unix seconds.
const TimestampPattern = `^\s*\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?)?| \d{2}:\d{2}(:\d{2}(\.\d+)?)?)?\s*$`

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	Schema      string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Core. Type is a string, or a []string for unions such as nullable fields.
	Type    any   `json:"type,omitempty"`
	Default any   `json:"default,omitempty"`
	Enum    []any `json:"enum,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	PropertyOrder        []string           `json:"x-order,omitempty"`
	Invariants           []string           `json:"x-invariants,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`
}

// FromRecord returns the JSON Schema of s, nested records inlined.
func FromRecord(s *rc.RecordSchema) *Schema {
	if s == nil {
		return nil
	}
	out := object(s)
	out.Schema = Draft
	return out
}

// FromConstraint returns the JSON Schema of a single field constraint.
func FromConstraint(c rc.Constraint) *Schema {
	var out *Schema
	switch c.Kind {
	case rc.KindString:
		out = &Schema{Type: "string", MinLength: c.MinLen, MaxLength: c.MaxLen}
	case rc.KindInteger:
		out = &Schema{Type: "integer", Minimum: c.Min, Maximum: c.Max}
	case rc.KindFloat:
		out = &Schema{Type: "number", Minimum: c.Min, Maximum: c.Max}
	case rc.KindBool:
		out = &Schema{Type: "boolean"}
	case rc.KindTimestamp:
		out = &Schema{Type: []string{"string", "number"}, Pattern: TimestampPattern}
	case rc.KindEnum:
		out = &Schema{Type: "string"}
		for _, t := range c.Tags {
			out.Enum = append(out.Enum, t)
		}
	case rc.KindRecord:
		out = object(c.Record)
	case rc.KindSequence:
		out = &Schema{Type: "array", MinItems: c.MinItems, MaxItems: c.MaxItems}
		if c.Elem != nil {
			out.Items = FromConstraint(*c.Elem)
		}
	default:
		out = &Schema{}
	}
	if c.Nullable {
		switch t := out.Type.(type) {
		case string:
			out.Type = []string{t, "null"}
		case []string:
			out.Type = append(append([]string(nil), t...), "null")
		}
		if out.Enum != nil {
			out.Enum = append(out.Enum, nil)
		}
	}
	if c.HasDefault && c.Default != nil {
		out.Default = defaultValue(c)
	}
	out.Description = c.Description
	return out
}

func object(s *rc.RecordSchema) *Schema {
	if s == nil {
		return &Schema{Type: "object"}
	}
	out := &Schema{
		Title:      s.Name(),
		Type:       "object",
		Properties: map[string]*Schema{},
		Invariants: s.Invariants(),
	}
	for _, f := range s.Fields() {
		out.Properties[f.Name] = FromConstraint(f)
		out.PropertyOrder = append(out.PropertyOrder, f.Name)
		if f.Required {
			out.Required = append(out.Required, f.Name)
		}
	}
	if s.UnknownPolicy() == rc.UnknownStrict {
		out.AdditionalProperties = false
	}
	return out
}

// defaultValue renders a default the way it would appear in a JSON document.
func defaultValue(c rc.Constraint) any {
	v, iss := rc.ValidateField(context.Background(), c, c.Default, true)
	if len(iss) > 0 {
		return c.Default
	}
	switch t := v.(type) {
	case time.Time:
		return codec.Timestamp().Encode(t)
	case rc.Record:
		return t.Map()
	}
	return v
}
