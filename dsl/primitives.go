package dsl

import (
	rc "github.com/reoring/recordcheck"
)

// FieldType is a reusable field declaration: a kind plus its bounds. Chaining
// methods return modified copies, so a FieldType can be shared between
// schemas.
type FieldType struct {
	c rc.Constraint
}

// String declares a string field.
func String() FieldType { return FieldType{c: rc.Constraint{Kind: rc.KindString}} }

// Int declares an integer field.
func Int() FieldType { return FieldType{c: rc.Constraint{Kind: rc.KindInteger}} }

// Float declares a floating point field.
func Float() FieldType { return FieldType{c: rc.Constraint{Kind: rc.KindFloat}} }

// Bool declares a boolean field.
func Bool() FieldType { return FieldType{c: rc.Constraint{Kind: rc.KindBool}} }

// Timestamp declares a date-time field; see codec.Timestamp for accepted input.
func Timestamp() FieldType { return FieldType{c: rc.Constraint{Kind: rc.KindTimestamp}} }

// Enum declares a field restricted to a closed set of tags.
func Enum(tags ...string) FieldType {
	return FieldType{c: rc.Constraint{Kind: rc.KindEnum, Tags: append([]string(nil), tags...)}}
}

// EnumOf is Enum for named string types (type Rank string).
func EnumOf[T ~string](tags ...T) FieldType {
	ss := make([]string, len(tags))
	for i, t := range tags {
		ss[i] = string(t)
	}
	return Enum(ss...)
}

// RecordOf declares a nested record field validated against s.
func RecordOf(s *rc.RecordSchema) FieldType {
	return FieldType{c: rc.Constraint{Kind: rc.KindRecord, Record: s}}
}

// Constraint returns the underlying constraint (without a field name).
func (t FieldType) Constraint() rc.Constraint { return t.c }

func (t FieldType) with(fn func(c *rc.Constraint)) FieldType {
	out := t
	// detach shared slices/pointers before mutating
	out.c.Tags = append([]string(nil), t.c.Tags...)
	fn(&out.c)
	return out
}

// Len sets inclusive string length bounds (in runes).
func (t FieldType) Len(min, max int) FieldType { return t.MinLen(min).MaxLen(max) }

// MinLen sets the minimum string length.
func (t FieldType) MinLen(n int) FieldType {
	return t.with(func(c *rc.Constraint) { c.MinLen = &n })
}

// MaxLen sets the maximum string length.
func (t FieldType) MaxLen(n int) FieldType {
	return t.with(func(c *rc.Constraint) { c.MaxLen = &n })
}

// Range sets inclusive numeric bounds.
func (t FieldType) Range(min, max float64) FieldType { return t.Min(min).Max(max) }

// Min sets an inclusive numeric minimum.
func (t FieldType) Min(n float64) FieldType {
	return t.with(func(c *rc.Constraint) { c.Min = &n })
}

// Max sets an inclusive numeric maximum.
func (t FieldType) Max(n float64) FieldType {
	return t.with(func(c *rc.Constraint) { c.Max = &n })
}

// Nullable accepts an explicit null, stored as nil.
func (t FieldType) Nullable() FieldType {
	return t.with(func(c *rc.Constraint) { c.Nullable = true })
}

// Describe attaches a human description, exported to JSON Schema.
func (t FieldType) Describe(s string) FieldType {
	return t.with(func(c *rc.Constraint) { c.Description = s })
}
