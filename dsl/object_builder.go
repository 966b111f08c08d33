package dsl

import (
	"context"
	"errors"

	rc "github.com/reoring/recordcheck"
)

type objectBuilder struct {
	name       string
	fields     []rc.Constraint
	invariants []rc.Invariant
	unknown    rc.UnknownPolicy
	errs       []error
}

type fieldStep struct {
	b   *objectBuilder
	idx int
}

// Object creates a new record builder. Undeclared keys are ignored unless
// UnknownStrict is set.
func Object(name string) *objectBuilder {
	return &objectBuilder{name: name, unknown: rc.UnknownStrip}
}

// Field registers a field. Fields are optional until Required is called.
func (b *objectBuilder) Field(name string, t FieldType) *fieldStep {
	c := t.c
	c.Name = name
	b.fields = append(b.fields, c)
	return &fieldStep{b: b, idx: len(b.fields) - 1}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	c := &f.b.fields[f.idx]
	c.Required = true
	c.Default, c.HasDefault = nil, false
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
// An absent optional field without a default holds nil.
func (f *fieldStep) Optional() *objectBuilder {
	f.b.fields[f.idx].Required = false
	return f.b
}

// Default sets the value substituted when the field is absent. The default is
// validated like any input, so it must satisfy the field's own constraint.
func (f *fieldStep) Default(v any) *objectBuilder {
	c := &f.b.fields[f.idx]
	c.Required = false
	c.Default, c.HasDefault = v, true
	return f.b
}

func (f *fieldStep) Field(name string, t FieldType) *fieldStep { return f.b.Field(name, t) }
func (f *fieldStep) Invariant(name string, fn func(context.Context, rc.Record) error) *objectBuilder {
	return f.b.Invariant(name, fn)
}
func (f *fieldStep) Rule(inv rc.Invariant) *objectBuilder   { return f.b.Rule(inv) }
func (f *fieldStep) UnknownStrict() *objectBuilder          { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownStrip() *objectBuilder           { return f.b.UnknownStrip() }
func (f *fieldStep) Build() (*rc.RecordSchema, error)       { return f.b.Build() }
func (f *fieldStep) MustBuild() *rc.RecordSchema            { return f.b.MustBuild() }
func (f *fieldStep) Require(names ...string) *objectBuilder { return f.b.Require(names...) }

// Require marks one or more already declared fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		found := false
		for i := range b.fields {
			if b.fields[i].Name == n {
				b.fields[i].Required = true
				b.fields[i].Default, b.fields[i].HasDefault = nil, false
				found = true
			}
		}
		if !found {
			b.errs = append(b.errs, &rc.SchemaError{Record: b.name, Field: n, Reason: "required field is not declared"})
		}
	}
	return b
}

// UnknownStrict reports undeclared keys as unknown_key issues.
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	b.unknown = rc.UnknownStrict
	return b
}

// UnknownStrip ignores undeclared keys.
func (b *objectBuilder) UnknownStrip() *objectBuilder {
	b.unknown = rc.UnknownStrip
	return b
}

// Invariant adds a cross-field rule. Rules run in the order they were added,
// only after every field validated, and the first failure is reported.
func (b *objectBuilder) Invariant(name string, fn func(context.Context, rc.Record) error) *objectBuilder {
	b.invariants = append(b.invariants, rc.Invariant{Name: name, Check: fn})
	return b
}

// Rule adds a prepared invariant, such as those built by the rules package.
func (b *objectBuilder) Rule(inv rc.Invariant) *objectBuilder {
	b.invariants = append(b.invariants, inv)
	return b
}

// Build validates the definition and returns the schema.
func (b *objectBuilder) Build() (*rc.RecordSchema, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return rc.NewRecordSchema(b.name, b.fields, b.invariants, b.unknown)
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() *rc.RecordSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
