package dsl

import (
	rc "github.com/reoring/recordcheck"
)

// ArrayOf declares a sequence whose elements are each validated against elem.
// Example: Field("crew", dsl.ArrayOf(dsl.RecordOf(member)).Items(1, 12))
func ArrayOf(elem FieldType) FieldType {
	ec := elem.c
	return FieldType{c: rc.Constraint{Kind: rc.KindSequence, Elem: &ec}}
}

// Items sets inclusive element count bounds.
func (t FieldType) Items(min, max int) FieldType { return t.MinItems(min).MaxItems(max) }

// MinItems sets the minimum element count.
func (t FieldType) MinItems(n int) FieldType {
	return t.with(func(c *rc.Constraint) { c.MinItems = &n })
}

// MaxItems sets the maximum element count.
func (t FieldType) MaxItems(n int) FieldType {
	return t.with(func(c *rc.Constraint) { c.MaxItems = &n })
}
