package recordcheck

import (
	"fmt"
	"math"
)

// Constraint describes one field's acceptable value space. Nil bound pointers
// mean unbounded.
type Constraint struct {
	Name string
	Kind Kind

	Required   bool
	Nullable   bool // explicit null is accepted and stored as nil
	Default    any
	HasDefault bool

	// string
	MinLen, MaxLen *int
	// integer / float, inclusive
	Min, Max *float64
	// enum
	Tags []string
	// sequence
	MinItems, MaxItems *int
	Elem               *Constraint
	// nested record
	Record *RecordSchema

	Description string
}

// clone copies the constraint so later mutation by the caller cannot reach a
// built schema.
func (c Constraint) clone() *Constraint {
	out := c
	out.Tags = append([]string(nil), c.Tags...)
	out.MinLen, out.MaxLen = copyInt(c.MinLen), copyInt(c.MaxLen)
	out.MinItems, out.MaxItems = copyInt(c.MinItems), copyInt(c.MaxItems)
	out.Min, out.Max = copyFloat(c.Min), copyFloat(c.Max)
	if c.Elem != nil {
		out.Elem = c.Elem.clone()
	}
	return &out
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// check reports definition-time inconsistencies. elem is true for sequence
// element constraints, which are anonymous.
func (c *Constraint) check(elem bool) error {
	fail := func(format string, a ...any) error {
		return &SchemaError{Field: c.Name, Reason: fmt.Sprintf(format, a...)}
	}
	if c.Name == "" && !elem {
		return fail("field name is empty")
	}
	if c.Kind < KindString || c.Kind > KindSequence {
		return fail("unknown kind %d", int(c.Kind))
	}
	if c.Required && c.HasDefault {
		return fail("required field cannot declare a default")
	}

	if (c.MinLen != nil || c.MaxLen != nil) && c.Kind != KindString {
		return fail("length bounds apply to strings, not %s", c.Kind)
	}
	if err := checkIntBounds("length", c.MinLen, c.MaxLen); err != "" {
		return fail("%s", err)
	}

	if (c.Min != nil || c.Max != nil) && c.Kind != KindInteger && c.Kind != KindFloat {
		return fail("value bounds apply to numbers, not %s", c.Kind)
	}
	if c.Min != nil && math.IsNaN(*c.Min) || c.Max != nil && math.IsNaN(*c.Max) {
		return fail("value bound is NaN")
	}
	if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
		return fail("min %v is greater than max %v", *c.Min, *c.Max)
	}

	if c.Kind == KindEnum {
		if len(c.Tags) == 0 {
			return fail("enum declares no tags")
		}
		seen := make(map[string]struct{}, len(c.Tags))
		for _, t := range c.Tags {
			if _, dup := seen[t]; dup {
				return fail("duplicate enum tag %q", t)
			}
			seen[t] = struct{}{}
		}
	} else if len(c.Tags) > 0 {
		return fail("tags apply to enums, not %s", c.Kind)
	}

	if (c.MinItems != nil || c.MaxItems != nil) && c.Kind != KindSequence {
		return fail("item bounds apply to sequences, not %s", c.Kind)
	}
	if err := checkIntBounds("item count", c.MinItems, c.MaxItems); err != "" {
		return fail("%s", err)
	}
	if c.Kind == KindSequence {
		if c.Elem == nil {
			return fail("sequence has no element constraint")
		}
		if err := c.Elem.check(true); err != nil {
			return fail("element: %v", err.(*SchemaError).Reason)
		}
	}
	if c.Kind == KindRecord && c.Record == nil {
		return fail("nested record has no schema")
	}
	return nil
}

func checkIntBounds(what string, lo, hi *int) string {
	if lo != nil && *lo < 0 {
		return fmt.Sprintf("min %s %d is negative", what, *lo)
	}
	if hi != nil && *hi < 0 {
		return fmt.Sprintf("max %s %d is negative", what, *hi)
	}
	if lo != nil && hi != nil && *lo > *hi {
		return fmt.Sprintf("min %s %d is greater than max %d", what, *lo, *hi)
	}
	return ""
}
