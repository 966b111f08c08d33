// Package rules provides reusable cross-field invariants for record schemas.
//
// Every constructor returns a recordcheck.Invariant with a generated name;
// wrap it with Named to choose your own. Messages are reported verbatim.
package rules

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	rc "github.com/reoring/recordcheck"
)

// Op defines simple comparison operators for If.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

var opNames = [...]string{Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">="}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "?"
	}
	return opNames[o]
}

// Predicate is evaluated against a validated record (or a sequence element).
type Predicate func(r rc.Record) bool

// If compares a field against want. Numbers compare numerically regardless
// of Go type, timestamps by instant; a nil or absent field never matches.
func If(field string, op Op, want any) Predicate {
	return func(r rc.Record) bool {
		cur, ok := r.Get(field)
		if !ok || cur == nil {
			return false
		}
		return compare(cur, op, want)
	}
}

// In holds when a string or enum field equals one of tags.
func In(field string, tags ...string) Predicate {
	return func(r rc.Record) bool {
		s := r.GetString(field)
		for _, t := range tags {
			if s == t {
				return true
			}
		}
		return false
	}
}

// IsTrue holds when a boolean field is true.
func IsTrue(field string) Predicate { return func(r rc.Record) bool { return r.GetBool(field) } }

// Present holds when the field holds a non-nil value.
func Present(field string) Predicate { return func(r rc.Record) bool { return r.Has(field) } }

// Not negates p.
func Not(p Predicate) Predicate { return func(r rc.Record) bool { return !p(r) } }

// All holds when every predicate holds.
func All(ps ...Predicate) Predicate {
	return func(r rc.Record) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Any holds when at least one predicate holds.
func Any(ps ...Predicate) Predicate {
	return func(r rc.Record) bool {
		for _, p := range ps {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// Named overrides the generated invariant name.
func Named(name string, inv rc.Invariant) rc.Invariant {
	inv.Name = name
	return inv
}

// Check wraps a plain predicate: the invariant fails with msg when ok is false.
func Check(name string, ok Predicate, msg string) rc.Invariant {
	return rc.Invariant{Name: name, Check: func(_ context.Context, r rc.Record) error {
		if ok(r) {
			return nil
		}
		return errors.New(msg)
	}}
}

// HasPrefix requires a string field to start with prefix.
func HasPrefix(field, prefix, msg string) rc.Invariant {
	return Check(field+"_prefix", func(r rc.Record) bool {
		return strings.HasPrefix(r.GetString(field), prefix)
	}, msg)
}

// Requires makes field mandatory whenever cond holds (if A then B present).
func Requires(cond Predicate, field, msg string) rc.Invariant {
	return Check(field+"_required_when", func(r rc.Record) bool {
		return !cond(r) || r.Has(field)
	}, msg)
}

// Implies requires then to hold whenever cond holds.
func Implies(name string, cond, then Predicate, msg string) rc.Invariant {
	return Check(name, func(r rc.Record) bool { return !cond(r) || then(r) }, msg)
}

// When runs inv only when cond holds.
func When(cond Predicate, inv rc.Invariant) rc.Invariant {
	check := inv.Check
	inv.Check = func(ctx context.Context, r rc.Record) error {
		if !cond(r) {
			return nil
		}
		return check(ctx, r)
	}
	return inv
}

// AnyElem requires at least one record element of the sequence field to
// satisfy pred. An empty sequence fails.
func AnyElem(seq string, pred Predicate, msg string) rc.Invariant {
	return Check(seq+"_any", func(r rc.Record) bool {
		for _, e := range r.GetRecords(seq) {
			if pred(e) {
				return true
			}
		}
		return false
	}, msg)
}

// AnyElemIn requires at least one element whose field is one of tags.
func AnyElemIn(seq, field string, tags []string, msg string) rc.Invariant {
	return AnyElem(seq, In(field, tags...), msg)
}

// AllElem requires every record element of the sequence field to satisfy
// pred. An empty sequence passes.
func AllElem(seq string, pred Predicate, msg string) rc.Invariant {
	return Check(seq+"_all", func(r rc.Record) bool {
		for _, e := range r.GetRecords(seq) {
			if !pred(e) {
				return false
			}
		}
		return true
	}, msg)
}

// Fraction requires at least min (0..1) of the sequence's record elements to
// satisfy pred, computed as a real-valued ratio. Exactly min passes; an empty
// sequence fails.
func Fraction(seq string, min float64, pred Predicate, msg string) rc.Invariant {
	return Check(seq+"_fraction", func(r rc.Record) bool {
		elems := r.GetRecords(seq)
		if len(elems) == 0 {
			return false
		}
		n := 0
		for _, e := range elems {
			if pred(e) {
				n++
			}
		}
		return float64(n)/float64(len(elems)) >= min
	}, msg)
}

// ------- helpers -------

func compare(cur any, op Op, want any) bool {
	if a, ok := toFloat(cur); ok {
		b, ok := toFloat(want)
		if !ok {
			return false
		}
		return ordered(cmpFloat(a, b), op)
	}
	if a, ok := cur.(time.Time); ok {
		b, ok := want.(time.Time)
		if !ok {
			return false
		}
		return ordered(a.Compare(b), op)
	}
	if a, ok := toString(cur); ok {
		b, ok := toString(want)
		if !ok {
			return false
		}
		return ordered(strings.Compare(a, b), op)
	}
	switch op {
	case Eq:
		return reflect.DeepEqual(cur, want)
	case Ne:
		return !reflect.DeepEqual(cur, want)
	}
	return false
}

func ordered(c int, op Op) bool {
	switch op {
	case Eq:
		return c == 0
	case Ne:
		return c != 0
	case Lt:
		return c < 0
	case Le:
		return c <= 0
	case Gt:
		return c > 0
	case Ge:
		return c >= 0
	}
	return false
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func toString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
