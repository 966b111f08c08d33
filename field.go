package recordcheck

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/reoring/recordcheck/i18n"
)

// ValidateField coerces raw to c's kind and checks its bounds. present tells
// whether the key existed in the input at all. Issue paths are relative to the
// field: an empty path means the field itself, nested failures carry their
// suffix (e.g. [2].age).
func ValidateField(ctx context.Context, c Constraint, raw any, present bool) (any, Issues) {
	if err := c.check(true); err != nil {
		return nil, Issues{{Code: CodeSchema, Message: err.Error()}}
	}
	return validateField(ctx, Root(), &c, raw, present, Options{})
}

func validateField(ctx context.Context, at PathRef, c *Constraint, raw any, present bool, opt Options) (any, Issues) {
	if !present {
		if c.Required {
			return nil, Issues{at.Issue(CodeRequired, i18n.T(CodeRequired, nil))}
		}
		if !c.HasDefault {
			return nil, nil
		}
		// defaults go through the same checks as input
		raw = c.Default
	}
	if raw == nil {
		if c.Nullable {
			return nil, nil
		}
		return nil, Issues{typeIssue(at, c.Kind)}
	}

	switch c.Kind {
	case KindString:
		s, ok := coerceString(raw)
		if !ok {
			return nil, Issues{typeIssue(at, c.Kind)}
		}
		n := utf8.RuneCountInString(s)
		if c.MinLen != nil && n < *c.MinLen || c.MaxLen != nil && n > *c.MaxLen {
			return nil, Issues{rangeIssue(at, "min_length", c.MinLen, "max_length", c.MaxLen, n)}
		}
		return s, nil

	case KindInteger:
		i, ok := coerceInt(raw)
		if !ok {
			return nil, Issues{typeIssue(at, c.Kind)}
		}
		if outside(float64(i), c.Min, c.Max) {
			return nil, Issues{rangeIssue(at, "min", c.Min, "max", c.Max, i)}
		}
		return i, nil

	case KindFloat:
		f, ok := coerceFloat(raw)
		if !ok {
			return nil, Issues{typeIssue(at, c.Kind)}
		}
		if outside(f, c.Min, c.Max) {
			return nil, Issues{rangeIssue(at, "min", c.Min, "max", c.Max, f)}
		}
		return f, nil

	case KindBool:
		b, ok := coerceBool(raw)
		if !ok {
			return nil, Issues{typeIssue(at, c.Kind)}
		}
		return b, nil

	case KindTimestamp:
		t, ok := coerceTime(raw)
		if !ok {
			return nil, Issues{typeIssue(at, c.Kind)}
		}
		return t, nil

	case KindEnum:
		s, ok := coerceString(raw)
		if ok {
			for _, tag := range c.Tags {
				if s == tag {
					return s, nil
				}
			}
		}
		it := at.Issue(CodeInvalidEnum, i18n.T(CodeInvalidEnum, nil), "tags", append([]string(nil), c.Tags...))
		it.Hint = "expected one of: " + strings.Join(c.Tags, ", ")
		return nil, Issues{it}

	case KindRecord:
		m, ok := asMap(raw)
		if !ok {
			return nil, Issues{typeIssue(at, c.Kind)}
		}
		rec, iss := validateRecord(ctx, at, c.Record, m, opt)
		if len(iss) > 0 {
			return nil, iss
		}
		return rec, nil

	case KindSequence:
		return validateSequence(ctx, at, c, raw, opt)
	}
	return nil, Issues{typeIssue(at, c.Kind)}
}

// validateSequence checks the element count first, then every element;
// element issues are collected across elements unless FailFast is set.
func validateSequence(ctx context.Context, at PathRef, c *Constraint, raw any, opt Options) (any, Issues) {
	items, ok := asSlice(raw)
	if !ok {
		return nil, Issues{typeIssue(at, c.Kind)}
	}
	n := len(items)
	if c.MinItems != nil && n < *c.MinItems || c.MaxItems != nil && n > *c.MaxItems {
		return nil, Issues{rangeIssue(at, "min_items", c.MinItems, "max_items", c.MaxItems, n)}
	}
	out := make([]any, n)
	var iss Issues
	for i, item := range items {
		v, ei := validateField(ctx, at.Index(i), c.Elem, item, true, opt)
		if len(ei) > 0 {
			iss = AppendIssues(iss, ei...)
			if opt.FailFast {
				return nil, iss
			}
			continue
		}
		out[i] = v
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func outside(v float64, lo, hi *float64) bool {
	return lo != nil && v < *lo || hi != nil && v > *hi
}

func typeIssue(at PathRef, k Kind) Issue {
	it := at.Issue(CodeInvalidType, i18n.T(CodeInvalidType, map[string]string{"kind": k.String()}), "expected", k.String())
	it.Hint = "expected " + k.String()
	return it
}

func rangeIssue[B int | float64, G any](at PathRef, loKey string, lo *B, hiKey string, hi *B, got G) Issue {
	kv := []any{"got", got}
	if lo != nil {
		kv = append(kv, loKey, *lo)
	}
	if hi != nil {
		kv = append(kv, hiKey, *hi)
	}
	return at.Issue(CodeOutOfRange, i18n.T(CodeOutOfRange, nil), kv...)
}
