package recordcheck

import "context"

// Validator is satisfied by *RecordSchema; callers that only need to run
// validation can depend on it instead of the concrete schema.
type Validator interface {
	Validate(ctx context.Context, raw map[string]any, opts ...Options) Report
}

var _ Validator = (*RecordSchema)(nil)

// Validate is the method form of the package-level Validate.
func (s *RecordSchema) Validate(ctx context.Context, raw map[string]any, opts ...Options) Report {
	return Validate(ctx, s, raw, opts...)
}

// ValidateInto validates raw against s and decodes the record into T.
// On failure the error is Issues and T is its zero value.
func ValidateInto[T any](ctx context.Context, s *RecordSchema, raw map[string]any, opts ...Options) (T, error) {
	return Decode[T](Validate(ctx, s, raw, opts...))
}

// Is reports whether raw is a valid instance of s.
func Is(ctx context.Context, v Validator, raw map[string]any) bool {
	return v.Validate(ctx, raw).OK()
}

// SafeValidate returns the record and true on success, or the zero Record and
// false on failure.
func SafeValidate(ctx context.Context, v Validator, raw map[string]any) (Record, bool) {
	rep := v.Validate(ctx, raw)
	return rep.Record(), rep.OK()
}
