package recordcheck

import (
	"context"

	"github.com/reoring/recordcheck/i18n"
)

// serviceKey is a unique key per type parameter T for context storage.
type serviceKey[T any] struct{}

// WithService stores a typed service in ctx for invariants that need outside
// state (a clock, a registry of known IDs).
func WithService[T any](ctx context.Context, svc T) context.Context {
	return context.WithValue(ctx, serviceKey[T]{}, any(svc))
}

// Service retrieves a typed service from ctx.
func Service[T any](ctx context.Context) (T, bool) {
	var zero T
	if ctx == nil {
		return zero, false
	}
	if tv, ok := ctx.Value(serviceKey[T]{}).(T); ok {
		return tv, true
	}
	return zero, false
}

// RequireService returns the service, or Issues with CodeDependencyUnavailable
// that an invariant can return as is.
func RequireService[T any](ctx context.Context) (T, error) {
	if v, ok := Service[T](ctx); ok {
		return v, nil
	}
	var zero T
	return zero, Issues{Issue{Code: CodeDependencyUnavailable, Message: i18n.T(CodeDependencyUnavailable, nil)}}
}
