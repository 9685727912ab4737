package validation

import "context"

type requestBodyContextKey[T any] struct{}

// RequestBodyFromContext returns the body stored by NewContextRequestBodyMiddleware,
// or the zero value if there is none.
func RequestBodyFromContext[T any](ctx context.Context) T {
	value, ok := ctx.Value(requestBodyContextKey[T]{}).(T)
	if !ok {
		var zero T
		return zero
	}
	return value
}

func contextWithRequestBody[T any](ctx context.Context, body T) context.Context {
	return context.WithValue(ctx, requestBodyContextKey[T]{}, body)
}
