package logging

import (
	"context"

	slogging "github.com/Roshick/go-autumn-slog/pkg/logging"
)

// ContextWithFields extends the context logger by args. A context without a
// logger is returned unchanged.
func ContextWithFields(ctx context.Context, args ...any) context.Context {
	logger := slogging.FromContext(ctx)
	if logger == nil {
		return ctx
	}
	return slogging.ContextWithLogger(ctx, logger.With(args...))
}
