package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	slogging "github.com/Roshick/go-autumn-slog/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextWithFields(t *testing.T) {
	t.Run("without logger", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.NotNil(t, ContextWithFields(context.Background(), LogFieldPayloadTarget, "jsonbody.person"))
		})
	})

	t.Run("with logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		ctx := slogging.ContextWithLogger(context.Background(), slog.New(slog.NewJSONHandler(buf, nil)))

		ctx = ContextWithFields(ctx, LogFieldPayloadTarget, "jsonbody.person", LogFieldErrorCode, "missing_field")
		logger := slogging.FromContext(ctx)
		require.NotNil(t, logger)
		logger.Info("rejected")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "jsonbody.person", entry[LogFieldPayloadTarget])
		assert.Equal(t, "missing_field", entry[LogFieldErrorCode])
		assert.Equal(t, "rejected", entry["msg"])
	})
}
