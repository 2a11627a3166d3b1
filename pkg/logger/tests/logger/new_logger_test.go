package logger_test

import (
	"context"
	"testing"

	"newshub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates logger for every environment and level", func(t *testing.T) {
		environments := []logger.Environment{logger.Development, logger.Production}
		levels := []string{"debug", "info", "warn", "warning", "error", "invalid", ""}

		for _, env := range environments {
			for _, level := range levels {
				t.Run(string(env)+"/level="+level, func(t *testing.T) {
					log, err := logger.NewLogger(env, level)
					require.NoError(t, err)
					require.NotNil(t, log)
				})
			}
		}
	})

	t.Run("basic logging functionality", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "info")
		require.NoError(t, err)
		require.NotNil(t, log)

		ctx := logger.NewRequestIDContext(context.Background(), "test-request-id")

		assert.NotPanics(t, func() {
			log.Debug(ctx, "debug message")
			log.Info(ctx, "info message")
			log.Warn(ctx, "warn message")
			log.Error(ctx, "error message")
		})
	})

	t.Run("with method creates new logger instance", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "info")
		require.NoError(t, err)

		newLog := log.With()
		assert.NotNil(t, newLog)
		assert.NotSame(t, log, newLog)
	})
}
