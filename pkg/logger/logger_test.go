package logger_test

import (
	"context"
	"testing"

	"breachwatch/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func TestSetup_doesNotPanic(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		require.NotPanics(t, func() { logger.Setup(env) })
		require.NotNil(t, logger.Get(context.Background()))
	}
}

func TestGet_prefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "default logger expected when context carries none")

	custom, _ := zap.NewDevelopment()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields_attachesFieldsToContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("email", "user@example.com"))
	logger.Info(ctx, "scan started")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "scan started", entries[0].Message)
	require.Equal(t, "user@example.com", entries[0].ContextMap()["email"])
}

func TestLevelHelpers_doNotPanic(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	require.NotPanics(t, func() { logger.Debug(ctx, "debug", zap.String("k", "v")) })
	require.NotPanics(t, func() { logger.Info(ctx, "info") })
	require.NotPanics(t, func() { logger.Warn(ctx, "warn") })
	require.NotPanics(t, func() { logger.Error(ctx, "error") })
}
