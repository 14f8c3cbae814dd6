package logger_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/toko-api/constant"
	"github.com/muhammadheryan/toko-api/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCtx_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := logger.Set(zap.New(core))
	defer restore()

	ctx := context.WithValue(context.Background(), constant.RequestIDKey, "req-1")
	logger.Ctx(ctx).Info("hello")
	logger.Ctx(context.Background()).Info("plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := logger.Set(zap.New(core))
	defer restore()

	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e", zap.String("error", "boom"))

	require.Equal(t, 4, logs.Len())
	assert.Equal(t, 1, logs.FilterMessage("e").FilterField(zap.String("error", "boom")).Len())
}

func TestInit(t *testing.T) {
	restore := logger.Set(nil)
	defer restore()

	require.NoError(t, logger.Init("production"))
	assert.NotNil(t, logger.Get())
	require.NoError(t, logger.Init("development"))
	assert.NotNil(t, logger.Get())
}
