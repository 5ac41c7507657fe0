package logger_test

import (
	"context"
	"testing"

	"emailrep/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
		wantErr     bool
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "production defaults to info", environment: logger.ProductionEnvironment, debug: false},
		{name: "explicit level", environment: logger.DevelopmentEnvironment, level: "warn", debug: false},
		{name: "unknown level keeps default", environment: logger.DevelopmentEnvironment, level: "loud", debug: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			require.NotNil(t, logger.Get(context.Background()))
			require.Equal(t, tt.debug, logger.IsDebug(context.Background()))
		})
	}
}

func TestGetPrefersContextLogger(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx))

	custom := zap.NewExample()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("domain", "example.org"))
	logger.Info(ctx, "probe finished", zap.String("probe", "dns"))
	logger.Debug(ctx, "details")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "probe finished", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "example.org", fields["domain"])
	require.Equal(t, "dns", fields["probe"])
	require.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

func TestLevelHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "d")
	logger.Info(ctx, "i")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")

	levels := make([]zapcore.Level, 0, 4)
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}
