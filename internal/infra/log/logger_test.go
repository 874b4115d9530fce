package logs

import (
	"context"
	"log/slog"
	"testing"

	"fintwin/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: " warn ", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := New(Params{Config: cfg})
	require.Error(t, err)
}

func TestContextHelpers(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.New(slog.DiscardHandler)

	ctx := context.Background()
	assert.Same(t, fallback, FromContext(ctx, fallback))
	assert.Empty(t, RequestIDFromContext(ctx))

	ctx = WithContext(ctx, scoped)
	ctx = WithRequestID(ctx, "req-1")
	assert.Same(t, scoped, FromContext(ctx, fallback))
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
}
