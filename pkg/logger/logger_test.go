package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		encoding string
		wantErr  bool
	}{
		{name: "json info", level: "info", encoding: "json"},
		{name: "console debug", level: "debug", encoding: "console"},
		{name: "unknown encoding falls back to json", level: "warn", encoding: "logfmt"},
		{name: "invalid level", level: "loud", encoding: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.level, tt.encoding)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log.Logger)
		})
	}
}

func TestLogger_FromContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	base := &Logger{zap.New(core)}
	scoped := base.With(StringField("request_id", "abc"))

	assert.Same(t, base, base.FromContext(context.Background()))

	ctx := NewContext(context.Background(), scoped)
	assert.Same(t, scoped, base.FromContext(ctx))

	base.InfoContext(ctx, "Received signal")
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Received signal", entry.Message)
	assert.Equal(t, "abc", entry.ContextMap()["request_id"])
}
