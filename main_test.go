package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestRun_ShutsDownOnCancel starts the server and janitor and checks both
// stop once the context is cancelled.
func TestRun_ShutsDownOnCancel(t *testing.T) {
	cfg := Config{
		Addr:          "127.0.0.1:0",
		GinMode:       "test",
		SessionTTL:    time.Minute,
		SweepInterval: time.Millisecond,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, run(ctx, cfg, zap.NewNop()))
}
