package checker_test

import (
	"context"
	"testing"
	"time"
	"vatcheck/internal/checker"

	"github.com/stretchr/testify/require"
)

func TestFixedDelay_Waits(t *testing.T) {
	start := time.Now()
	checker.FixedDelay(50 * time.Millisecond).Wait(context.Background())
	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestFixedDelay_ZeroReturnsImmediately(t *testing.T) {
	start := time.Now()
	checker.FixedDelay(0).Wait(context.Background())
	require.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestFixedDelay_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	checker.FixedDelay(time.Hour).Wait(ctx)
	require.Less(t, time.Since(start), time.Second)
}
