package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixedInterval_RejectsNonPositiveRate(t *testing.T) {
	_, err := NewFixedInterval(0)
	assert.Error(t, err)

	_, err = NewFixedInterval(-5)
	assert.Error(t, err)
}

func TestFixedInterval_Interval(t *testing.T) {
	limiter, err := NewFixedInterval(10)
	require.NoError(t, err)
	assert.Equal(t, 6*time.Second, limiter.Interval())
}

func TestFixedInterval_EnforcesSpacing(t *testing.T) {
	// 1200 rpm = 50ms interval, fast enough for a test.
	start := time.Now()
	limiter, err := NewFixedInterval(1200)
	require.NoError(t, err)

	require.NoError(t, limiter.Wait(context.Background()))
	require.NoError(t, limiter.Wait(context.Background()))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 2*limiter.Interval())
}

func TestFixedInterval_FirstWaitBlocksFullInterval(t *testing.T) {
	start := time.Now()
	limiter, err := NewFixedInterval(1200)
	require.NoError(t, err)

	require.NoError(t, limiter.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), limiter.Interval())
}

func TestFixedInterval_ContextCancellation(t *testing.T) {
	limiter, err := NewFixedInterval(1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.Error(t, limiter.Wait(ctx))
}
