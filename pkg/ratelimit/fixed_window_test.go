package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noamani/authkit/pkg/ratelimit"
)

func TestNewFixedWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		store       ratelimit.Store
		limit       int
		window      time.Duration
		expectError error
	}{
		{
			name:        "nil store",
			store:       nil,
			limit:       10,
			window:      time.Second,
			expectError: ratelimit.ErrStoreRequired,
		},
		{
			name:        "zero limit",
			store:       ratelimit.NewMemoryStore(),
			limit:       0,
			window:      time.Second,
			expectError: ratelimit.ErrInvalidLimit,
		},
		{
			name:        "negative window",
			store:       ratelimit.NewMemoryStore(),
			limit:       10,
			window:      -time.Second,
			expectError: ratelimit.ErrInvalidWindow,
		},
		{
			name:   "valid configuration",
			store:  ratelimit.NewMemoryStore(),
			limit:  10,
			window: time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fw, err := ratelimit.NewFixedWindow(tt.store, tt.limit, tt.window)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, fw)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, fw)
			}
		})
	}
}

func TestFixedWindow_Allow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()

		fw, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), 5, time.Minute)
		require.NoError(t, err)

		result, err := fw.Allow(ctx, "")
		assert.ErrorIs(t, err, ratelimit.ErrKeyRequired)
		assert.Nil(t, result)
	})

	t.Run("eleventh request in window is denied", func(t *testing.T) {
		t.Parallel()

		fw, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), 10, 15*time.Minute)
		require.NoError(t, err)

		for i := range 10 {
			result, err := fw.Allow(ctx, "203.0.113.1")
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i+1)
			assert.Equal(t, 10-(i+1), result.Remaining)
		}

		result, err := fw.Allow(ctx, "203.0.113.1")
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Zero(t, result.Remaining)
		assert.Positive(t, result.RetryAfter())
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()

		fw, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), 1, time.Minute)
		require.NoError(t, err)

		first, err := fw.Allow(ctx, "203.0.113.1")
		require.NoError(t, err)
		assert.True(t, first.Allowed)

		second, err := fw.Allow(ctx, "203.0.113.2")
		require.NoError(t, err)
		assert.True(t, second.Allowed)
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		t.Parallel()

		fw, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), 2, 50*time.Millisecond)
		require.NoError(t, err)

		for range 2 {
			_, err := fw.Allow(ctx, "key")
			require.NoError(t, err)
		}

		denied, err := fw.Allow(ctx, "key")
		require.NoError(t, err)
		assert.False(t, denied.Allowed)

		time.Sleep(60 * time.Millisecond)

		allowed, err := fw.Allow(ctx, "key")
		require.NoError(t, err)
		assert.True(t, allowed.Allowed)
	})

	t.Run("reset clears the window", func(t *testing.T) {
		t.Parallel()

		fw, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), 1, time.Minute)
		require.NoError(t, err)

		_, err = fw.Allow(ctx, "key")
		require.NoError(t, err)

		denied, err := fw.Allow(ctx, "key")
		require.NoError(t, err)
		require.False(t, denied.Allowed)

		require.NoError(t, fw.Reset(ctx, "key"))

		allowed, err := fw.Allow(ctx, "key")
		require.NoError(t, err)
		assert.True(t, allowed.Allowed)
	})
}

func TestFixedWindow_Status(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fw, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), 3, time.Minute)
	require.NoError(t, err)

	status, err := fw.Status(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, 3, status.Remaining)

	_, err = fw.Allow(ctx, "key")
	require.NoError(t, err)

	status, err = fw.Status(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, 2, status.Remaining)

	// Status must not consume.
	status2, err := fw.Status(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, status.Remaining, status2.Remaining)
}
