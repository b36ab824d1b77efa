package common

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/Veraticus/buybox-master/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func fastRetry() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
		Multiplier:   2,
	}
}

func TestWithRetry(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return &RetryableError{Err: errors.New("flaky"), Retryable: true}
			}
			return nil
		}, fastRetry())

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent errors", func(t *testing.T) {
		calls := 0
		permanent := errors.New("bad request")
		err := WithRetry(context.Background(), func() error {
			calls++
			return permanent
		}, fastRetry())

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return &googleapi.Error{Code: http.StatusServiceUnavailable}
		}, fastRetry())

		assert.ErrorIs(t, err, ErrMaxRetries)
		assert.Equal(t, 3, calls)
	})

	t.Run("honors cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		opts := fastRetry()
		opts.InitialDelay = time.Hour
		opts.MaxDelay = time.Hour
		err := WithRetry(ctx, func() error {
			return &RetryableError{Err: errors.New("flaky"), Retryable: true}
		}, opts)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrRateLimit))
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
	assert.True(t, IsRetryable(&googleapi.Error{Code: http.StatusTooManyRequests}))
	assert.True(t, IsRetryable(&googleapi.Error{Code: http.StatusBadGateway}))
	assert.False(t, IsRetryable(&googleapi.Error{Code: http.StatusForbidden}))
	assert.False(t, IsRetryable(&RetryableError{Err: errors.New("x"), Retryable: false}))
	assert.False(t, IsRetryable(errors.New("plain")))
}

func TestUserError(t *testing.T) {
	err := NewUserError("CSV parsed but contained no rows.", ErrNoRows)

	assert.ErrorIs(t, err, ErrNoRows)
	assert.Equal(t, "CSV parsed but contained no rows.", UserMessage(err))
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
	assert.Contains(t, err.Error(), ErrNoRows.Error())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	handler, err := NewHandler(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)

	slog.New(handler).Info("hello", "rows", 2)
	assert.Contains(t, buf.String(), `"rows":2`)

	_, err = NewHandler(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
