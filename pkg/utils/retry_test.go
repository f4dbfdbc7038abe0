package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/craftmarket/order-service/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	cfg := utils.RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}

	permanent := errors.New("permanent")

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("recovers after failures", func(t *testing.T) {
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("temporary")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		someErr := errors.New("still broken")
		err := utils.Retry(cfg, func() error {
			calls++
			return someErr
		})
		assert.ErrorIs(t, err, someErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable error aborts immediately", func(t *testing.T) {
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			return permanent
		}, permanent)
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("wrapped non-retryable error aborts", func(t *testing.T) {
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			return errors.Join(errors.New("context"), permanent)
		}, permanent)
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})
}
