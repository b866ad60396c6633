package directory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.RateWindow)
	assert.Equal(t, 20, cfg.MaxCallsPerWindow)
	assert.Equal(t, 100*time.Millisecond, cfg.MinCallDelay)
	assert.Equal(t, 1, cfg.MaxAttempts)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		err := NewConfig().Validate()
		assert.ErrorIs(t, err, ErrMissingCredentials)

		err = NewConfig(WithCredentials("id", "  ")).Validate()
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("normalizes before validating", func(t *testing.T) {
		cfg := NewConfig(
			WithCredentials(" id ", " key "),
			WithBaseURL("https://example.test/v2/ "),
		)
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "id", cfg.AppID)
		assert.Equal(t, "key", cfg.AppKey)
		assert.Equal(t, "https://example.test/v2", cfg.BaseURL)
	})

	tests := []struct {
		name string
		opt  ConfigOption
	}{
		{"empty base url", WithBaseURL("")},
		{"zero window", WithRateWindow(0)},
		{"zero max calls", WithMaxCallsPerWindow(0)},
		{"negative min delay", WithMinCallDelay(-time.Millisecond)},
		{"negative timeout", WithHTTPTimeout(-time.Second)},
		{"negative retry delay", WithRetry(2, -time.Second)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithCredentials("id", "key"), tt.opt)
			assert.Error(t, cfg.Validate())
		})
	}

	t.Run("zero attempts", func(t *testing.T) {
		cfg := NewConfig(WithCredentials("id", "key"), WithRetry(0, time.Second))
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidMaxAttempts)
	})
}
