// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package directory

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.schooldigger.com/v2.0"

type Config struct {
	// BaseURL is the directory API root including the version path.
	// Example: "https://api.schooldigger.com/v2.0"
	BaseURL string

	// AppID and AppKey are injected as query parameters on every call.
	// Both are required.
	AppID  string
	AppKey string

	// RateWindow is the rolling window for MaxCallsPerWindow.
	// Default: 60s
	RateWindow time.Duration

	// MaxCallsPerWindow bounds outbound calls within RateWindow, across all
	// concurrently running strategies.
	// Default: 20
	MaxCallsPerWindow int

	// MinCallDelay is the minimum spacing between two outbound calls.
	// Default: 100ms
	MinCallDelay time.Duration

	// HTTPTimeout bounds a single HTTP round trip. Zero disables the timeout.
	// Default: 15s
	HTTPTimeout time.Duration

	// MaxAttempts is how many times a transient failure (network error or
	// 5xx) is attempted. 1 disables retries.
	// Default: 1
	MaxAttempts int

	// RetryDelay is the base delay for exponential backoff between attempts.
	// Default: 500ms
	RetryDelay time.Duration
}

type ConfigOption func(*Config)

func WithBaseURL(url string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = url
	}
}

func WithCredentials(appID, appKey string) ConfigOption {
	return func(c *Config) {
		c.AppID = appID
		c.AppKey = appKey
	}
}

func WithRateWindow(window time.Duration) ConfigOption {
	return func(c *Config) {
		c.RateWindow = window
	}
}

func WithMaxCallsPerWindow(n int) ConfigOption {
	return func(c *Config) {
		c.MaxCallsPerWindow = n
	}
}

func WithMinCallDelay(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.MinCallDelay = d
	}
}

func WithHTTPTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.HTTPTimeout = d
	}
}

func WithRetry(maxAttempts int, baseDelay time.Duration) ConfigOption {
	return func(c *Config) {
		c.MaxAttempts = maxAttempts
		c.RetryDelay = baseDelay
	}
}

// DefaultConfig returns a Config with the directory's documented limits.
// Credentials are left empty and must be supplied.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:           DefaultBaseURL,
		RateWindow:        60 * time.Second,
		MaxCallsPerWindow: 20,
		MinCallDelay:      100 * time.Millisecond,
		HTTPTimeout:       15 * time.Second,
		MaxAttempts:       1,
		RetryDelay:        500 * time.Millisecond,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithCredentials(os.Getenv("SCHOOLFINDER_APP_ID"), os.Getenv("SCHOOLFINDER_APP_KEY")),
//	    WithMaxCallsPerWindow(10),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize trims whitespace from credentials and the trailing slash from
// BaseURL so endpoints can be appended directly.
func (c *Config) Normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.AppID = strings.TrimSpace(c.AppID)
	c.AppKey = strings.TrimSpace(c.AppKey)
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.AppID == "" {
		return fmt.Errorf("directory config: %w: AppID is required", ErrMissingCredentials)
	}
	if c.AppKey == "" {
		return fmt.Errorf("directory config: %w: AppKey is required", ErrMissingCredentials)
	}
	if c.BaseURL == "" {
		return errors.New("directory config: BaseURL is required")
	}
	if c.RateWindow <= 0 {
		return errors.New("directory config: RateWindow must be positive")
	}
	if c.MaxCallsPerWindow < 1 {
		return errors.New("directory config: MaxCallsPerWindow must be at least 1")
	}
	if c.MinCallDelay < 0 {
		return errors.New("directory config: MinCallDelay cannot be negative")
	}
	if c.HTTPTimeout < 0 {
		return errors.New("directory config: HTTPTimeout cannot be negative")
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("directory config: %w", ErrInvalidMaxAttempts)
	}
	if c.RetryDelay < 0 {
		return errors.New("directory config: RetryDelay cannot be negative")
	}
	return nil
}
