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

// Package config loads schoolfinder settings from the environment and an
// optional config file.
//
// Every key can be set either in the file (YAML, TOML or JSON, chosen by
// extension) or through an environment variable with the SCHOOLFINDER_
// prefix. The environment wins.
//
//	app_id: my-app-id          # SCHOOLFINDER_APP_ID
//	app_key: my-app-key        # SCHOOLFINDER_APP_KEY
//	rate_max_calls: 10         # SCHOOLFINDER_RATE_MAX_CALLS
//	cache_dir: /var/cache/sf   # SCHOOLFINDER_CACHE_DIR
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/poiesic/schoolfinder/directory"
	"github.com/poiesic/schoolfinder/storage"
)

const EnvPrefix = "SCHOOLFINDER"

const (
	KeyAppID        = "app_id"
	KeyAppKey       = "app_key"
	KeyBaseURL      = "base_url"
	KeyRateWindow   = "rate_window"
	KeyRateMaxCalls = "rate_max_calls"
	KeyRateMinDelay = "rate_min_delay"
	KeyHTTPTimeout  = "http_timeout"
	KeyMaxAttempts  = "max_attempts"
	KeyRetryDelay   = "retry_delay"
	KeyCacheDir     = "cache_dir"
	KeyCacheTTL     = "cache_ttl"
	KeyPoolSize     = "pool_size"
	KeyListenAddr   = "listen_addr"
)

const DefaultListenAddr = ":8080"

// ErrInvalidSetting is returned for values that parse but make no sense.
var ErrInvalidSetting = errors.New("invalid setting")

// Settings is everything the finder and its binaries need.
type Settings struct {
	Directory  *directory.Config
	CacheDir   string        // empty keeps the cache in memory
	CacheTTL   time.Duration // response cache time-to-live
	PoolSize   int           // strategy worker pool size; 0 picks a default
	ListenAddr string        // address for the HTTP API
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := directory.DefaultConfig()
	v.SetDefault(KeyBaseURL, d.BaseURL)
	v.SetDefault(KeyRateWindow, d.RateWindow)
	v.SetDefault(KeyRateMaxCalls, d.MaxCallsPerWindow)
	v.SetDefault(KeyRateMinDelay, d.MinCallDelay)
	v.SetDefault(KeyHTTPTimeout, d.HTTPTimeout)
	v.SetDefault(KeyMaxAttempts, d.MaxAttempts)
	v.SetDefault(KeyRetryDelay, d.RetryDelay)
	v.SetDefault(KeyCacheTTL, storage.DefaultTTL)
	v.SetDefault(KeyPoolSize, 0)
	v.SetDefault(KeyListenAddr, DefaultListenAddr)
	return v
}

// Load reads settings from path (if non-empty) and the environment.
// Missing credentials fail immediately with directory.ErrMissingCredentials.
func Load(path string) (*Settings, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Settings, error) {
	dcfg := directory.NewConfig(
		directory.WithBaseURL(v.GetString(KeyBaseURL)),
		directory.WithCredentials(v.GetString(KeyAppID), v.GetString(KeyAppKey)),
		directory.WithRateWindow(v.GetDuration(KeyRateWindow)),
		directory.WithMaxCallsPerWindow(v.GetInt(KeyRateMaxCalls)),
		directory.WithMinCallDelay(v.GetDuration(KeyRateMinDelay)),
		directory.WithHTTPTimeout(v.GetDuration(KeyHTTPTimeout)),
		directory.WithRetry(v.GetInt(KeyMaxAttempts), v.GetDuration(KeyRetryDelay)),
	)
	if err := dcfg.Validate(); err != nil {
		return nil, err
	}

	s := &Settings{
		Directory:  dcfg,
		CacheDir:   v.GetString(KeyCacheDir),
		CacheTTL:   v.GetDuration(KeyCacheTTL),
		PoolSize:   v.GetInt(KeyPoolSize),
		ListenAddr: v.GetString(KeyListenAddr),
	}

	if s.CacheTTL <= 0 {
		return nil, fmt.Errorf("config: %w: %s must be positive", ErrInvalidSetting, KeyCacheTTL)
	}
	if s.PoolSize < 0 {
		return nil, fmt.Errorf("config: %w: %s cannot be negative", ErrInvalidSetting, KeyPoolSize)
	}
	return s, nil
}
