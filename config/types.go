package config

import "time"

// APIConfig contains the upstream tracking API configuration
type APIConfig struct {
	BaseURL           string `yaml:"baseURL" validate:"required,url"`
	TimeoutSec        int    `yaml:"timeoutSec" validate:"gte=0"`
	RateLimitCalls    int    `yaml:"rateLimitCalls" validate:"gte=0"`
	RateLimitPauseSec int    `yaml:"rateLimitPauseSec" validate:"gte=0"`
	FetchRetries      int    `yaml:"fetchRetries" validate:"gte=0"`
	RetryBackoffSec   int    `yaml:"retryBackoffSec" validate:"gte=0"`
}

// Timeout returns the HTTP client timeout
func (c APIConfig) Timeout() time.Duration { return time.Duration(c.TimeoutSec) * time.Second }

// RateLimitPause returns how long to block once the call ceiling is reached
func (c APIConfig) RateLimitPause() time.Duration {
	return time.Duration(c.RateLimitPauseSec) * time.Second
}

// RetryBackoff returns the pause between transport-level retries
func (c APIConfig) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffSec) * time.Second
}

// FilesConfig names every file the tool reads or writes
type FilesConfig struct {
	EnvFile    string `yaml:"envFile"`
	Snapshot   string `yaml:"snapshot"`
	Summary    string `yaml:"summary"`
	Map        string `yaml:"map"`
	GTFSRTFeed string `yaml:"gtfsrtFeed"` // empty disables the protobuf export
}

// MapConfig contains the fallback viewport used when no marker can be plotted
type MapConfig struct {
	CenterLat float64 `yaml:"centerLat" validate:"gte=-90,lte=90"`
	CenterLon float64 `yaml:"centerLon" validate:"gte=-180,lte=180"`
	Zoom      int     `yaml:"zoom" validate:"gte=0,lte=19"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	API   APIConfig   `yaml:"api" validate:"required"`
	Files FilesConfig `yaml:"files"`
	Map   MapConfig   `yaml:"map"`
}
