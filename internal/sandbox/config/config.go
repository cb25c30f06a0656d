// Package config handles configuration for the sandbox API server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the sandbox server.
//
// Fields:
//   - Addr: bind address of the HTTP listener.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Development only.
//   - AccessTokenTTL / RefreshTokenTTL: token lifetimes.
//   - PageSize: publications per page.
//   - PublicURL: absolute prefix used to build next/previous links.
//   - LogLevel: slog level name.
type Config struct {
	Addr            string
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	PageSize        int
	PublicURL       string
	LogLevel        string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.SecretKey = "secretKey"
	c.AccessTokenTTL = 60 * time.Minute
	c.RefreshTokenTTL = 24 * 60 * time.Minute
	c.PageSize = 10
	c.PublicURL = "http://127.0.0.1:8080"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
