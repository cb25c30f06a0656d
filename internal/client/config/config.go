package config

import "time"

// Config holds runtime settings for the CalamaUnido terminal client.
//
// Fields:
//   - APIBaseURL: scheme and host of the REST API.
//   - MediaBaseURL: prefix that evidence paths are appended to.
//   - StoragePath / KeyPath: SQLite file and device key of the secure store.
//   - DownloadDir: where "open N" saves full-size evidence images.
//   - RequestTimeout: per-request HTTP timeout.
//   - LogLevel: debug, info, warn or error; logs go to stderr.
//   - CityLat / CityLng: reference point for distances in the detail view.
//   - SkipLoginIfSession: start on Home when a stored token exists.
type Config struct {
	APIBaseURL         string
	MediaBaseURL       string
	StoragePath        string
	KeyPath            string
	DownloadDir        string
	RequestTimeout     time.Duration
	LogLevel           string
	CityLat            float64
	CityLng            float64
	SkipLoginIfSession bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://clubdelamusica-pruebas.com"
	c.MediaBaseURL = "https://res.cloudinary.com/de06451wd/"
	c.StoragePath = "calamaunido.db"
	c.KeyPath = "calamaunido.key"
	c.DownloadDir = "download"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
	c.CityLat = -22.4560
	c.CityLng = -68.9290
	c.SkipLoginIfSession = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
