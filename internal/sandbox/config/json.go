package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/calamaunido/internal/flagx"
	"github.com/dmitrijs2005/calamaunido/internal/timex"
)

// JsonConfig is the on-disk shape of the sandbox configuration. Durations
// accept both "30m" strings and integer nanoseconds.
type JsonConfig struct {
	Addr            string         `json:"addr"`
	SecretKey       string         `json:"secret_key"`
	AccessTokenTTL  timex.Duration `json:"access_token_ttl"`
	RefreshTokenTTL timex.Duration `json:"refresh_token_ttl"`
	PageSize        int            `json:"page_size"`
	PublicURL       string         `json:"public_url"`
	LogLevel        string         `json:"log_level"`
}

// parseJson loads the file named by -c or -config into config. Empty fields
// keep the current value. Read and unmarshal errors panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenTTL.Duration > 0 {
		config.AccessTokenTTL = c.AccessTokenTTL.Duration
	}
	if c.RefreshTokenTTL.Duration > 0 {
		config.RefreshTokenTTL = c.RefreshTokenTTL.Duration
	}
	if c.PageSize > 0 {
		config.PageSize = c.PageSize
	}
	if c.PublicURL != "" {
		config.PublicURL = c.PublicURL
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
