package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/calamaunido/internal/flagx"
	"github.com/dmitrijs2005/calamaunido/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Pointers distinguish "absent" from a zero value, so a file only overrides
// what it names.
type JsonConfig struct {
	APIBaseURL         *string         `json:"api_base_url"`
	MediaBaseURL       *string         `json:"media_base_url"`
	StoragePath        *string         `json:"storage_path"`
	KeyPath            *string         `json:"key_path"`
	DownloadDir        *string         `json:"download_dir"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	LogLevel           *string         `json:"log_level"`
	CityLat            *float64        `json:"city_lat"`
	CityLng            *float64        `json:"city_lng"`
	SkipLoginIfSession *bool           `json:"skip_login_if_session"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing. Read and unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIf(&cfg.APIBaseURL, jc.APIBaseURL)
	setIf(&cfg.MediaBaseURL, jc.MediaBaseURL)
	setIf(&cfg.StoragePath, jc.StoragePath)
	setIf(&cfg.KeyPath, jc.KeyPath)
	setIf(&cfg.DownloadDir, jc.DownloadDir)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.CityLat, jc.CityLat)
	setIf(&cfg.CityLng, jc.CityLng)
	setIf(&cfg.SkipLoginIfSession, jc.SkipLoginIfSession)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
