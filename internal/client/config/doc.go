// Package config loads runtime configuration for the CalamaUnido client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "15s" or integer
// nanoseconds. Every key is optional:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8080",
//	  "media_base_url": "https://res.cloudinary.com/de06451wd/",
//	  "storage_path": "calamaunido.db",
//	  "key_path": "calamaunido.key",
//	  "download_dir": "download",
//	  "request_timeout": "15s",
//	  "log_level": "debug",
//	  "city_lat": -22.456,
//	  "city_lng": -68.929,
//	  "skip_login_if_session": true
//	}
//
// This package does not read environment variables.
package config
