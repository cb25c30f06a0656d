package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/calamaunido/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   API base URL
//	-m string   media base URL for evidence images
//	-s string   path of the local SQLite store
//	-k string   path of the device key file
//	-d string   evidence download directory
//	-t int      request timeout (in seconds)
//	-l string   log level
//	-r          skip the login screen when a session is stored
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-s", "-k", "-d", "-t", "-l", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.MediaBaseURL, "m", cfg.MediaBaseURL, "media base URL")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "local store path")
	fs.StringVar(&cfg.KeyPath, "k", cfg.KeyPath, "device key path")
	fs.StringVar(&cfg.DownloadDir, "d", cfg.DownloadDir, "evidence download directory")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.SkipLoginIfSession, "r", cfg.SkipLoginIfSession, "skip login when a session is stored")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
