package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s/-server server base URL (e.g. "http://localhost:8080")
//	-d local database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "15s", "1m")
func ParseFlags() *StructuredConfig {
	var serverURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration

	flag.StringVar(&serverURL, "s", "", "Chat service base URL")
	flag.StringVar(&serverURL, "server", "", "Chat service base URL (alias)")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
