package config

import "log"

type Config struct {
	Port      string
	DBDSN     string
	LogFile   string
	BodyLimit int
}

// Load returns the service configuration. The listener port and store file
// are fixed; there are no environment or flag overrides.
func Load() Config {
	cfg := Config{
		Port:      "8080",
		DBDSN:     "users.db", // sqlite file in the working directory
		LogFile:   "",
		BodyLimit: 1 << 20, // 1 MiB
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%q", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
