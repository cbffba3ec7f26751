package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with AGRO_* environment variables. The given
// dotenv files (".env" when none) are loaded first; variables already set in
// the process environment win over the file, and a missing file is ignored.
//
// Recognised variables:
//
//	AGRO_API_URL, AGRO_TOKEN_STORE, AGRO_TOKEN_DB, AGRO_TOKEN_PASSPHRASE,
//	AGRO_REDIS_ADDR, AGRO_LOG_LEVEL, AGRO_REQUEST_TIMEOUT ("30s" style)
//
// Panics on an unparsable AGRO_REQUEST_TIMEOUT.
func parseEnv(cfg *Config, envFiles ...string) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	if v, ok := lookup("AGRO_API_URL"); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup("AGRO_TOKEN_STORE"); ok {
		cfg.TokenStore = strings.ToLower(v)
	}
	if v, ok := lookup("AGRO_TOKEN_DB"); ok {
		cfg.TokenDB = v
	}
	if v, ok := lookup("AGRO_TOKEN_PASSPHRASE"); ok {
		cfg.TokenPassphrase = v
	}
	if v, ok := lookup("AGRO_REDIS_ADDR"); ok {
		cfg.RedisAddr = v
	}
	if v, ok := lookup("AGRO_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("AGRO_REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}
