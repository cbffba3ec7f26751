package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/agroassist/internal/flagx"
	"github.com/dmitrijs2005/agroassist/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	TokenStore     *string         `json:"token_store"`
	TokenDB        *string         `json:"token_db"`
	RedisAddr      *string         `json:"redis_addr"`
	LogLevel       *string         `json:"log_level"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values from the JSON file named by -c or
// -config in args. Without either flag it does nothing.
//
// Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.TokenStore != nil {
		cfg.TokenStore = *jc.TokenStore
	}
	if jc.TokenDB != nil {
		cfg.TokenDB = *jc.TokenDB
	}
	if jc.RedisAddr != nil {
		cfg.RedisAddr = *jc.RedisAddr
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
