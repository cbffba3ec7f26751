// Package config loads runtime configuration for the agroassist CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables AGRO_*, optionally from a .env file.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8000/api",
//	  "token_store": "sqlite",
//	  "token_db": "agroassist.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "log_level": "info",
//	  "request_timeout": "30s"
//	}
//
// request_timeout accepts "30s" style strings or integer nanoseconds.
package config
