package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/agroassist/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   API base URL
//	-s string   token store: memory, sqlite or redis
//	-d string   SQLite token database file
//	-r string   Redis address for the redis token store
//	-l string   log level
//	-t int      request timeout in seconds (0 disables it)
//
// Only these flags are looked at (see flagx.FilterArgs). Panics on a
// malformed value.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-d", "-r", "-l", "-t"})

	fs := flag.NewFlagSet("agroassist", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.TokenStore, "s", cfg.TokenStore, "token store (memory|sqlite|redis)")
	fs.StringVar(&cfg.TokenDB, "d", cfg.TokenDB, "SQLite token database file")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
