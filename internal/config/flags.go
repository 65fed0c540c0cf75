package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/imob/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   storage medium: sqlite, postgres, redis, memory
//	-d string   SQLite path or PostgreSQL DSN
//	-r string   Redis URL
//	-l string   log level
//	-m string   Gemini model name
//	-t int      description generation timeout (in seconds)
//
// A flag that is not passed leaves the value from earlier stages untouched.
//
// Note: args are filtered with flagx.FilterArgs first, so flags owned by
// other stages (-c/-config) do not abort parsing.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-s", "-d", "-r", "-l", "-m", "-t"})

	fs := flag.NewFlagSet("imob", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage medium (sqlite, postgres, redis, memory)")
	fs.StringVar(&cfg.DSN, "d", cfg.DSN, "SQLite path or PostgreSQL DSN")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "Redis URL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.GenAIModel, "m", cfg.GenAIModel, "Gemini model used for descriptions")
	timeout := fs.Int("t", int(cfg.DescribeTimeout.Seconds()), "description generation timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "t" {
			return
		}
		if *timeout <= 0 {
			err = fmt.Errorf("invalid flags: -t must be positive, got %d", *timeout)
			return
		}
		cfg.DescribeTimeout = time.Duration(*timeout) * time.Second
	})
	return err
}
