// Package config loads runtime configuration for the imob CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment: GEMINI_API_KEY (or API_KEY) for the Gemini key.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-s string   storage medium: sqlite, postgres, redis, memory
//	-d string   SQLite path or PostgreSQL DSN
//	-r string   Redis URL
//	-l string   log level
//	-m string   Gemini model
//	-t int      description timeout (seconds)
//
// # JSON schema
//
//	{
//	  "storage": "sqlite",
//	  "dsn": "imob.db",
//	  "redis_url": "redis://localhost:6379/0",
//	  "log_level": "debug",
//	  "genai_api_key": "...",
//	  "genai_model": "gemini-2.5-flash",
//	  "describe_timeout": "15s"
//	}
package config
