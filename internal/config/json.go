package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/imob/internal/flagx"
	"github.com/dmitrijs2005/imob/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so JSON can specify them as "15s" or integer nanoseconds.
// Absent fields keep the values from earlier stages.
type JsonConfig struct {
	Storage         *string         `json:"storage"`
	DSN             *string         `json:"dsn"`
	RedisURL        *string         `json:"redis_url"`
	LogLevel        *string         `json:"log_level"`
	GenAIAPIKey     *string         `json:"genai_api_key"`
	GenAIModel      *string         `json:"genai_model"`
	DescribeTimeout *timex.Duration `json:"describe_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without such a flag nothing is loaded.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.Storage, jc.Storage)
	setString(&cfg.DSN, jc.DSN)
	setString(&cfg.RedisURL, jc.RedisURL)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.GenAIAPIKey, jc.GenAIAPIKey)
	setString(&cfg.GenAIModel, jc.GenAIModel)
	if jc.DescribeTimeout != nil {
		cfg.DescribeTimeout = jc.DescribeTimeout.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
