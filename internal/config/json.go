package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/filologbot/filolog/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. Interval fields are plain integers (minutes/seconds) to
// match the flag representation.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	DatabaseDSN        string `json:"database_dsn"`
	DictionaryPath     string `json:"dictionary_path"`
	LLMAPIKey          string `json:"llm_api_key"`
	LLMBaseURL         string `json:"llm_base_url"`
	LLMModel           string `json:"llm_model"`
	RateLimit          int    `json:"rate_limit"`
	RateWindowMinutes  int    `json:"rate_window_minutes"`
	MaxInputLength     int    `json:"max_input_length"`
	HistoryLimit       int    `json:"history_limit"`
	RequestTimeoutSecs int    `json:"request_timeout_seconds"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path is taken from the -c or -config command-line flags.
// If neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// Zero-valued JSON fields are ignored so a partial file only overrides the
// settings it names. The caller is expected to merge these values with
// defaults and command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.DictionaryPath != "" {
		config.DictionaryPath = c.DictionaryPath
	}
	if c.LLMAPIKey != "" {
		config.LLMAPIKey = c.LLMAPIKey
	}
	if c.LLMBaseURL != "" {
		config.LLMBaseURL = c.LLMBaseURL
	}
	if c.LLMModel != "" {
		config.LLMModel = c.LLMModel
	}
	if c.RateLimit != 0 {
		config.RateLimit = c.RateLimit
	}
	if c.RateWindowMinutes != 0 {
		config.RateWindow = time.Duration(c.RateWindowMinutes) * time.Minute
	}
	if c.MaxInputLength != 0 {
		config.MaxInputLength = c.MaxInputLength
	}
	if c.HistoryLimit != 0 {
		config.HistoryLimit = c.HistoryLimit
	}
	if c.RequestTimeoutSecs != 0 {
		config.RequestTimeout = time.Duration(c.RequestTimeoutSecs) * time.Second
	}
}
