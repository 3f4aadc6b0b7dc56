// Package config handles configuration for the filolog service, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the analysis service.
//
// Fields:
//   - DatabaseDSN: query ledger DSN. A plain path or file: URI opens an
//     embedded SQLite database; a postgres:// DSN selects the pgx driver.
//   - DictionaryPath: path to the weighted word list used for spell checking
//     ("word frequency" per line, frequency optional).
//   - LLMAPIKey / LLMBaseURL / LLMModel: OpenAI-compatible chat endpoint used
//     for example-sentence generation. An empty key disables the feature.
//   - RateLimit: per-user request ceiling within RateWindow.
//   - MaxInputLength: maximum accepted word/text length, in runes.
//   - HistoryLimit: number of records shown by the history command.
//   - RequestTimeout: upper bound for a single request, including LLM calls.
//   - UserID: identity the CLI acts under.
type Config struct {
	DatabaseDSN    string
	DictionaryPath string
	LLMAPIKey      string
	LLMBaseURL     string
	LLMModel       string
	RateLimit      int
	RateWindow     time.Duration
	MaxInputLength int
	HistoryLimit   int
	RequestTimeout time.Duration
	UserID         int64
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "filolog.db"
	c.DictionaryPath = "data/ru-words.txt"
	c.LLMAPIKey = ""
	c.LLMBaseURL = "https://api.openai.com/v1"
	c.LLMModel = "gpt-4o-mini"
	c.RateLimit = 10
	c.RateWindow = 1 * time.Minute
	c.MaxInputLength = 1000
	c.HistoryLimit = 10
	c.RequestTimeout = 30 * time.Second
	c.UserID = 1
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
