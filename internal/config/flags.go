package config

import (
	"flag"
	"os"
	"time"

	"github.com/filologbot/filolog/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string    ledger DSN (SQLite path or postgres:// URI)
//	-w string    path to the weighted spelling dictionary
//	-k string    LLM API key (empty disables example generation)
//	-b string    LLM base URL
//	-m string    LLM model name
//	-l int       per-user request ceiling
//	-i int       rate window, minutes
//	-x int       maximum input length, runes
//	-n int       history listing limit
//	-t int       request timeout, seconds
//	-uid int     user identity for the CLI session
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes
//     using flagx.FilterArgs, so positional CLI arguments (the subcommand
//     and its input) never confuse the parser.
//   - Duration flags are accepted as integers and converted to
//     time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-w", "-k", "-b", "-m", "-l", "-i", "-x", "-n", "-t", "-uid"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "query ledger DSN")
	fs.StringVar(&config.DictionaryPath, "w", config.DictionaryPath, "weighted dictionary path")
	fs.StringVar(&config.LLMAPIKey, "k", config.LLMAPIKey, "LLM API key")
	fs.StringVar(&config.LLMBaseURL, "b", config.LLMBaseURL, "LLM base URL")
	fs.StringVar(&config.LLMModel, "m", config.LLMModel, "LLM model")

	fs.IntVar(&config.RateLimit, "l", config.RateLimit, "request ceiling per window")
	rateWindow := fs.Int("i", int(config.RateWindow.Minutes()), "rate window (in minutes)")
	fs.IntVar(&config.MaxInputLength, "x", config.MaxInputLength, "max input length (runes)")
	fs.IntVar(&config.HistoryLimit, "n", config.HistoryLimit, "history listing limit")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.Int64Var(&config.UserID, "uid", config.UserID, "user id for the CLI session")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RateWindow = time.Duration(*rateWindow) * time.Minute
	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
