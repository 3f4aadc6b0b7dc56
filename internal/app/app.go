// Package app initializes and runs the filolog application. It wires the
// morphological analyzer, the spell checker, the query ledger and the
// example generator into the service layer and dispatches CLI commands to
// it.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/filologbot/filolog/internal/common"
	"github.com/filologbot/filolog/internal/config"
	"github.com/filologbot/filolog/internal/ledger"
	"github.com/filologbot/filolog/internal/llm"
	"github.com/filologbot/filolog/internal/logging"
	"github.com/filologbot/filolog/internal/morphology"
	"github.com/filologbot/filolog/internal/ratelimit"
	"github.com/filologbot/filolog/internal/service"
	"github.com/filologbot/filolog/internal/speller"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	service *service.Service
}

// NewApp builds the full application from config. A missing ledger database
// or morphological dictionary is fatal. A missing spelling dictionary file
// is not: checking then runs against the built-in word list only.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	// логи в stderr, ответы пользователю в stdout
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, repo, err := ledger.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ledger init error: %w", err)
	}

	parser, err := morphology.NewGomorphyParser()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: morphology init: %v", common.ErrOracleUnavailable, err)
	}

	dict, err := speller.LoadFile(cfg.DictionaryPath)
	if err != nil {
		logger.Warn(ctx, "spelling dictionary not loaded, using built-in words only",
			"path", cfg.DictionaryPath, "error", err)
		dict = speller.NewDictionary()
		for _, word := range speller.DomainWords {
			dict.Add(word, 1)
		}
	}

	generator := llm.NewClient(cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMBaseURL, cfg.RequestTimeout)
	limiter := ratelimit.New(repo, cfg.RateLimit, cfg.RateWindow, logger)

	svc := service.New(
		morphology.NewAnalyzer(parser),
		morphology.NewInflector(parser),
		speller.NewChecker(dict),
		repo, limiter, generator, logger,
		cfg.MaxInputLength, cfg.HistoryLimit,
	)

	return &App{config: cfg, logger: logger, db: db, service: svc}, nil
}

// Close releases the ledger database.
func (a *App) Close() error {
	return a.db.Close()
}

// Execute runs one command against the service and returns the user-facing
// response. Rejections (usage errors, rate limiting) come back as a message
// with a nil error: they were answered, not failed.
func (a *App) Execute(ctx context.Context, command, input string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	userID := a.config.UserID

	var response string
	var err error
	switch command {
	case service.CmdStart, "start":
		response, err = a.service.Start(ctx, userID)
	case service.CmdHelp, "help":
		response, err = a.service.Help(ctx, userID)
	case service.CmdAnalyze, "analyze":
		response, err = a.service.AnalyzeWord(ctx, userID, input)
	case service.CmdSpellCheck, "spell_check":
		response, err = a.service.CheckSpelling(ctx, userID, input)
	case service.CmdExamples, "examples":
		response, err = a.service.GenerateExamples(ctx, userID, input)
	case service.CmdHistory, "history":
		response, err = a.service.History(ctx, userID)
	case service.CmdClearHistory, "clear_history":
		response, err = a.service.ClearHistory(ctx, userID)
	default:
		return "", fmt.Errorf("unknown command %q, try \"help\"", command)
	}

	if err != nil {
		if response != "" {
			// отклонённый запрос: сообщение уже готово для пользователя
			return response, nil
		}
		return "", err
	}
	return response, nil
}
