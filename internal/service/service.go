// Package service contains the user-facing business logic. Every operation
// follows the same flow: validate the input, check the rate ceiling, run the
// linguistic backend, render the Russian response, and record the exchange
// in the query ledger.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/filologbot/filolog/internal/common"
	"github.com/filologbot/filolog/internal/ledger"
	"github.com/filologbot/filolog/internal/logging"
	"github.com/filologbot/filolog/internal/morphology"
	"github.com/filologbot/filolog/internal/ratelimit"
	"github.com/filologbot/filolog/internal/speller"
)

// Command names as recorded in the ledger.
const (
	CmdAnalyze      = "/analyze"
	CmdSpellCheck   = "/spell_check"
	CmdExamples     = "/examples"
	CmdHistory      = "/history"
	CmdClearHistory = "/clear_history"
	CmdStart        = "/start"
	CmdHelp         = "/help"
)

// ExampleCount is how many example sentences are requested per word.
const ExampleCount = 3

// ExampleGenerator produces example sentences for a word. A nil example
// slice with a nil error means the generator has no credentials configured.
type ExampleGenerator interface {
	Available() bool
	GenerateExamples(ctx context.Context, word string, count int) ([]string, error)
}

// Service exposes the bot operations. Rejections (empty input, oversized
// input, rate ceiling) return a ready user-facing message together with a
// sentinel error from the common package, so callers can both display the
// message and branch on the cause.
type Service struct {
	analyzer     *morphology.Analyzer
	inflector    *morphology.Inflector
	checker      *speller.Checker
	ledger       ledger.Repository
	limiter      *ratelimit.Limiter
	examples     ExampleGenerator
	log          logging.Logger
	maxInput     int
	historyLimit int
}

func New(analyzer *morphology.Analyzer, inflector *morphology.Inflector,
	checker *speller.Checker, repo ledger.Repository, limiter *ratelimit.Limiter,
	examples ExampleGenerator, log logging.Logger,
	maxInput, historyLimit int) *Service {
	return &Service{
		analyzer:     analyzer,
		inflector:    inflector,
		checker:      checker,
		ledger:       repo,
		limiter:      limiter,
		examples:     examples,
		log:          log,
		maxInput:     maxInput,
		historyLimit: historyLimit,
	}
}

// AnalyzeWord runs a morphological analysis of one word and renders the
// full report with normal form, part of speech, grammemes and the six-case
// table.
func (s *Service) AnalyzeWord(ctx context.Context, userID int64, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return MsgAnalyzeUsage, common.ErrInputRejected
	}
	if !s.limiter.Admit(ctx, userID) {
		return RateLimitedMessage(s.limiter.Ceiling()), common.ErrRateLimited
	}
	if utf8.RuneCountInString(word) > s.maxInput {
		return WordTooLongMessage(s.maxInput), common.ErrInputRejected
	}

	analysis := s.analyzer.Analyze(word)
	variations := s.inflector.Variations(word)
	response := FormatAnalysis(word, analysis, variations)

	if err := s.record(ctx, userID, CmdAnalyze, word, response); err != nil {
		return "", err
	}
	s.log.Info(ctx, "word analyzed", "user_id", userID, "word", word)
	return response, nil
}

// CheckSpelling finds misspelled Cyrillic words in the text and renders the
// issue list with replacement candidates.
func (s *Service) CheckSpelling(ctx context.Context, userID int64, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return MsgSpellCheckUsage, common.ErrInputRejected
	}
	if !s.limiter.Admit(ctx, userID) {
		return RateLimitedMessage(s.limiter.Ceiling()), common.ErrRateLimited
	}
	if utf8.RuneCountInString(text) > s.maxInput {
		return TextTooLongMessage(s.maxInput), common.ErrInputRejected
	}

	issues := s.checker.Check(text)
	response := speller.Format(issues)

	if err := s.record(ctx, userID, CmdSpellCheck, text, response); err != nil {
		return "", err
	}
	s.log.Info(ctx, "spelling checked", "user_id", userID, "issues", len(issues))
	return response, nil
}

// GenerateExamples asks the example oracle for sentences using the word.
// A generator without credentials yields the unavailability notice, which is
// still recorded as the response.
func (s *Service) GenerateExamples(ctx context.Context, userID int64, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return MsgExamplesUsage, common.ErrInputRejected
	}
	if !s.limiter.Admit(ctx, userID) {
		return RateLimitedMessage(s.limiter.Ceiling()), common.ErrRateLimited
	}
	if utf8.RuneCountInString(word) > s.maxInput {
		return WordTooLongMessage(s.maxInput), common.ErrInputRejected
	}

	var response string
	if s.examples == nil || !s.examples.Available() {
		response = MsgExamplesUnavailable
	} else {
		examples, err := s.examples.GenerateExamples(ctx, word, ExampleCount)
		if err != nil {
			// сбой оракула не валит запрос, пользователь получает отказ
			s.log.Warn(ctx, "example generation failed", "user_id", userID, "word", word, "error", err)
			response = MsgExamplesUnavailable
		} else if examples == nil {
			response = MsgExamplesUnavailable
		} else {
			response = FormatExamples(word, examples)
		}
	}

	if err := s.record(ctx, userID, CmdExamples, word, response); err != nil {
		return "", err
	}
	s.log.Info(ctx, "examples generated", "user_id", userID, "word", word)
	return response, nil
}

// History renders the user's recent ledger records, newest first. A failing
// read degrades to the empty-history message instead of an error.
func (s *Service) History(ctx context.Context, userID int64) (string, error) {
	items, err := s.ledger.Recent(ctx, userID, s.historyLimit)
	if err != nil {
		s.log.Warn(ctx, "history read failed", "user_id", userID, "error", err)
		items = nil
	}
	response := FormatHistory(items)

	if err := s.record(ctx, userID, CmdHistory, "", response); err != nil {
		return "", err
	}
	return response, nil
}

// ClearHistory removes every ledger record for the user and reports how
// many were deleted. The confirmation itself becomes the first record of
// the fresh history.
func (s *Service) ClearHistory(ctx context.Context, userID int64) (string, error) {
	count, err := s.ledger.ClearAll(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	response := HistoryClearedMessage(count)

	if err := s.record(ctx, userID, CmdClearHistory, "", response); err != nil {
		return "", err
	}
	s.log.Info(ctx, "history cleared", "user_id", userID, "deleted", count)
	return response, nil
}

// Start returns the greeting and records the visit.
func (s *Service) Start(ctx context.Context, userID int64) (string, error) {
	if err := s.record(ctx, userID, CmdStart, "", StartText); err != nil {
		return "", err
	}
	return StartText, nil
}

// Help returns the command reference and records the visit.
func (s *Service) Help(ctx context.Context, userID int64) (string, error) {
	if err := s.record(ctx, userID, CmdHelp, "", HelpText); err != nil {
		return "", err
	}
	return HelpText, nil
}

// AdmitRequest reports whether the user may issue another request right
// now, for callers that drive the limiter directly.
func (s *Service) AdmitRequest(ctx context.Context, userID int64) bool {
	return s.limiter.Admit(ctx, userID)
}

// RecordQuery appends one exchange to the ledger on behalf of an external
// transport that produced the response itself.
func (s *Service) RecordQuery(ctx context.Context, userID int64, command, input, output string) error {
	return s.record(ctx, userID, command, input, output)
}

func (s *Service) record(ctx context.Context, userID int64, command, queryText, responseText string) error {
	if err := s.ledger.Append(ctx, userID, command, queryText, responseText); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return nil
}
