package speller

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// SeverityError is the single severity code issues are reported with.
const SeverityError = 1

// wordPattern matches maximal runs of Cyrillic letters of length ≥ 2.
// Digits, Latin tokens, and single letters are never flagged.
var wordPattern = regexp.MustCompile(`[а-яА-ЯёЁ]{2,}`)

// Issue describes one word flagged by the checker.
type Issue struct {
	// Word is the flagged word, lowercased to the dictionary normalization.
	Word string
	// Position is the rune offset of the word's first occurrence in the
	// source text, even if the word recurs.
	Position int
	// Length is the word length in runes.
	Length int
	// Candidates holds correction suggestions, best first. May be empty.
	Candidates []string
	// Code is the severity code, always SeverityError.
	Code int
}

// Checker flags words absent from a weighted dictionary and attaches ranked
// correction candidates. It is stateless beyond the shared read-only
// dictionary and safe for concurrent use.
type Checker struct {
	dict        *Dictionary
	maxDistance int
}

// NewChecker wires a checker to the dictionary. Candidates are searched
// within edit distance 2, matching the usual spell-correction radius.
func NewChecker(dict *Dictionary) *Checker {
	return &Checker{dict: dict, maxDistance: 2}
}

// Check scans text and returns issues for every distinct unknown word,
// sorted ascending by first-occurrence offset.
func (c *Checker) Check(text string) []Issue {
	if text == "" {
		return nil
	}

	type occurrence struct {
		position int
		length   int
	}
	first := make(map[string]occurrence)
	var order []string

	for _, loc := range wordPattern.FindAllStringIndex(text, -1) {
		token := text[loc[0]:loc[1]]
		word := strings.ToLower(token)
		if _, seen := first[word]; seen {
			continue
		}
		first[word] = occurrence{
			position: utf8.RuneCountInString(text[:loc[0]]),
			length:   utf8.RuneCountInString(token),
		}
		order = append(order, word)
	}

	var issues []Issue
	for _, word := range order {
		if c.dict.Has(word) {
			continue
		}
		occ := first[word]
		issues = append(issues, Issue{
			Word:       word,
			Position:   occ.position,
			Length:     occ.length,
			Candidates: c.Candidates(word),
			Code:       SeverityError,
		})
	}

	sort.Slice(issues, func(i, j int) bool {
		return issues[i].Position < issues[j].Position
	})
	return issues
}

// Candidates returns known words within the edit-distance radius of word,
// ordered by distance, then by corpus weight (heavier first), then
// lexicographically for determinism.
func (c *Checker) Candidates(word string) []string {
	word = strings.ToLower(word)
	wordLen := utf8.RuneCountInString(word)

	type scored struct {
		word     string
		distance int
		weight   int64
	}
	var found []scored

	for candidate, weight := range c.dict.words {
		// Length difference is a lower bound on the edit distance.
		diff := utf8.RuneCountInString(candidate) - wordLen
		if diff > c.maxDistance || diff < -c.maxDistance {
			continue
		}
		if d := levenshtein.ComputeDistance(word, candidate); d <= c.maxDistance {
			found = append(found, scored{word: candidate, distance: d, weight: weight})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].distance != found[j].distance {
			return found[i].distance < found[j].distance
		}
		if found[i].weight != found[j].weight {
			return found[i].weight > found[j].weight
		}
		return found[i].word < found[j].word
	})

	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.word
	}
	return out
}
