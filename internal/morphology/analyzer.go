package morphology

import "strings"

// Analysis is the displayable morphological breakdown of a single word.
type Analysis struct {
	Word       string
	NormalForm string
	POS        string // Russian category label
	Grammemes  string // comma-joined short labels, or NotAvailable
}

// Analyzer produces a best-effort analysis for any input token. It never
// fails on malformed input: unknown tokens fall back to a default noun
// classification with no grammemes.
type Analyzer struct {
	parser Parser
}

func NewAnalyzer(p Parser) *Analyzer {
	return &Analyzer{parser: p}
}

// Analyze runs the word through the parser and maps the top-ranked parse
// into display labels.
func (a *Analyzer) Analyze(word string) Analysis {
	result := Analysis{
		Word:       word,
		NormalForm: strings.ToLower(strings.TrimSpace(word)),
		POS:        DefaultPOSLabel,
		Grammemes:  NotAvailable,
	}

	parses := a.parser.Parse(word)
	if len(parses) == 0 {
		return result
	}

	best := parses[0]
	if best.Lemma != "" {
		result.NormalForm = best.Lemma
	}
	result.POS = POSLabel(best.POS)
	if labels := MapGrammemes(best.Grammemes); len(labels) > 0 {
		result.Grammemes = strings.Join(labels, ", ")
	}
	return result
}
