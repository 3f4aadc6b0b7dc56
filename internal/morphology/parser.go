package morphology

import (
	"strings"

	morph "github.com/jus1d/gomorphy"
)

// Parse is a single candidate reading of a token: its dictionary base form,
// part of speech, and the full grammeme set of the parsed form.
type Parse struct {
	Lemma     string
	POS       string
	Grammemes []string
}

// Parser is the morphological oracle contract. Implementations return
// candidate parses in descending confidence order; only the first one is
// used by the analyzer.
type Parser interface {
	// Parse returns candidate parses for a single token, best first.
	// An empty result means the token is unknown to the dictionary.
	Parse(word string) []Parse

	// Inflect produces the surface form of lemma in the given grammatical
	// case (OpenCorpora case tag, e.g. "gent"). The second return value is
	// false when no such form exists for the lemma.
	Inflect(lemma, caseTag string) (string, bool)
}

// GomorphyParser adapts the gomorphy analyzer to the Parser contract.
// The underlying analyzer is loaded once and is safe for concurrent reads.
type GomorphyParser struct {
	a *morph.Analyzer
}

// NewGomorphyParser loads the shared gomorphy dictionary. The only possible
// failure is total dictionary unavailability, which callers should treat as
// fatal.
func NewGomorphyParser() (*GomorphyParser, error) {
	a, err := morph.Default()
	if err != nil {
		return nil, err
	}
	return &GomorphyParser{a: a}, nil
}

// Parse returns the best dictionary reading of word. gomorphy already ranks
// homonyms internally, so a single parse is reported.
func (p *GomorphyParser) Parse(word string) []Parse {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return nil
	}

	tag := p.a.Tag(w)
	if tag == "" {
		return nil
	}

	lemma := w
	// WordForms emits the paradigm in dictionary order, so the first form
	// is the normal form.
	if forms := p.a.WordForms(w); len(forms) > 0 {
		lemma = forms[0]
	}

	grammemes := splitTag(tag)
	pos := ""
	if len(grammemes) > 0 {
		pos = grammemes[0]
	}

	return []Parse{{Lemma: lemma, POS: pos, Grammemes: grammemes}}
}

// Inflect declines lemma into the requested case, keeping the number of the
// lemma's own base parse where possible. Returns false for cases the lemma
// does not decline into (indeclinable nouns and the like).
func (p *GomorphyParser) Inflect(lemma, caseTag string) (string, bool) {
	lemma = strings.ToLower(strings.TrimSpace(lemma))
	if lemma == "" {
		return "", false
	}

	base := splitTag(p.a.Tag(lemma))
	number := tagNumber(base)
	forms := p.a.WordForms(lemma)

	if f, ok := p.findForm(forms, caseTag, number); ok {
		return f, true
	}

	// Accusative syncretism: for inanimates the accusative coincides with
	// the nominative, for animates with the genitive, so the accusative
	// reading may never surface as a form's first tag.
	if caseTag == "accs" {
		effective := ""
		switch {
		case hasGrammeme(base, "inan"):
			effective = "nomn"
		case hasGrammeme(base, "anim"):
			effective = "gent"
		}
		if effective != "" {
			if f, ok := p.findForm(forms, effective, number); ok {
				return f, true
			}
		}
	}

	// No form in the base number; settle for any form in the target case.
	if f, ok := p.findForm(forms, caseTag, ""); ok {
		return f, true
	}
	return "", false
}

// findForm scans candidate forms for one whose tag carries the given case,
// and, when number is non-empty, that number too.
func (p *GomorphyParser) findForm(forms []string, caseTag, number string) (string, bool) {
	for _, f := range forms {
		t := splitTag(p.a.Tag(f))
		if hasGrammeme(t, caseTag) && (number == "" || hasGrammeme(t, number)) {
			return f, true
		}
	}
	return "", false
}

// splitTag breaks an OpenCorpora tag string such as
// "NOUN,inan,femn sing,nomn" into individual grammemes.
func splitTag(tag string) []string {
	if tag == "" {
		return nil
	}
	return strings.FieldsFunc(tag, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

func tagNumber(grammemes []string) string {
	switch {
	case hasGrammeme(grammemes, "sing"):
		return "sing"
	case hasGrammeme(grammemes, "plur"):
		return "plur"
	}
	return ""
}

func hasGrammeme(grammemes []string, g string) bool {
	for _, x := range grammemes {
		if x == g {
			return true
		}
	}
	return false
}
