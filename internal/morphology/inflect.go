package morphology

// CaseTags lists the six covered grammatical cases in their traditional
// textbook order.
var CaseTags = []string{"nomn", "gent", "datv", "accs", "ablt", "loct"}

// CaseNames maps case tags to the Russian case names used in reports.
var CaseNames = map[string]string{
	"nomn": "Именительный",
	"gent": "Родительный",
	"datv": "Дательный",
	"accs": "Винительный",
	"ablt": "Творительный",
	"loct": "Предложный",
}

// Inflector generates case forms of a word's lemma.
type Inflector struct {
	parser Parser
}

func NewInflector(p Parser) *Inflector {
	return &Inflector{parser: p}
}

// Variations returns the surface forms of the word's lemma for every case
// tag in CaseTags. A case the lemma does not decline into maps to an empty
// slice; that is a normal outcome, not an error.
//
// Only one form per case is produced, in whichever grammatical number the
// lemma's own base parse carries.
func (i *Inflector) Variations(word string) map[string][]string {
	lemma := word
	if parses := i.parser.Parse(word); len(parses) > 0 && parses[0].Lemma != "" {
		lemma = parses[0].Lemma
	}

	out := make(map[string][]string, len(CaseTags))
	for _, caseTag := range CaseTags {
		out[caseTag] = []string{}
		if form, ok := i.parser.Inflect(lemma, caseTag); ok {
			out[caseTag] = append(out[caseTag], form)
		}
	}
	return out
}
