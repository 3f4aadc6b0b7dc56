// Package morphology implements morphological analysis of Russian words:
// part-of-speech classification, grammeme labelling, and case inflection.
// Parsing itself is delegated to a pluggable Parser oracle; the default
// implementation is backed by the gomorphy embedded dictionaries.
package morphology

import "sort"

// DefaultPOSLabel is used when the parser yields no part of speech at all
// (punctuation, unknown tokens).
const DefaultPOSLabel = "существительное"

// NotAvailable is displayed when a parse carries no grammemes.
const NotAvailable = "н/д"

// posLabels maps OpenCorpora part-of-speech tags to full Russian category
// names shown in analysis reports.
var posLabels = map[string]string{
	"NOUN": "существительное",
	"ADJF": "прилагательное",
	"ADJS": "прилагательное",
	"COMP": "комп",
	"VERB": "глагол",
	"INFN": "инфинитив",
	"PRTF": "причастие",
	"PRTS": "причастие",
	"GRND": "деепричастие",
	"NUMR": "число",
	"ADVB": "наречие",
	"NPRO": "местоимение",
	"PRED": "предк",
	"PREP": "предлог",
	"CONJ": "союз",
	"PART": "часть",
	"INTJ": "междометие",
}

// grammemeLabels maps individual OpenCorpora grammemes (including the POS
// grammeme itself) to short display labels. Animacy, gender, number, and
// case are covered; anything else passes through verbatim.
var grammemeLabels = map[string]string{
	"NOUN": "СУЩ",
	"ADJF": "ПРИЛ",
	"ADJS": "ПРИЛ",
	"COMP": "КОМП",
	"VERB": "ГЛАГ",
	"INFN": "ИНФИНИТИВ",
	"PRTF": "ПРИЧАСТИЕ",
	"PRTS": "ПРИЧАСТИЕ",
	"GRND": "ДЕЕПРИЧАСТИЕ",
	"NUMR": "ЧИСЛ",
	"ADVB": "НАРЕЧ",
	"NPRO": "МЕСТ",
	"PRED": "ПРЕДК",
	"PREP": "ПРЕДЛ",
	"CONJ": "СОЮЗ",
	"PART": "ЧАСТ",
	"INTJ": "МЕЖД",
	"inan": "НЕОДУШ",
	"anim": "ОДУШ",
	"femn": "ЖЕН",
	"masc": "МУЖ",
	"neut": "СР",
	"sing": "ЕД",
	"plur": "МН",
	"nomn": "ИМ",
	"gent": "РОД",
	"datv": "ДАТ",
	"accs": "ВИН",
	"ablt": "ТВОР",
	"loct": "ПРЕДЛ",
}

// POSLabel returns the Russian category name for an OpenCorpora
// part-of-speech tag. Unmapped tags are returned unchanged; an empty tag
// yields DefaultPOSLabel.
func POSLabel(tag string) string {
	if tag == "" {
		return DefaultPOSLabel
	}
	if label, ok := posLabels[tag]; ok {
		return label
	}
	return tag
}

// GrammemeLabel returns the short display label for a single grammeme.
// Unmapped grammemes are returned unchanged, never dropped.
func GrammemeLabel(tag string) string {
	if label, ok := grammemeLabels[tag]; ok {
		return label
	}
	return tag
}

// MapGrammemes renders a grammeme set into display labels. The input is
// sorted lexicographically on the underlying tags first, so the output is
// reproducible regardless of the order the parser reports them in.
func MapGrammemes(grammemes []string) []string {
	sorted := make([]string, len(grammemes))
	copy(sorted, grammemes)
	sort.Strings(sorted)

	labels := make([]string, len(sorted))
	for i, g := range sorted {
		labels[i] = GrammemeLabel(g)
	}
	return labels
}
