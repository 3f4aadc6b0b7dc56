package morphology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariations_AllCasesDefined(t *testing.T) {
	p := &fakeParser{
		parses: map[string][]Parse{
			"книгу": {{Lemma: "книга", POS: "NOUN", Grammemes: []string{"NOUN", "inan", "femn", "sing", "accs"}}},
		},
		inflect: map[string]map[string]string{
			"книга": {
				"nomn": "книга", "gent": "книги", "datv": "книге",
				"accs": "книгу", "ablt": "книгой", "loct": "книге",
			},
		},
	}
	i := NewInflector(p)

	got := i.Variations("книгу")
	require.Len(t, got, 6)
	assert.Equal(t, []string{"книга"}, got["nomn"])
	assert.Equal(t, []string{"книги"}, got["gent"])
	assert.Equal(t, []string{"книге"}, got["datv"])
	assert.Equal(t, []string{"книгу"}, got["accs"])
	assert.Equal(t, []string{"книгой"}, got["ablt"])
	assert.Equal(t, []string{"книге"}, got["loct"])
}

func TestVariations_UndefinedCaseIsEmptyNotMissing(t *testing.T) {
	// Indeclinable noun: only the nominative exists.
	p := &fakeParser{
		parses: map[string][]Parse{
			"кофе": {{Lemma: "кофе", POS: "NOUN", Grammemes: []string{"NOUN", "inan", "masc", "Fixd"}}},
		},
		inflect: map[string]map[string]string{
			"кофе": {"nomn": "кофе"},
		},
	}
	i := NewInflector(p)

	got := i.Variations("кофе")
	require.Len(t, got, 6)
	assert.Equal(t, []string{"кофе"}, got["nomn"])
	for _, caseTag := range []string{"gent", "datv", "accs", "ablt", "loct"} {
		forms, ok := got[caseTag]
		require.True(t, ok, "case %s must be present", caseTag)
		assert.Empty(t, forms, "case %s must be empty", caseTag)
	}
}

func TestVariations_UnknownWordUsesTokenAsLemma(t *testing.T) {
	i := NewInflector(&fakeParser{})

	got := i.Variations("бурзучий")
	require.Len(t, got, 6)
	for _, forms := range got {
		assert.Empty(t, forms)
	}
}
