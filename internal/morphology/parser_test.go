package morphology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise the real gomorphy dictionary. They stick to common
// words with stable paradigms.

func newRealParser(t *testing.T) *GomorphyParser {
	t.Helper()
	p, err := NewGomorphyParser()
	require.NoError(t, err, "embedded dictionary must load")
	return p
}

func TestGomorphyParser_Parse(t *testing.T) {
	p := newRealParser(t)

	parses := p.Parse("кошку")
	require.NotEmpty(t, parses)
	assert.Equal(t, "кошка", parses[0].Lemma)
	assert.Equal(t, "NOUN", parses[0].POS)
	assert.Contains(t, parses[0].Grammemes, "femn")

	assert.Empty(t, p.Parse("qwerty123"), "non-Cyrillic token is unknown")
	assert.Empty(t, p.Parse(""), "empty input yields no parses")
}

func TestGomorphyParser_Parse_CaseInsensitive(t *testing.T) {
	p := newRealParser(t)

	lower := p.Parse("стол")
	upper := p.Parse("СТОЛ")
	require.NotEmpty(t, lower)
	require.NotEmpty(t, upper)
	assert.Equal(t, lower[0].Lemma, upper[0].Lemma)
}

func TestGomorphyParser_Inflect(t *testing.T) {
	p := newRealParser(t)

	form, ok := p.Inflect("стол", "nomn")
	require.True(t, ok)
	assert.Equal(t, "стол", form)

	form, ok = p.Inflect("стол", "gent")
	require.True(t, ok)
	assert.Contains(t, []string{"стола", "столов"}, form)

	// Inanimate accusative falls back to the nominative form.
	form, ok = p.Inflect("стол", "accs")
	require.True(t, ok)
	assert.Contains(t, []string{"стол", "столы"}, form)

	_, ok = p.Inflect("ыыыыыыы", "gent")
	assert.False(t, ok, "unknown lemma has no forms")
}

func TestVariations_RoundTripThroughParser(t *testing.T) {
	p := newRealParser(t)
	i := NewInflector(p)

	got := i.Variations("кошка")
	require.Len(t, got, 6)
	require.NotEmpty(t, got["nomn"])
	assert.Equal(t, "кошка", got["nomn"][0])

	defined := 0
	for caseTag, forms := range got {
		for _, form := range forms {
			defined++
			parses := p.Parse(form)
			require.NotEmpty(t, parses, "form %q (case %s) must re-parse", form, caseTag)
			assert.Equal(t, "кошка", parses[0].Lemma,
				"form %q (case %s) must lemmatize back", form, caseTag)
		}
	}
	assert.GreaterOrEqual(t, defined, 4, "most cases of a regular noun are defined")
}
