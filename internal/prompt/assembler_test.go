package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"alltopia/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, m map[string]float64) domain.CharacteristicSet {
	t.Helper()
	set, err := domain.SetFromMap(m)
	require.NoError(t, err)
	return set
}

func TestBuildAnalysisPrompt(t *testing.T) {
	set := mustSet(t, map[string]float64{"Freedom": 7.25, "Sustainability": 10, "Peace and Harmony": 5.25})

	got := BuildAnalysisPrompt(set, LocaleEnglish)

	for _, c := range domain.Characteristics() {
		assert.Contains(t, got, "- "+c.String()+": ")
	}
	assert.Contains(t, got, "- Freedom: 7.25\n")
	assert.Contains(t, got, "- Sustainability: 10.0\n")
	assert.Contains(t, got, "- Social Equality: 5.0\n")
	assert.Contains(t, got, "Average of values: 5.75 (Moderate Utopia).")
	assert.Contains(t, got, "exactly 5 paragraphs")
	assert.Contains(t, got, `"Subtitle: text"`)
}

func TestBuildAnalysisPrompt_IsPure(t *testing.T) {
	set := mustSet(t, map[string]float64{"Freedom": 2.5, "Sustainability": 9})
	before := set.Values()

	first := BuildAnalysisPrompt(set, LocaleEnglish)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildAnalysisPrompt(set, LocaleEnglish))
	}
	assert.Equal(t, before, set.Values())
	assert.Equal(t, first, NewAssembler().BuildAnalysisPrompt(set, LocaleEnglish))
}

func TestBuildAnalysisPrompt_Spanish(t *testing.T) {
	set, err := domain.UniformSet(8)
	require.NoError(t, err)

	got := BuildAnalysisPrompt(set, LocaleSpanish)
	assert.Contains(t, got, "- Igualdad Social: 8.0\n")
	assert.Contains(t, got, "(Utopía Alta)")
	assert.Contains(t, got, "exactamente 5 párrafos")
}

func TestBuildComparisonPrompt(t *testing.T) {
	got := BuildComparisonPrompt(domain.DefaultSet(), LocaleEnglish)
	assert.Contains(t, got, "real-world societies")
	assert.Contains(t, got, "exactly 2 paragraphs")
	assert.Contains(t, got, "- Happiness and Personal Fulfillment: 5.0\n")
}

func TestBuildImagePrompt_TopThreeInValueOrder(t *testing.T) {
	set := mustSet(t, map[string]float64{
		"Technology and Innovation": 9,
		"Sustainability":            10,
		"Freedom":                   8,
		"Social Equality":           7.9,
	})

	got := BuildImagePrompt(set, LocaleEnglish)
	frags := DefaultFragments(LocaleEnglish)

	assert.True(t, strings.HasPrefix(got, "Create an image representing a utopian society with "))
	iSus := strings.Index(got, frags[domain.Sustainability])
	iTech := strings.Index(got, frags[domain.TechnologyAndInnovation])
	iFree := strings.Index(got, strings.TrimSuffix(frags[domain.Freedom], ","))
	require.True(t, iSus > 0 && iTech > 0 && iFree > 0, got)
	assert.Less(t, iSus, iTech)
	assert.Less(t, iTech, iFree)
	assert.NotContains(t, got, frags[domain.SocialEquality])
	assert.Contains(t, got, "wide horizons. The image should be vibrant")
}

func TestBuildImagePrompt_TiesKeepEnumerationOrder(t *testing.T) {
	got := BuildImagePrompt(domain.DefaultSet(), LocaleEnglish)
	frags := DefaultFragments(LocaleEnglish)

	iFirst := strings.Index(got, frags[domain.SocialEquality])
	iSecond := strings.Index(got, frags[domain.JusticeAndEquity])
	iThird := strings.Index(got, strings.TrimSuffix(frags[domain.GeneralWellBeing], ","))
	require.True(t, iFirst > 0 && iSecond > 0 && iThird > 0, got)
	assert.Less(t, iFirst, iSecond)
	assert.Less(t, iSecond, iThird)
	assert.NotContains(t, got, frags[domain.PeaceAndHarmony])
}

func TestBuildImagePrompt_IsDeterministic(t *testing.T) {
	set := mustSet(t, map[string]float64{"Freedom": 3, "Community and Solidarity": 6})
	assert.Equal(t, BuildImagePrompt(set, LocaleEnglish), BuildImagePrompt(set, LocaleEnglish))
}

func TestBuildImagePrompt_CappedAtMaxLength(t *testing.T) {
	long := FragmentTable{}
	for _, c := range domain.Characteristics() {
		long[c] = strings.Repeat("ñandú ", 100) + ","
	}
	a := NewAssembler(WithFragments(LocaleEnglish, long))

	got := a.BuildImagePrompt(domain.DefaultSet(), LocaleEnglish)
	assert.Equal(t, MaxImagePromptLength, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
}

func TestBuildImagePrompt_MissingFragmentContributesNothing(t *testing.T) {
	a := NewAssembler(WithFragments(LocaleEnglish, FragmentTable{}))

	got := a.BuildImagePrompt(domain.DefaultSet(), LocaleEnglish)
	assert.Equal(t, "Create an image representing a utopian society with. The image should be vibrant and detailed, "+
		"showcasing various aspects of this utopian society. "+
		"Use a style that combines realism with elements of fantasy to capture the idealized nature of the society.", got)
}

func TestBuildImagePrompt_CustomLimit(t *testing.T) {
	a := NewAssembler(WithMaxImageLength(20))
	assert.Equal(t, "Create an image repr", a.BuildImagePrompt(domain.DefaultSet(), LocaleEnglish))
}

func TestBuildImagePrompt_Spanish(t *testing.T) {
	set := mustSet(t, map[string]float64{"Peace and Harmony": 10})
	got := BuildImagePrompt(set, LocaleSpanish)
	assert.True(t, strings.HasPrefix(got, "Crea una imagen que represente una sociedad utópica con jardines tranquilos"))
}

func TestTopCharacteristics(t *testing.T) {
	set := mustSet(t, map[string]float64{"Freedom": 9})

	top := TopCharacteristics(set, 3)
	require.Len(t, top, 3)
	assert.Equal(t, domain.Freedom, top[0].Characteristic)
	assert.Equal(t, domain.SocialEquality, top[1].Characteristic)
	assert.Equal(t, domain.JusticeAndEquity, top[2].Characteristic)

	assert.Len(t, TopCharacteristics(set, 50), domain.CharacteristicCount)
	assert.Empty(t, TopCharacteristics(set, -1))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "añ", Truncate("año", 2))
	assert.Equal(t, "", Truncate("abc", -1))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "5.0", formatValue(5))
	assert.Equal(t, "0.0", formatValue(0))
	assert.Equal(t, "7.25", formatValue(7.25))
	assert.Equal(t, "3.3", formatValue(3.3))
}

func TestParseLocale(t *testing.T) {
	tests := map[string]Locale{
		"":      LocaleEnglish,
		"en":    LocaleEnglish,
		"ES":    LocaleSpanish,
		"es-AR": LocaleSpanish,
		"en_GB": LocaleEnglish,
	}
	for tag, want := range tests {
		got, err := ParseLocale(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, want, got, tag)
	}

	_, err := ParseLocale("de")
	assert.ErrorIs(t, err, domain.ErrUnsupportedLocale)
}

func TestName_EnglishMatchesCanonicalNames(t *testing.T) {
	for _, c := range domain.Characteristics() {
		assert.Equal(t, c.String(), Name(c, LocaleEnglish))
		assert.NotEmpty(t, Name(c, LocaleSpanish))
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "Libertad", Name(domain.Freedom, LocaleSpanish))
	assert.Equal(t, "Freedom", Name(domain.Freedom, Locale("fr")))
}
