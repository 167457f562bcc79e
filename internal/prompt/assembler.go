package prompt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"alltopia/internal/domain"
)

const (
	// AnalysisParagraphs is the paragraph count requested for an analysis.
	AnalysisParagraphs = 5
	// ComparisonParagraphs is the paragraph count requested for a comparison.
	ComparisonParagraphs = 2
	// ImageTopN is how many characteristics feed the image prompt.
	ImageTopN = 3
	// MaxImagePromptLength is measured in characters (runes).
	MaxImagePromptLength = 1000
)

// Assembler turns a CharacteristicSet into prompts for the AI collaborators.
// The zero value is not usable; use NewAssembler.
type Assembler struct {
	fragments      map[Locale]FragmentTable
	topN           int
	maxImageLength int
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithFragments replaces the fragment table of one locale.
func WithFragments(locale Locale, table FragmentTable) Option {
	return func(a *Assembler) {
		a.fragments[locale] = table
	}
}

// WithMaxImageLength overrides MaxImagePromptLength.
func WithMaxImageLength(n int) Option {
	return func(a *Assembler) {
		if n > 0 {
			a.maxImageLength = n
		}
	}
}

// NewAssembler returns an Assembler with the built-in fragment tables.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		fragments: map[Locale]FragmentTable{
			LocaleEnglish: DefaultFragments(LocaleEnglish),
			LocaleSpanish: DefaultFragments(LocaleSpanish),
		},
		topN:           ImageTopN,
		maxImageLength: MaxImagePromptLength,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAssembler = NewAssembler()

// BuildAnalysisPrompt uses the default Assembler.
func BuildAnalysisPrompt(set domain.CharacteristicSet, locale Locale) string {
	return defaultAssembler.BuildAnalysisPrompt(set, locale)
}

// BuildComparisonPrompt uses the default Assembler.
func BuildComparisonPrompt(set domain.CharacteristicSet, locale Locale) string {
	return defaultAssembler.BuildComparisonPrompt(set, locale)
}

// BuildImagePrompt uses the default Assembler.
func BuildImagePrompt(set domain.CharacteristicSet, locale Locale) string {
	return defaultAssembler.BuildImagePrompt(set, locale)
}

// BuildAnalysisPrompt asks for AnalysisParagraphs paragraphs in "Subtitle: text" form,
// listing every characteristic with its value.
func (a *Assembler) BuildAnalysisPrompt(set domain.CharacteristicSet, locale Locale) string {
	p := phrasesFor(locale)
	score := domain.Score(set)

	var sb strings.Builder
	sb.WriteString(p.analysisIntro)
	sb.WriteString("\n")
	writeValues(&sb, set, p)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(p.analysisSummary, strconv.FormatFloat(score.Average, 'f', 2, 64), p.labels[score.Label]))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf(p.analysisInstruction, AnalysisParagraphs))
	return sb.String()
}

// BuildComparisonPrompt asks for ComparisonParagraphs paragraphs comparing the society
// with real-world ones.
func (a *Assembler) BuildComparisonPrompt(set domain.CharacteristicSet, locale Locale) string {
	p := phrasesFor(locale)

	var sb strings.Builder
	sb.WriteString(p.comparisonIntro)
	sb.WriteString("\n")
	writeValues(&sb, set, p)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(p.comparisonInstruction, ComparisonParagraphs))
	return sb.String()
}

// BuildImagePrompt describes the top characteristics through the fragment table,
// then appends the closing instruction. The result never exceeds the configured
// maximum length in runes; it is cut without re-balancing words.
func (a *Assembler) BuildImagePrompt(set domain.CharacteristicSet, locale Locale) string {
	p := phrasesFor(locale)
	table, ok := a.fragments[locale]
	if !ok {
		table = a.fragments[DefaultLocale]
	}

	var parts []string
	for _, e := range TopCharacteristics(set, a.topN) {
		if frag, ok := table[e.Characteristic]; ok && frag != "" {
			parts = append(parts, frag)
		}
	}

	var sb strings.Builder
	sb.WriteString(p.imageIntro)
	if len(parts) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.TrimSuffix(strings.Join(parts, " "), ","))
	}
	sb.WriteString(". ")
	sb.WriteString(p.imageClosing)

	return Truncate(sb.String(), a.maxImageLength)
}

// TopCharacteristics returns the n highest-valued entries in descending order.
// Ties keep enumeration order.
func TopCharacteristics(set domain.CharacteristicSet, n int) []domain.Entry {
	entries := set.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}

// Truncate cuts s to at most limit runes.
func Truncate(s string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func phrasesFor(locale Locale) phrases {
	if p, ok := localePhrases[locale]; ok {
		return p
	}
	return localePhrases[DefaultLocale]
}

func writeValues(sb *strings.Builder, set domain.CharacteristicSet, p phrases) {
	for _, e := range set.Entries() {
		sb.WriteString("- ")
		sb.WriteString(p.names[e.Characteristic])
		sb.WriteString(": ")
		sb.WriteString(formatValue(e.Value))
		sb.WriteString("\n")
	}
}

// formatValue keeps at least one decimal so that 5 renders as "5.0".
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
