package prompt

import (
	"fmt"
	"strings"

	"alltopia/internal/domain"
)

// Locale selects the language of generated prompts.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleSpanish Locale = "es"

	DefaultLocale = LocaleEnglish
)

// ParseLocale accepts "en", "es" and region-qualified tags such as "es-AR".
// An empty string yields DefaultLocale.
func ParseLocale(tag string) (Locale, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return DefaultLocale, nil
	}
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	switch Locale(tag) {
	case LocaleEnglish, LocaleSpanish:
		return Locale(tag), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, tag)
}

// phrases holds every locale-dependent string of the assembler.
type phrases struct {
	names [domain.CharacteristicCount]string
	// labels translates the score label for the summary line.
	labels map[domain.Label]string

	analysisIntro       string
	analysisSummary     string // average, label
	analysisInstruction string // paragraph count

	comparisonIntro       string
	comparisonInstruction string // paragraph count

	imageIntro   string
	imageClosing string
}

var localePhrases = map[Locale]phrases{
	LocaleEnglish: {
		names:  displayNames(),
		labels: map[domain.Label]string{
			domain.LabelLow:      "Low Utopia",
			domain.LabelModerate: "Moderate Utopia",
			domain.LabelHigh:     "High Utopia",
		},
		analysisIntro:   "Analyze the utopian society with the following characteristics, each rated on a scale from 0 to 10:",
		analysisSummary: "Average of values: %s (%s).",
		analysisInstruction: "Write the analysis in exactly %d paragraphs separated by a blank line. " +
			"Begin every paragraph with a short subtitle followed by a colon and a space, in the form \"Subtitle: text\". " +
			"Do not use lists, headings or any other formatting.",
		comparisonIntro: "Compare the utopian society with the following characteristics, each rated on a scale from 0 to 10, with real-world societies:",
		comparisonInstruction: "Write exactly %d paragraphs separated by a blank line. " +
			"The first paragraph describes the strengths of this society compared with existing countries, the second describes its main risks. " +
			"Begin every paragraph with a short subtitle followed by a colon and a space, in the form \"Subtitle: text\".",
		imageIntro: "Create an image representing a utopian society with",
		imageClosing: "The image should be vibrant and detailed, showcasing various aspects of this utopian society. " +
			"Use a style that combines realism with elements of fantasy to capture the idealized nature of the society.",
	},
	LocaleSpanish: {
		names: [domain.CharacteristicCount]string{
			"Igualdad Social",
			"Justicia y Equidad",
			"Bienestar General",
			"Paz y Armonía",
			"Sostenibilidad",
			"Libertad",
			"Tecnología e Innovación",
			"Gobernanza Participativa",
			"Comunidad y Solidaridad",
			"Felicidad y Realización Personal",
		},
		labels: map[domain.Label]string{
			domain.LabelLow:      "Utopía Baja",
			domain.LabelModerate: "Utopía Moderada",
			domain.LabelHigh:     "Utopía Alta",
		},
		analysisIntro:   "Analiza la sociedad utópica con las siguientes características, cada una valorada en una escala de 0 a 10:",
		analysisSummary: "Promedio de valores: %s (%s).",
		analysisInstruction: "Escribe el análisis en exactamente %d párrafos separados por una línea en blanco. " +
			"Comienza cada párrafo con un subtítulo breve seguido de dos puntos y un espacio, con la forma \"Subtítulo: texto\". " +
			"No uses listas, encabezados ni ningún otro formato.",
		comparisonIntro: "Compara la sociedad utópica con las siguientes características, cada una valorada en una escala de 0 a 10, con sociedades del mundo real:",
		comparisonInstruction: "Escribe exactamente %d párrafos separados por una línea en blanco. " +
			"El primer párrafo describe las fortalezas de esta sociedad frente a los países existentes, el segundo describe sus principales riesgos. " +
			"Comienza cada párrafo con un subtítulo breve seguido de dos puntos y un espacio, con la forma \"Subtítulo: texto\".",
		imageIntro: "Crea una imagen que represente una sociedad utópica con",
		imageClosing: "La imagen debe ser vibrante y detallada, mostrando distintos aspectos de esta sociedad utópica. " +
			"Usa un estilo que combine realismo con elementos de fantasía para capturar la naturaleza idealizada de la sociedad.",
	},
}

// displayNames returns the canonical names, which double as the English ones.
func displayNames() [domain.CharacteristicCount]string {
	var names [domain.CharacteristicCount]string
	for _, c := range domain.Characteristics() {
		names[c] = c.String()
	}
	return names
}

// Name returns the localized display name of c.
func Name(c domain.Characteristic, locale Locale) string {
	p, ok := localePhrases[locale]
	if !ok {
		p = localePhrases[DefaultLocale]
	}
	return p.names[c]
}
