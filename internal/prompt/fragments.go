package prompt

import "alltopia/internal/domain"

// FragmentTable maps a characteristic onto the visual phrase used in image prompts.
// Characteristics without an entry contribute nothing.
type FragmentTable map[domain.Characteristic]string

// DefaultFragments returns the built-in table for locale, falling back to English.
func DefaultFragments(locale Locale) FragmentTable {
	t, ok := defaultFragments[locale]
	if !ok {
		t = defaultFragments[DefaultLocale]
	}
	out := make(FragmentTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

var defaultFragments = map[Locale]FragmentTable{
	LocaleEnglish: {
		domain.SocialEquality:          "diverse people sharing public spaces as equals,",
		domain.JusticeAndEquity:        "open courthouses and balanced scales in sunlit plazas,",
		domain.GeneralWellBeing:        "healthy people in parks, clinics and open-air markets,",
		domain.PeaceAndHarmony:         "calm gardens, doves and people meditating by quiet water,",
		domain.Sustainability:          "green buildings covered in plants, solar panels,",
		domain.Freedom:                 "people traveling freely, open borders, birds flying over wide horizons,",
		domain.TechnologyAndInnovation: "futuristic architecture, clean flying vehicles and helpful robots,",
		domain.ParticipatoryGovernance: "citizens gathered in a circular assembly voting together,",
		domain.CommunityAndSolidarity:  "neighbors building, cooking and sharing food together,",
		domain.HappinessAndFulfillment: "smiling people painting, dancing and playing music,",
	},
	LocaleSpanish: {
		domain.SocialEquality:          "personas diversas compartiendo espacios públicos como iguales,",
		domain.JusticeAndEquity:        "tribunales abiertos y balanzas equilibradas en plazas soleadas,",
		domain.GeneralWellBeing:        "personas sanas en parques, clínicas y mercados al aire libre,",
		domain.PeaceAndHarmony:         "jardines tranquilos, palomas y personas meditando junto al agua,",
		domain.Sustainability:          "edificios verdes cubiertos de plantas, paneles solares,",
		domain.Freedom:                 "personas viajando libremente, fronteras abiertas, aves sobre amplios horizontes,",
		domain.TechnologyAndInnovation: "arquitectura futurista, vehículos voladores limpios y robots serviciales,",
		domain.ParticipatoryGovernance: "ciudadanos reunidos en una asamblea circular votando juntos,",
		domain.CommunityAndSolidarity:  "vecinos construyendo, cocinando y compartiendo comida,",
		domain.HappinessAndFulfillment: "personas sonrientes pintando, bailando y tocando música,",
	},
}
