package domain

// Label is the qualitative bucket derived from the mean characteristic value.
type Label string

const (
	LabelLow      Label = "Low Utopia"
	LabelModerate Label = "Moderate Utopia"
	LabelHigh     Label = "High Utopia"
)

// Band thresholds. Each band is closed on its lower side.
const (
	HighThreshold     = 7.0
	ModerateThreshold = 4.0
)

// ScoreResult is the aggregate score of a CharacteristicSet.
type ScoreResult struct {
	Average float64 `json:"average"`
	Label   Label   `json:"label"`
}

// Score averages every characteristic and classifies the result.
func Score(set CharacteristicSet) ScoreResult {
	// A CharacteristicSet always carries CharacteristicCount values, so Mean cannot fail here.
	avg, _ := Mean(set.values[:])
	return ScoreResult{Average: avg, Label: Classify(avg)}
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyCharacteristics
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Classify maps an average onto a Label.
func Classify(average float64) Label {
	switch {
	case average >= HighThreshold:
		return LabelHigh
	case average >= ModerateThreshold:
		return LabelModerate
	default:
		return LabelLow
	}
}
