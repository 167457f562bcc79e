package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_UniformSets(t *testing.T) {
	tests := []struct {
		value float64
		label Label
	}{
		{0, LabelLow},
		{3.999, LabelLow},
		{4, LabelModerate},
		{5, LabelModerate},
		{6.999, LabelModerate},
		{7, LabelHigh},
		{10, LabelHigh},
	}
	for _, tt := range tests {
		set, err := UniformSet(tt.value)
		require.NoError(t, err)

		result := Score(set)
		assert.InDelta(t, tt.value, result.Average, 1e-9, "value %v", tt.value)
		assert.Equal(t, tt.label, result.Label, "value %v", tt.value)
	}
}

func TestScore_DefaultSetIsModerate(t *testing.T) {
	result := Score(DefaultSet())
	assert.Equal(t, 5.0, result.Average)
	assert.Equal(t, LabelModerate, result.Label)
}

func TestScore_MixedValues(t *testing.T) {
	set, err := NewCharacteristicSet([CharacteristicCount]float64{10, 10, 10, 10, 10, 4, 4, 4, 4, 4})
	require.NoError(t, err)

	result := Score(set)
	assert.InDelta(t, 7.0, result.Average, 1e-9)
	assert.Equal(t, LabelHigh, result.Label)
}

func TestClassify_Boundaries(t *testing.T) {
	assert.Equal(t, LabelHigh, Classify(HighThreshold))
	assert.Equal(t, LabelModerate, Classify(math.Nextafter(HighThreshold, 0)))
	assert.Equal(t, LabelModerate, Classify(ModerateThreshold))
	assert.Equal(t, LabelLow, Classify(math.Nextafter(ModerateThreshold, 0)))
}

func TestMean(t *testing.T) {
	_, err := Mean(nil)
	assert.ErrorIs(t, err, ErrEmptyCharacteristics)

	avg, err := Mean([]float64{1, 2, 3, 6})
	require.NoError(t, err)
	assert.Equal(t, 3.0, avg)
}
