package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Characteristic is one of the fixed dimensions of a hypothetical society.
type Characteristic int

const (
	SocialEquality Characteristic = iota
	JusticeAndEquity
	GeneralWellBeing
	PeaceAndHarmony
	Sustainability
	Freedom
	TechnologyAndInnovation
	ParticipatoryGovernance
	CommunityAndSolidarity
	HappinessAndFulfillment

	// CharacteristicCount is the size of the enumeration.
	CharacteristicCount = int(HappinessAndFulfillment) + 1
)

// Slider bounds and default for every characteristic.
const (
	MinValue     = 0.0
	MaxValue     = 10.0
	DefaultValue = 5.0
)

var characteristicNames = [CharacteristicCount]string{
	SocialEquality:          "Social Equality",
	JusticeAndEquity:        "Justice and Equity",
	GeneralWellBeing:        "General Well-being",
	PeaceAndHarmony:         "Peace and Harmony",
	Sustainability:          "Sustainability",
	Freedom:                 "Freedom",
	TechnologyAndInnovation: "Technology and Innovation",
	ParticipatoryGovernance: "Participatory Governance",
	CommunityAndSolidarity:  "Community and Solidarity",
	HappinessAndFulfillment: "Happiness and Personal Fulfillment",
}

// String returns the display name used in prompts and API payloads.
func (c Characteristic) String() string {
	if c < 0 || int(c) >= CharacteristicCount {
		return fmt.Sprintf("Characteristic(%d)", int(c))
	}
	return characteristicNames[c]
}

// Characteristics returns all characteristics in enumeration order.
func Characteristics() []Characteristic {
	all := make([]Characteristic, CharacteristicCount)
	for i := range all {
		all[i] = Characteristic(i)
	}
	return all
}

// ParseCharacteristic resolves a display name (case-insensitive, surrounding spaces ignored).
func ParseCharacteristic(name string) (Characteristic, error) {
	needle := strings.TrimSpace(name)
	for i, n := range characteristicNames {
		if strings.EqualFold(n, needle) {
			return Characteristic(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown characteristic %q", ErrInvalidInput, name)
}

// CharacteristicSet holds one value per characteristic. It is a value type:
// copies are independent and nothing in this module mutates a set after construction.
type CharacteristicSet struct {
	values [CharacteristicCount]float64
}

// DefaultSet returns a set with every characteristic at DefaultValue.
func DefaultSet() CharacteristicSet {
	var s CharacteristicSet
	for i := range s.values {
		s.values[i] = DefaultValue
	}
	return s
}

// UniformSet returns a set with every characteristic at v.
func UniformSet(v float64) (CharacteristicSet, error) {
	if err := validateValue(v); err != nil {
		return CharacteristicSet{}, err
	}
	var s CharacteristicSet
	for i := range s.values {
		s.values[i] = v
	}
	return s, nil
}

// NewCharacteristicSet builds a set from values given in enumeration order.
func NewCharacteristicSet(values [CharacteristicCount]float64) (CharacteristicSet, error) {
	for i, v := range values {
		if err := validateValue(v); err != nil {
			return CharacteristicSet{}, fmt.Errorf("%s: %w", Characteristic(i), err)
		}
	}
	return CharacteristicSet{values: values}, nil
}

// SetFromMap builds a set from display-name keyed values.
// Characteristics missing from the map keep DefaultValue. Two keys naming the
// same characteristic ("Freedom" and "freedom") are rejected.
func SetFromMap(m map[string]float64) (CharacteristicSet, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	// Sorted so that the reported error does not depend on map order.
	sort.Strings(names)

	s := DefaultSet()
	var seen [CharacteristicCount]bool
	for _, name := range names {
		c, err := ParseCharacteristic(name)
		if err != nil {
			return CharacteristicSet{}, err
		}
		if seen[c] {
			return CharacteristicSet{}, fmt.Errorf("%w: duplicate characteristic %q", ErrInvalidInput, name)
		}
		seen[c] = true

		v := m[name]
		if err := validateValue(v); err != nil {
			return CharacteristicSet{}, fmt.Errorf("%s: %w", c, err)
		}
		s.values[c] = v
	}
	return s, nil
}

// Value returns the value of c.
func (s CharacteristicSet) Value(c Characteristic) float64 {
	return s.values[c]
}

// Values returns a copy of all values in enumeration order.
func (s CharacteristicSet) Values() []float64 {
	out := make([]float64, CharacteristicCount)
	copy(out, s.values[:])
	return out
}

// Map returns the values keyed by display name.
func (s CharacteristicSet) Map() map[string]float64 {
	m := make(map[string]float64, CharacteristicCount)
	for i, v := range s.values {
		m[characteristicNames[i]] = v
	}
	return m
}

// Entry pairs a characteristic with its value.
type Entry struct {
	Characteristic Characteristic
	Value          float64
}

// Entries returns the set as ordered pairs.
func (s CharacteristicSet) Entries() []Entry {
	out := make([]Entry, CharacteristicCount)
	for i, v := range s.values {
		out[i] = Entry{Characteristic: Characteristic(i), Value: v}
	}
	return out
}

func validateValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: value must be a finite number", ErrInvalidInput)
	}
	if v < MinValue || v > MaxValue {
		return fmt.Errorf("%w: value %.3f outside [%.0f, %.0f]", ErrInvalidInput, v, MinValue, MaxValue)
	}
	return nil
}
