package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		input    string
		expected Gender
	}{
		{"male", GenderMale},
		{"female", GenderFemale},
		{"default", GenderDefault},
		{"", GenderDefault},
		{"nonbinary", GenderDefault},
		{"MALE", GenderDefault},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseGender(tt.input), "input %q", tt.input)
	}
}

func TestNormalRangeContainsIsInclusive(t *testing.T) {
	r := NormalRange{Low: 3.9, High: 6.1}

	assert.True(t, r.Contains(3.9))
	assert.True(t, r.Contains(6.1))
	assert.True(t, r.Contains(5.0))
	assert.False(t, r.Contains(3.89))
	assert.False(t, r.Contains(6.11))
}

func TestReadingList(t *testing.T) {
	readings := Readings{"fasting_glucose": 5.2, "hba1c": 5.4}

	list := readings.ReadingList()
	assert.Len(t, list, 2)

	seen := make(map[string]float64)
	for _, reading := range list {
		seen[reading.Metric] = reading.Value
	}
	assert.Equal(t, 5.2, seen["fasting_glucose"])
	assert.Equal(t, 5.4, seen["hba1c"])
}

func TestMetricReadingString(t *testing.T) {
	assert.Equal(t, "hba1c=5.4", MetricReading{Metric: "hba1c", Value: 5.4}.String())
}
