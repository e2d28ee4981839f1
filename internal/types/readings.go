// Package types defines the shared value types flowing through the health
// assessment and plan generation pipeline. Everything here is a plain value:
// created per request, consumed downstream, never persisted.
package types

import "fmt"

// Gender selects which rule bucket applies when a metric has sex-specific
// reference ranges.
type Gender string

// Gender values recognized by the rule engine. GenderDefault is both a valid
// caller value and the fallback bucket when a rule has no explicit entry for
// the requested gender.
const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderDefault Gender = "default"
)

// ParseGender converts a raw string into a Gender, accepting only the closed
// set of values. Unknown strings map to GenderDefault rather than failing:
// gender only widens or narrows reference ranges, it never invalidates a
// request.
func ParseGender(s string) Gender {
	switch Gender(s) {
	case GenderMale, GenderFemale:
		return Gender(s)
	default:
		return GenderDefault
	}
}

// MetricReading is a single numeric measurement supplied by the caller,
// e.g. ("fasting_glucose", 6.5).
type MetricReading struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

// Readings maps metric keys to measured values for one evaluation call.
type Readings map[string]float64

// ReadingList converts a Readings map to a slice, mainly for logging and
// prompt construction where a stable, inspectable form is useful.
func (r Readings) ReadingList() []MetricReading {
	list := make([]MetricReading, 0, len(r))
	for metric, value := range r {
		list = append(list, MetricReading{Metric: metric, Value: value})
	}
	return list
}

// String implements fmt.Stringer for log output.
func (m MetricReading) String() string {
	return fmt.Sprintf("%s=%g", m.Metric, m.Value)
}
