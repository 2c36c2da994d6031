package analysis

import "github.com/sonarci/sonarci/internal/sonar"

// missingValue is rendered for metrics the server did not return. It must
// never be treated as zero by downstream logic.
const missingValue = "N/A"

// MetricSet maps metric keys to their raw string values. The last value wins
// for a duplicate key.
type MetricSet map[string]string

// NewMetricSet flattens a measures response. A nil response yields an empty
// set, so every lookup degrades to "N/A".
func NewMetricSet(measures *sonar.ComponentMeasures) MetricSet {
	set := MetricSet{}
	if measures == nil {
		return set
	}
	for _, measure := range measures.Component.Measures {
		value := measure.Value
		if value == "" {
			value = missingValue
		}
		set[measure.Metric] = value
	}
	return set
}

// Get returns the value for key, or "N/A" when the metric is absent.
func (m MetricSet) Get(key string) string {
	if value, ok := m[key]; ok {
		return value
	}
	return missingValue
}

// Raw returns the stored value without the absent-key substitution.
func (m MetricSet) Raw(key string) string {
	return m[key]
}
