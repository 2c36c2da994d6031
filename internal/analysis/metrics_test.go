package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonarci/sonarci/internal/sonar"
)

func measuresResponse(pairs ...[2]string) *sonar.ComponentMeasures {
	var m sonar.ComponentMeasures
	m.Component.Key = "my-service"
	for _, p := range pairs {
		m.Component.Measures = append(m.Component.Measures, sonar.Measure{Metric: p[0], Value: p[1]})
	}
	return &m
}

func TestNewMetricSet(t *testing.T) {
	set := NewMetricSet(measuresResponse(
		[2]string{"ncloc", "1500"},
		[2]string{"coverage", "81.3"},
		[2]string{"sqale_rating", "2.0"},
	))

	assert.Equal(t, "1500", set.Get("ncloc"))
	assert.Equal(t, "81.3", set.Get("coverage"))
	assert.Equal(t, "2.0", set.Get("sqale_rating"))
}

func TestNewMetricSetNilResponse(t *testing.T) {
	set := NewMetricSet(nil)
	assert.Empty(t, set)
	assert.Equal(t, "N/A", set.Get("ncloc"))
}

func TestMetricSetDuplicateKeyLastWins(t *testing.T) {
	set := NewMetricSet(measuresResponse(
		[2]string{"bugs", "3"},
		[2]string{"bugs", "5"},
	))
	assert.Equal(t, "5", set.Get("bugs"))
}

func TestMetricSetMissingValue(t *testing.T) {
	set := NewMetricSet(measuresResponse([2]string{"coverage", ""}))
	assert.Equal(t, "N/A", set.Get("coverage"))
	assert.Equal(t, "", set.Raw("duplicated_lines_density"))
}
