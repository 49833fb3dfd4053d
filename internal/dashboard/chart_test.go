package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-records-dashboard/internal/model"
)

func fptr(f float64) *float64 { return &f }

func TestBuildCharts(t *testing.T) {
	charts := BuildCharts(model.Summary{
		IntensityByYear: []model.IntensityPoint{
			{ID: 2019, AvgIntensity: fptr(3.5)},
			{ID: 2020},
		},
		LikelihoodByCountry: []model.LikelihoodPoint{
			{ID: "India", AvgLikelihood: fptr(4)},
			{ID: "Unknown"},
		},
		TopicFrequency: []model.TopicPoint{{ID: "oil", Count: 3}, {ID: "gas", Count: 1}},
	})

	assert.Equal(t, "line", charts.Intensity.Type)
	assert.Equal(t, "Intensity over time", charts.Intensity.Title)
	assert.Equal(t, []string{"2019", "2020"}, charts.Intensity.Labels)
	require.Len(t, charts.Intensity.Datasets, 1)
	assert.Equal(t, "Avg intensity", charts.Intensity.Datasets[0].Label)
	assert.Equal(t, []float64{3.5, 0}, charts.Intensity.Datasets[0].Data)

	assert.Equal(t, "bar", charts.Likelihood.Type)
	assert.Equal(t, []string{"India", "Unknown"}, charts.Likelihood.Labels)
	assert.Equal(t, []float64{4, 0}, charts.Likelihood.Datasets[0].Data)
	assert.Equal(t, "Avg Likelihood", charts.Likelihood.Datasets[0].Label)

	assert.Equal(t, "doughnut", charts.Topics.Type)
	assert.Equal(t, "Top topics", charts.Topics.Title)
	assert.Equal(t, []float64{3, 1}, charts.Topics.Datasets[0].Data)
	assert.Equal(t, topicColors, charts.Topics.Datasets[0].BackgroundColor)
}

func TestBuildCharts_EmptySummary(t *testing.T) {
	charts := BuildCharts(model.Summary{})
	assert.Empty(t, charts.Intensity.Labels)
	assert.NotNil(t, charts.Intensity.Datasets[0].Data)
	assert.Empty(t, charts.Topics.Datasets[0].Data)
}
