package dashboard

import "go-records-dashboard/internal/model"

// topicColors is the doughnut palette; Chart.js cycles it past seven slices
var topicColors = []string{
	"#F97316", "#FB923C", "#F43F5E", "#A78BFA", "#60A5FA", "#34D399", "#F59E0B",
}

// Dataset is one Chart.js series
type Dataset struct {
	Label           string      `json:"label"`
	Data            []float64   `json:"data"`
	BackgroundColor interface{} `json:"backgroundColor,omitempty"`
	BorderColor     string      `json:"borderColor,omitempty"`
	Tension         float64     `json:"tension,omitempty"`
	Fill            bool        `json:"fill,omitempty"`
	PointRadius     int         `json:"pointRadius,omitempty"`
}

// ChartConfig is what the page hands to the charting library
type ChartConfig struct {
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Charts holds the three dashboard charts
type Charts struct {
	Intensity  ChartConfig `json:"intensity"`
	Likelihood ChartConfig `json:"likelihood"`
	Topics     ChartConfig `json:"topics"`
}

// BuildCharts builds every chart from one summary
func BuildCharts(s model.Summary) Charts {
	return Charts{
		Intensity:  BuildIntensityChart(s.IntensityByYear),
		Likelihood: BuildLikelihoodChart(s.LikelihoodByCountry),
		Topics:     BuildTopicChart(s.TopicFrequency),
	}
}

// BuildIntensityChart is the "Intensity over time" line chart; missing averages plot as 0
func BuildIntensityChart(points []model.IntensityPoint) ChartConfig {
	labels := make([]string, len(points))
	data := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Label()
		data[i] = valueOrZero(p.AvgIntensity)
	}
	return ChartConfig{
		Type:   "line",
		Title:  "Intensity over time",
		Labels: labels,
		Datasets: []Dataset{{
			Label:           "Avg intensity",
			Data:            data,
			BorderColor:     "rgb(34,197,94)",
			BackgroundColor: "rgba(34,197,94,0.08)",
			Tension:         0.35,
			Fill:            true,
			PointRadius:     3,
		}},
	}
}

// BuildLikelihoodChart is the "Likelihood by country" bar chart
func BuildLikelihoodChart(points []model.LikelihoodPoint) ChartConfig {
	labels := make([]string, len(points))
	data := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.ID
		data[i] = valueOrZero(p.AvgLikelihood)
	}
	return ChartConfig{
		Type:   "bar",
		Title:  "Likelihood by country",
		Labels: labels,
		Datasets: []Dataset{{
			Label:           "Avg Likelihood",
			Data:            data,
			BackgroundColor: "rgba(59,130,246,0.8)",
			BorderColor:     "rgb(34,197,94)",
		}},
	}
}

// BuildTopicChart is the "Top topics" doughnut
func BuildTopicChart(points []model.TopicPoint) ChartConfig {
	labels := make([]string, len(points))
	data := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.ID
		data[i] = float64(p.Count)
	}
	return ChartConfig{
		Type:   "doughnut",
		Title:  "Top topics",
		Labels: labels,
		Datasets: []Dataset{{
			Label:           "Topic Frequency",
			Data:            data,
			BackgroundColor: topicColors,
		}},
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
