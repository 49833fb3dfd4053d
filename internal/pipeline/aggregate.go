package pipeline

import (
	"sort"
	"strings"

	"go-records-dashboard/internal/model"
)

const (
	// UnknownGroup is the placeholder key for records missing a group value; it is never reported
	UnknownGroup = "Unknown"

	// TopCountries bounds the likelihood-by-country output
	TopCountries = 20
	// TopTopics bounds the topic-frequency output
	TopTopics = 30
)

// group accumulates values for one key; order keeps first-appearance order
type group struct {
	key    string
	year   int
	values []float64
	count  int
}

type groups struct {
	index map[string]*group
	order []*group
}

func newGroups() *groups {
	return &groups{index: make(map[string]*group)}
}

func (g *groups) get(key string) *group {
	if existing, ok := g.index[key]; ok {
		return existing
	}
	created := &group{key: key}
	g.index[key] = created
	g.order = append(g.order, created)
	return created
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))
	return &avg
}

// AggregateIntensityByYear averages intensity per end_year, falling back to
// start_year only when end_year is missing or null. Records without a usable
// year are dropped from the buckets entirely.
func AggregateIntensityByYear(records []model.Record) []model.IntensityPoint {
	byYear := make(map[int]*group)
	var order []*group

	for _, r := range records {
		year, ok := r.Year()
		if !ok {
			continue
		}
		g, exists := byYear[year]
		if !exists {
			g = &group{year: year}
			byYear[year] = g
			order = append(order, g)
		}
		if r.Intensity != nil {
			g.values = append(g.values, *r.Intensity)
		}
	}

	sort.SliceStable(order, func(i, j int) bool { return order[i].year < order[j].year })
	out := make([]model.IntensityPoint, 0, len(order))
	for _, g := range order {
		out = append(out, model.IntensityPoint{ID: g.year, AvgIntensity: mean(g.values)})
	}
	return out
}

// AggregateLikelihoodByCountry averages likelihood per country and keeps the top 20.
// A country without any valid likelihood ranks as 0.
func AggregateLikelihoodByCountry(records []model.Record) []model.LikelihoodPoint {
	byCountry := newGroups()

	for _, r := range records {
		country := r.Country
		if country == "" {
			country = UnknownGroup
		}
		if country == UnknownGroup {
			continue
		}
		g := byCountry.get(country)
		if r.Likelihood != nil {
			g.values = append(g.values, *r.Likelihood)
		}
	}

	out := make([]model.LikelihoodPoint, 0, len(byCountry.order))
	for _, g := range byCountry.order {
		out = append(out, model.LikelihoodPoint{ID: g.key, AvgLikelihood: mean(g.values)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rankValue(out[i].AvgLikelihood) > rankValue(out[j].AvgLikelihood)
	})
	if len(out) > TopCountries {
		out = out[:TopCountries]
	}
	return out
}

// AggregateTopicFrequency counts records per trimmed topic and keeps the top 30
func AggregateTopicFrequency(records []model.Record) []model.TopicPoint {
	byTopic := newGroups()

	for _, r := range records {
		topic := r.Topic
		if topic == "" {
			topic = UnknownGroup
		}
		topic = strings.TrimSpace(topic)
		if topic == "" || topic == UnknownGroup {
			continue
		}
		byTopic.get(topic).count++
	}

	out := make([]model.TopicPoint, 0, len(byTopic.order))
	for _, g := range byTopic.order {
		out = append(out, model.TopicPoint{ID: g.key, Count: g.count})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > TopTopics {
		out = out[:TopTopics]
	}
	return out
}

// Summarize recomputes all three aggregations in full
func Summarize(records []model.Record) model.Summary {
	return model.Summary{
		IntensityByYear:     AggregateIntensityByYear(records),
		LikelihoodByCountry: AggregateLikelihoodByCountry(records),
		TopicFrequency:      AggregateTopicFrequency(records),
	}
}

func rankValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
