package model

import (
	"encoding/json"

	"go-records-dashboard/pkg/utils"
)

// IntensityPoint is the average intensity for one year. Server-side aggregates
// group records without a year under "" or null, so ID keeps whatever was sent.
type IntensityPoint struct {
	ID           interface{} `json:"_id"`
	AvgIntensity *float64    `json:"avgIntensity"`
}

// Label renders ID for axes and tables
func (p IntensityPoint) Label() string {
	return utils.Stringify(p.ID)
}

// LikelihoodPoint is the average likelihood for one country
type LikelihoodPoint struct {
	ID            string   `json:"_id"`
	AvgLikelihood *float64 `json:"avgLikelihood"`
}

// TopicPoint is the number of records for one topic
type TopicPoint struct {
	ID    string `json:"_id"`
	Count int    `json:"count"`
}

// Summary bundles the three derived views over one record set
type Summary struct {
	IntensityByYear     []IntensityPoint  `json:"intensityByYear"`
	LikelihoodByCountry []LikelihoodPoint `json:"likelihoodByCountry"`
	TopicFrequency      []TopicPoint      `json:"topicFrequency"`
}

// rawPoint is one server aggregate entry before coercion
type rawPoint struct {
	ID            interface{} `json:"_id"`
	AvgIntensity  interface{} `json:"avgIntensity"`
	AvgLikelihood interface{} `json:"avgLikelihood"`
	Count         interface{} `json:"count"`
}

func floatOrNil(v interface{}) *float64 {
	f, ok := utils.ToFinite(v)
	if !ok {
		return nil
	}
	return &f
}

// UnmarshalJSON accepts any _id and a non-numeric average as nil
func (p *IntensityPoint) UnmarshalJSON(data []byte) error {
	var raw rawPoint
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = IntensityPoint{ID: raw.ID, AvgIntensity: floatOrNil(raw.AvgIntensity)}
	return nil
}

// UnmarshalJSON stringifies the _id and treats a non-numeric average as nil
func (p *LikelihoodPoint) UnmarshalJSON(data []byte) error {
	var raw rawPoint
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = LikelihoodPoint{ID: utils.Stringify(raw.ID), AvgLikelihood: floatOrNil(raw.AvgLikelihood)}
	return nil
}

// UnmarshalJSON stringifies the _id; a count that is not a whole number is 0
func (p *TopicPoint) UnmarshalJSON(data []byte) error {
	var raw rawPoint
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	count, _ := utils.ToInt(raw.Count)
	*p = TopicPoint{ID: utils.Stringify(raw.ID), Count: count}
	return nil
}
