package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_UnmarshalKeepsKeyOrder(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Oil","end_year":2020,"intensity":"4","country":"","z":null,"a":[1,2]}`), &r))

	assert.Equal(t, []string{"title", "end_year", "intensity", "country", "z", "a"}, r.Keys())
	assert.Equal(t, "Oil", r.Title)
	require.NotNil(t, r.EndYear)
	assert.Equal(t, 2020, *r.EndYear)
	require.NotNil(t, r.Intensity)
	assert.Equal(t, 4.0, *r.Intensity)
	assert.Equal(t, "", r.Country)
	assert.Nil(t, r.StartYear)
}

func TestRecord_MalformedNumbersAreAbsent(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"intensity":"x","likelihood":"","relevance":{},"end_year":""}`), &r))

	assert.Nil(t, r.Intensity)
	assert.Nil(t, r.Likelihood)
	assert.Nil(t, r.Relevance)
	assert.Nil(t, r.EndYear)
}

func TestRecord_RejectsNonObject(t *testing.T) {
	var r Record
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &r))
}

func TestRecord_MarshalRoundTripsOrder(t *testing.T) {
	in := `{"b":1,"a":"x","c":null}`
	var r Record
	require.NoError(t, json.Unmarshal([]byte(in), &r))

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestRecord_YearFallsBackToStartYear(t *testing.T) {
	r := NewRecord(Field{Key: "start_year", Value: 2017.0})
	year, ok := r.Year()
	assert.True(t, ok)
	assert.Equal(t, 2017, year)

	year, ok = NewRecord(Field{Key: "end_year", Value: nil}, Field{Key: "start_year", Value: "2016"}).Year()
	assert.True(t, ok)
	assert.Equal(t, 2016, year)

	_, ok = NewRecord().Year()
	assert.False(t, ok)
}

func TestRecord_UnusableEndYearDoesNotFallBack(t *testing.T) {
	tests := []struct {
		name    string
		endYear interface{}
	}{
		{"empty string", ""},
		{"garbage", "soon"},
		{"fractional", 2020.5},
		{"zero", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecord(Field{Key: "end_year", Value: tt.endYear}, Field{Key: "start_year", Value: 2016.0})
			_, ok := r.Year()
			assert.False(t, ok)
		})
	}
}
