package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterState_WithAndGet(t *testing.T) {
	fs, err := FilterState{}.With(FilterTopic, "oil")
	require.NoError(t, err)

	v, err := fs.Get(FilterTopic)
	require.NoError(t, err)
	assert.Equal(t, "oil", v)

	_, err = fs.With("colour", "red")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestFilterState_ParamsCoversEveryKeyInOrder(t *testing.T) {
	params := FilterState{Country: "India"}.Params()
	require.Len(t, params, len(FilterNames))
	for i, p := range params {
		assert.Equal(t, FilterNames[i], p.Key)
	}
	assert.Equal(t, "India", params[5].Value)
}

func TestIsDropdown(t *testing.T) {
	assert.True(t, IsDropdown(FilterPestle))
	assert.False(t, IsDropdown(FilterSearch))
	assert.False(t, IsDropdown("nope"))
}

func TestDecodeFilterOptions(t *testing.T) {
	opts := DecodeFilterOptions(map[string][]interface{}{
		"end_year": {2018.0, 2020.0, nil},
		"topic":    {"oil", "gas"},
		"unknown":  {"x"},
	})

	assert.Equal(t, []string{"2018", "2020"}, opts[FilterEndYear])
	assert.Equal(t, []string{"oil", "gas"}, opts[FilterTopic])
	assert.Equal(t, []string{}, opts[FilterSource])
	assert.NotContains(t, opts, "unknown")
}

func TestFilterOptions_Normalize(t *testing.T) {
	opts := FilterOptions{FilterTopic: {"oil"}}.Normalize()
	assert.Len(t, opts, len(DropdownNames))
	assert.Equal(t, []string{}, opts[FilterRegion])
}
