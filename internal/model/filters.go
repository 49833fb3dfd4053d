package model

import (
	"errors"
	"fmt"

	"go-records-dashboard/pkg/utils"
)

// Filter names accepted by the records API
const (
	FilterSearch  = "search"
	FilterEndYear = "end_year"
	FilterTopic   = "topic"
	FilterSector  = "sector"
	FilterRegion  = "region"
	FilterCountry = "country"
	FilterPestle  = "pestle"
	FilterSource  = "source"
)

// FilterNames lists every filter in canonical order
var FilterNames = []string{
	FilterSearch, FilterEndYear, FilterTopic, FilterSector,
	FilterRegion, FilterCountry, FilterPestle, FilterSource,
}

// DropdownNames lists the categorical filters, i.e. all but search
var DropdownNames = FilterNames[1:]

// ErrUnknownFilter is returned for a filter name outside FilterNames
var ErrUnknownFilter = errors.New("unknown filter")

// QueryParam is one key/value pair for the query builder
type QueryParam struct {
	Key   string
	Value interface{}
}

// QueryParams keeps insertion order, unlike url.Values
type QueryParams []QueryParam

// Add appends a key/value pair
func (p QueryParams) Add(key string, value interface{}) QueryParams {
	return append(p, QueryParam{Key: key, Value: value})
}

// FilterState holds one selected value per filter; "" means no filter
type FilterState struct {
	Search  string `json:"search"`
	EndYear string `json:"end_year"`
	Topic   string `json:"topic"`
	Sector  string `json:"sector"`
	Region  string `json:"region"`
	Country string `json:"country"`
	Pestle  string `json:"pestle"`
	Source  string `json:"source"`
}

// IsFilter reports whether name is a known filter
func IsFilter(name string) bool {
	for _, n := range FilterNames {
		if n == name {
			return true
		}
	}
	return false
}

// IsDropdown reports whether name is a categorical filter
func IsDropdown(name string) bool {
	return name != FilterSearch && IsFilter(name)
}

func (f *FilterState) field(name string) (*string, error) {
	switch name {
	case FilterSearch:
		return &f.Search, nil
	case FilterEndYear:
		return &f.EndYear, nil
	case FilterTopic:
		return &f.Topic, nil
	case FilterSector:
		return &f.Sector, nil
	case FilterRegion:
		return &f.Region, nil
	case FilterCountry:
		return &f.Country, nil
	case FilterPestle:
		return &f.Pestle, nil
	case FilterSource:
		return &f.Source, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// Get returns the value for name
func (f FilterState) Get(name string) (string, error) {
	p, err := f.field(name)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// With returns a copy of f with name set to value
func (f FilterState) With(name, value string) (FilterState, error) {
	p, err := f.field(name)
	if err != nil {
		return f, err
	}
	*p = value
	return f, nil
}

// Params returns every filter in canonical order, empty values included;
// the query builder decides what to drop.
func (f FilterState) Params() QueryParams {
	params := make(QueryParams, 0, len(FilterNames))
	for _, name := range FilterNames {
		v, _ := f.Get(name)
		params = params.Add(name, v)
	}
	return params
}

// FilterOptions maps each categorical filter to its available values
type FilterOptions map[string][]string

// DecodeFilterOptions converts the raw /filters payload, stringifying
// numbers (end years arrive as numbers) and keeping only known dropdowns.
func DecodeFilterOptions(raw map[string][]interface{}) FilterOptions {
	opts := make(FilterOptions, len(DropdownNames))
	for _, name := range DropdownNames {
		values := raw[name]
		list := make([]string, 0, len(values))
		for _, v := range values {
			if v == nil {
				continue
			}
			list = append(list, utils.Stringify(v))
		}
		opts[name] = list
	}
	return opts
}

// Normalize makes sure every dropdown has a non-nil list
func (o FilterOptions) Normalize() FilterOptions {
	out := make(FilterOptions, len(DropdownNames))
	for _, name := range DropdownNames {
		if list := o[name]; list != nil {
			out[name] = list
		} else {
			out[name] = []string{}
		}
	}
	return out
}
