package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-records-dashboard/internal/model"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		params model.QueryParams
		want   string
	}{
		{"empty", nil, ""},
		{"all blank", model.QueryParams{{Key: "search", Value: ""}, {Key: "topic", Value: "   "}}, ""},
		{"nil skipped", model.QueryParams{{Key: "topic", Value: nil}, {Key: "sector", Value: "Energy"}}, "?sector=Energy"},
		{"encoded", model.QueryParams{{Key: "topic", Value: "oil & gas"}}, "?topic=oil+%26+gas"},
		{"numbers stringified", model.QueryParams{{Key: "end_year", Value: 2020}, {Key: "x", Value: 1.5}}, "?end_year=2020&x=1.5"},
		{"order kept", model.QueryParams{{Key: "z", Value: "1"}, {Key: "a", Value: "2"}}, "?z=1&a=2"},
		{"any key passes", model.QueryParams{{Key: "not a filter", Value: "v"}}, "?not+a+filter=v"},
		{"padded value kept verbatim", model.QueryParams{{Key: "search", Value: " oil "}}, "?search=+oil+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQuery(tt.params))
		})
	}
}

func TestBuildQuery_FromFilterState(t *testing.T) {
	fs := model.FilterState{Topic: "oil", Country: "India"}
	assert.Equal(t, "?topic=oil&country=India", BuildQuery(fs.Params()))
	assert.Equal(t, "", BuildQuery(model.FilterState{}.Params()))
}
