package pipeline

import (
	"context"
	"fmt"
	"time"

	"go-records-dashboard/internal/model"
)

// Source is the part of the records API the load pipeline needs
type Source interface {
	FetchRecords(ctx context.Context, params model.QueryParams) ([]model.Record, error)
	FetchFilters(ctx context.Context) (model.FilterOptions, error)
}

// Result is one fully recomputed record set and its summaries
type Result struct {
	Filters  model.FilterState
	Query    string
	Records  []model.Record
	Summary  model.Summary
	Duration time.Duration
}

// ------------------- Load Runner -------------------

// Run fetches the records matching filters, applies the search narrowing and
// recomputes every aggregation. Nothing is cached between runs.
func Run(ctx context.Context, src Source, filters model.FilterState) (Result, error) {
	start := time.Now()
	params := filters.Params()
	query := BuildQuery(params)

	records, err := src.FetchRecords(ctx, params)
	if err != nil {
		return Result{Filters: filters, Query: query}, err
	}
	if records == nil {
		records = []model.Record{}
	}

	fetched := len(records)
	records = FilterBySearch(records, filters.Search)

	result := Result{
		Filters:  filters,
		Query:    query,
		Records:  records,
		Summary:  Summarize(records),
		Duration: time.Since(start),
	}

	fmt.Printf("📊 Load%s: %d fetched, %d after search, %d years, %d countries, %d topics in %v\n",
		query, fetched, len(records),
		len(result.Summary.IntensityByYear),
		len(result.Summary.LikelihoodByCountry),
		len(result.Summary.TopicFrequency),
		result.Duration,
	)
	return result, nil
}
