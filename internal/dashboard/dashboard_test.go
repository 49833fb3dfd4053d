package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-records-dashboard/internal/model"
)

func rec(fields ...interface{}) model.Record {
	var fs []model.Field
	for i := 0; i+1 < len(fields); i += 2 {
		fs = append(fs, model.Field{Key: fields[i].(string), Value: fields[i+1]})
	}
	return model.NewRecord(fs...)
}

func paramValue(params model.QueryParams, key string) string {
	for _, p := range params {
		if p.Key == key {
			s, _ := p.Value.(string)
			return s
		}
	}
	return ""
}

// fakeSource answers from fixed data; records are keyed by the end_year filter
type fakeSource struct {
	mu           sync.Mutex
	records      map[string][]model.Record
	options      model.FilterOptions
	recordsErr   error
	filtersErr   error
	recordCalls  int
	filterCalls  int
	lastEndYears []string
}

func (f *fakeSource) FetchRecords(_ context.Context, params model.QueryParams) ([]model.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recordCalls++
	year := paramValue(params, model.FilterEndYear)
	f.lastEndYears = append(f.lastEndYears, year)
	if f.recordsErr != nil {
		return nil, f.recordsErr
	}
	return f.records[year], nil
}

func (f *fakeSource) FetchFilters(context.Context) (model.FilterOptions, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filterCalls++
	return f.options, f.filtersErr
}

// gatedSource blocks each records request until its end_year gate is released
type gatedSource struct {
	mu      sync.Mutex
	gates   map[string]chan struct{}
	started chan string
	records map[string][]model.Record
}

func newGatedSource(years ...string) *gatedSource {
	g := &gatedSource{
		gates:   make(map[string]chan struct{}),
		started: make(chan string, len(years)),
		records: make(map[string][]model.Record),
	}
	for _, y := range years {
		g.gates[y] = make(chan struct{})
		g.records[y] = []model.Record{rec("title", "record "+y, "end_year", y)}
	}
	return g
}

func (g *gatedSource) FetchRecords(ctx context.Context, params model.QueryParams) ([]model.Record, error) {
	year := paramValue(params, model.FilterEndYear)
	g.mu.Lock()
	gate := g.gates[year]
	recs := g.records[year]
	g.mu.Unlock()

	g.started <- year
	select {
	case <-gate:
		return recs, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *gatedSource) FetchFilters(context.Context) (model.FilterOptions, error) {
	return model.FilterOptions{}, nil
}

func waitStarted(t *testing.T, g *gatedSource, want string) {
	t.Helper()
	select {
	case got := <-g.started:
		require.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("request %q never started", want)
	}
}

func TestInit_LoadsOptionsAndRecords(t *testing.T) {
	src := &fakeSource{
		options: model.FilterOptions{model.FilterTopic: {"oil", "gas"}},
		records: map[string][]model.Record{"": {
			rec("title", "A", "topic", "oil", "country", "India", "end_year", 2020.0, "intensity", 4.0),
		}},
	}
	d := New(src, NewDocument())
	d.Init(context.Background())

	assert.Equal(t, 1, src.filterCalls)
	assert.Equal(t, 1, src.recordCalls)
	assert.Equal(t, []string{"oil", "gas"}, d.Panel().Options()[model.FilterTopic])
	assert.Len(t, d.Records(), 1)
	assert.False(t, d.Loading())
	assert.Equal(t, []model.TopicPoint{{ID: "oil", Count: 1}}, d.Summary().TopicFrequency)
}

func TestInit_FilterFailureKeepsEmptyOptions(t *testing.T) {
	src := &fakeSource{filtersErr: errors.New("down"), records: map[string][]model.Record{"": {rec("title", "A")}}}
	d := New(src, NewDocument())
	d.Init(context.Background())

	assert.Empty(t, d.Panel().Options()[model.FilterTopic])
	assert.Len(t, d.Records(), 1)
}

func TestApplyFilters_ErrorKeepsPreviousState(t *testing.T) {
	src := &fakeSource{records: map[string][]model.Record{"": {rec("title", "A"), rec("title", "B")}}}
	d := New(src, NewDocument())
	first := d.ApplyFilters(context.Background(), model.FilterState{})
	require.True(t, first.Applied)

	src.recordsErr = errors.New("failed to fetch records")
	out := d.ApplyFilters(context.Background(), model.FilterState{Topic: "oil"})

	assert.Error(t, out.Err)
	assert.False(t, out.Applied)
	assert.False(t, d.Loading())
	assert.Len(t, d.Records(), 2)
	assert.Equal(t, "oil", d.Filters().Topic)
}

func TestApplyFilters_LateResponseIsDiscarded(t *testing.T) {
	src := newGatedSource("2020", "2021")
	d := New(src, NewDocument())
	ctx := context.Background()

	outcomes := make(chan LoadOutcome, 2)
	go func() { outcomes <- d.ApplyFilters(ctx, model.FilterState{EndYear: "2020"}) }()
	waitStarted(t, src, "2020")
	go func() { outcomes <- d.ApplyFilters(ctx, model.FilterState{EndYear: "2021"}) }()
	waitStarted(t, src, "2021")

	close(src.gates["2021"])
	latest := <-outcomes
	assert.True(t, latest.Applied)
	assert.Equal(t, uint64(2), latest.Token)
	assert.False(t, d.Loading())

	close(src.gates["2020"])
	stale := <-outcomes
	assert.True(t, stale.Stale)
	assert.False(t, stale.Applied)
	assert.Equal(t, uint64(1), stale.Token)

	require.Len(t, d.Records(), 1)
	assert.Equal(t, "record 2021", d.Records()[0].Title)
	assert.False(t, d.Loading())
}

func TestApplyFilters_LoadingStaysUntilLatestResolves(t *testing.T) {
	src := newGatedSource("2020", "2021")
	d := New(src, NewDocument())
	ctx := context.Background()

	done := make(chan LoadOutcome, 2)
	go func() { done <- d.ApplyFilters(ctx, model.FilterState{EndYear: "2020"}) }()
	waitStarted(t, src, "2020")
	go func() { done <- d.ApplyFilters(ctx, model.FilterState{EndYear: "2021"}) }()
	waitStarted(t, src, "2021")

	close(src.gates["2020"])
	assert.True(t, (<-done).Stale)
	assert.True(t, d.Loading())

	v := d.View()
	assert.True(t, v.Loading)
	assert.Nil(t, v.Charts)
	assert.Nil(t, v.Table)

	close(src.gates["2021"])
	assert.True(t, (<-done).Applied)
	assert.False(t, d.Loading())
	assert.NotNil(t, d.View().Table)
}

func TestApplyFilters_ReportsToHook(t *testing.T) {
	var got []LoadOutcome
	src := &fakeSource{records: map[string][]model.Record{"2020": {rec("title", "A")}}}
	d := New(src, NewDocument(), WithFetchHook(func(o LoadOutcome) { got = append(got, o) }))

	d.ApplyFilters(context.Background(), model.FilterState{EndYear: "2020"})

	require.Len(t, got, 1)
	assert.Equal(t, "?end_year=2020", got[0].Query)
	assert.Equal(t, 1, got[0].RecordCount)
	assert.True(t, got[0].Applied)
}

func TestApplyFilters_ClosesSidebar(t *testing.T) {
	d := New(&fakeSource{}, NewDocument())
	assert.True(t, d.ToggleSidebar())

	d.ApplyFilters(context.Background(), model.FilterState{})
	assert.False(t, d.View().SidebarOpen)
}

func TestPanelSelectDrivesLoad(t *testing.T) {
	src := &fakeSource{records: map[string][]model.Record{"2021": {rec("title", "A")}}}
	d := New(src, NewDocument())

	require.NoError(t, d.Panel().Select(context.Background(), model.FilterEndYear, "2021"))
	assert.Equal(t, []string{"2021"}, src.lastEndYears)
	assert.Equal(t, "2021", d.Filters().EndYear)
	assert.Len(t, d.Records(), 1)
}

func TestPanelLateNotifyKeepsSelection(t *testing.T) {
	src := &fakeSource{records: map[string][]model.Record{"2021": {rec("title", "A")}}}
	d := New(src, NewDocument())
	ctx := context.Background()

	require.NoError(t, d.Panel().SetText(ctx, model.FilterSearch, "a"))
	require.NoError(t, d.Panel().Select(ctx, model.FilterEndYear, "2021"))
	// the search change notifies last with its older state
	d.Panel().notify(ctx, model.FilterState{Search: "a"})

	assert.Equal(t, d.Panel().Selected(), d.Filters())
	assert.Equal(t, []string{"", "2021", "2021"}, src.lastEndYears)
	assert.Len(t, d.Records(), 1)
}

func TestPagingThroughDashboard(t *testing.T) {
	var records []model.Record
	for i := 0; i < 30; i++ {
		records = append(records, rec("title", "r"))
	}
	d := New(&fakeSource{records: map[string][]model.Record{"": records}}, NewDocument())
	d.ApplyFilters(context.Background(), model.FilterState{})

	page := d.NextPage()
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Rows, 5)

	page, err := d.SetPageSize(10)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.TotalPages)

	_, err = d.SetPageSize(7)
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	assert.Equal(t, 1, d.PrevPage().Page)
}

func TestScrollShowsBackToTop(t *testing.T) {
	d := New(&fakeSource{}, NewDocument())
	assert.False(t, d.Scroll(400))
	assert.True(t, d.Scroll(401))
	assert.True(t, d.View().ShowBackToTop)
	assert.False(t, d.Scroll(0))
}

func TestCloseUnmountsPanel(t *testing.T) {
	doc := NewDocument()
	d := New(&fakeSource{}, doc)
	assert.Equal(t, len(model.DropdownNames), mounted(doc))

	d.Close()
	assert.Zero(t, mounted(doc))
}
