package dashboard

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"go-records-dashboard/internal/model"
	"go-records-dashboard/internal/pipeline"
)

// BackToTopOffset is the scroll position past which the back-to-top button shows
const BackToTopOffset = 400

// LoadOutcome describes how one records request ended
type LoadOutcome struct {
	Token       uint64
	Query       string
	RecordCount int
	Applied     bool
	Stale       bool
	Err         error
	Duration    time.Duration
}

// Option configures a Dashboard
type Option func(*Dashboard)

// WithFetchHook is called after every records request, applied or not
func WithFetchHook(fn func(LoadOutcome)) Option {
	return func(d *Dashboard) { d.onFetch = fn }
}

// Dashboard owns the canonical filter state and record set of one session
type Dashboard struct {
	mu  sync.Mutex
	src pipeline.Source

	panel *Panel
	table *Table

	filters model.FilterState
	records []model.Record
	summary model.Summary

	loading     bool
	latest      uint64
	sidebarOpen bool
	showTop     bool

	onFetch func(LoadOutcome)
}

// View is a render-ready snapshot. Charts and Table are nil while loading.
type View struct {
	Filters       model.FilterState   `json:"filters"`
	Options       model.FilterOptions `json:"options"`
	Dropdowns     []DropdownView      `json:"dropdowns"`
	Loading       bool                `json:"loading"`
	SidebarOpen   bool                `json:"sidebarOpen"`
	ShowBackToTop bool                `json:"showBackToTop"`
	RecordCount   int                 `json:"recordCount"`
	Charts        *Charts             `json:"charts,omitempty"`
	Table         *TablePage          `json:"table,omitempty"`
	Theme         string              `json:"theme,omitempty"`
}

// New creates a dashboard whose panel is mounted on doc
func New(src pipeline.Source, doc *Document, opts ...Option) *Dashboard {
	d := &Dashboard{
		src:     src,
		table:   NewTable(),
		records: []model.Record{},
		summary: pipeline.Summarize(nil),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.panel = NewPanel(doc, func(ctx context.Context, _ model.FilterState) {
		d.applySelection(ctx)
	})
	d.panel.Mount()
	return d
}

// Panel returns the sidebar filter panel
func (d *Dashboard) Panel() *Panel { return d.panel }

// Close unmounts the panel's document listeners
func (d *Dashboard) Close() { d.panel.Unmount() }

// Init loads the filter options and the unfiltered record set concurrently.
// Failures are logged; the dashboard keeps empty state.
func (d *Dashboard) Init(ctx context.Context) {
	var g errgroup.Group

	g.Go(func() error {
		opts, err := d.src.FetchFilters(ctx)
		if err != nil {
			log.Printf("❌ Failed to load filters: %v", err)
			return nil
		}
		d.panel.SetOptions(opts)
		return nil
	})

	g.Go(func() error {
		d.ApplyFilters(ctx, model.FilterState{})
		return nil
	})

	g.Wait()
}

// ApplyFilters fetches the records for fs and recomputes every summary.
// Each call takes a new request token; a response is applied only while its
// token is still the latest, so an older request finishing late is discarded.
func (d *Dashboard) ApplyFilters(ctx context.Context, fs model.FilterState) LoadOutcome {
	d.mu.Lock()
	token := d.begin(fs)
	d.mu.Unlock()

	return d.load(ctx, fs, token)
}

// applySelection loads the panel's current selection. It is read under the
// dashboard lock, so the latest token always carries the latest selection even
// when two panel changes notify out of order.
func (d *Dashboard) applySelection(ctx context.Context) LoadOutcome {
	d.mu.Lock()
	fs := d.panel.Selected()
	token := d.begin(fs)
	d.mu.Unlock()

	return d.load(ctx, fs, token)
}

// begin stores fs and issues the next request token; d.mu must be held
func (d *Dashboard) begin(fs model.FilterState) uint64 {
	d.filters = fs
	d.sidebarOpen = false
	d.latest++
	d.loading = true
	return d.latest
}

func (d *Dashboard) load(ctx context.Context, fs model.FilterState, token uint64) LoadOutcome {
	res, err := pipeline.Run(ctx, d.src, fs)

	outcome := LoadOutcome{
		Token:       token,
		Query:       res.Query,
		RecordCount: len(res.Records),
		Err:         err,
		Duration:    res.Duration,
	}

	d.mu.Lock()
	if token == d.latest {
		d.loading = false
	}
	switch {
	case err != nil:
		log.Printf("❌ Failed to load records (token %d): %v", token, err)
	case token != d.latest:
		outcome.Stale = true
		pipeline.StaleResponsesTotal.Inc()
		log.Printf("⏭️ Discarding stale records response (token %d, latest %d)", token, d.latest)
	default:
		outcome.Applied = true
		d.records = res.Records
		d.summary = res.Summary
		pipeline.RecordsLoaded.Set(float64(len(res.Records)))
	}
	d.mu.Unlock()

	if d.onFetch != nil {
		d.onFetch(outcome)
	}
	return outcome
}

// Filters returns the canonical filter state
func (d *Dashboard) Filters() model.FilterState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filters
}

// Records returns the current record set, post-search and pre-pagination
func (d *Dashboard) Records() []model.Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.records
}

// Summary returns the current aggregations
func (d *Dashboard) Summary() model.Summary {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.summary
}

// Loading reports whether the latest records request is outstanding
func (d *Dashboard) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// Charts builds the chart configs from the current summary
func (d *Dashboard) Charts() Charts {
	return BuildCharts(d.Summary())
}

// TablePage renders the current table page
func (d *Dashboard) TablePage() TablePage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.table.Page(d.records)
}

// NextPage advances the table
func (d *Dashboard) NextPage() TablePage {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.table.Next(len(d.records))
	return d.table.Page(d.records)
}

// PrevPage steps the table back
func (d *Dashboard) PrevPage() TablePage {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.table.Prev(len(d.records))
	return d.table.Page(d.records)
}

// SetPageSize changes the rows per page and returns to page 1
func (d *Dashboard) SetPageSize(size int) (TablePage, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.table.SetPageSize(size); err != nil {
		return TablePage{}, err
	}
	return d.table.Page(d.records), nil
}

// ToggleSidebar opens or closes the mobile sidebar
func (d *Dashboard) ToggleSidebar() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sidebarOpen = !d.sidebarOpen
	return d.sidebarOpen
}

// Scroll records the page scroll position
func (d *Dashboard) Scroll(y int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.showTop = y > BackToTopOffset
	return d.showTop
}

// View snapshots everything the page needs
func (d *Dashboard) View() View {
	dropdowns := d.panel.Dropdowns()
	options := d.panel.Options()

	d.mu.Lock()
	defer d.mu.Unlock()

	v := View{
		Filters:       d.filters,
		Options:       options,
		Dropdowns:     dropdowns,
		Loading:       d.loading,
		SidebarOpen:   d.sidebarOpen,
		ShowBackToTop: d.showTop,
		RecordCount:   len(d.records),
	}
	if !d.loading {
		charts := BuildCharts(d.summary)
		page := d.table.Page(d.records)
		v.Charts = &charts
		v.Table = &page
	}
	return v
}
