package dashboard

import (
	"errors"
	"fmt"
	"strconv"

	"go-records-dashboard/internal/model"
)

// DefaultPageSize is the initial number of rows per page
const DefaultPageSize = 25

// PageSizes are the selectable rows-per-page values
var PageSizes = []int{10, 25, 50, 100}

// ErrInvalidPageSize is returned for a size outside PageSizes
var ErrInvalidPageSize = errors.New("invalid page size")

// placeholder is shown for an absent cell
const placeholder = "-"

// Row is the four-column projection of a record
type Row struct {
	Title   string `json:"title"`
	Topic   string `json:"topic"`
	Country string `json:"country"`
	Year    string `json:"year"`
}

// TablePage is one rendered page of the records table
type TablePage struct {
	Rows       []Row `json:"rows"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	PageSizes  []int `json:"pageSizes"`
	TotalPages int   `json:"totalPages"`
	Total      int   `json:"total"`
	From       int   `json:"from"`
	To         int   `json:"to"`
	Empty      bool  `json:"empty"`
	HasPrev    bool  `json:"hasPrev"`
	HasNext    bool  `json:"hasNext"`
}

// Table paginates an in-memory record set. It is not safe for concurrent use;
// the Dashboard serializes access.
type Table struct {
	page     int
	pageSize int
}

// NewTable starts on page 1 with the default page size
func NewTable() *Table {
	return &Table{page: 1, pageSize: DefaultPageSize}
}

// TotalPages is ceil(total/pageSize), never below 1
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// PageSize returns the rows per page
func (t *Table) PageSize() int { return t.pageSize }

// SetPageSize changes rows per page and returns to page 1
func (t *Table) SetPageSize(size int) error {
	for _, allowed := range PageSizes {
		if size == allowed {
			t.pageSize = size
			t.page = 1
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
}

// Next moves forward one page, stopping at the last
func (t *Table) Next(total int) {
	t.page++
	t.clamp(total)
}

// Prev moves back one page, stopping at the first
func (t *Table) Prev(total int) {
	t.page--
	t.clamp(total)
}

// Page renders the current page of records
func (t *Table) Page(records []model.Record) TablePage {
	total := len(records)
	t.clamp(total)
	totalPages := TotalPages(total, t.pageSize)

	start := (t.page - 1) * t.pageSize
	end := start + t.pageSize
	if end > total {
		end = total
	}

	rows := make([]Row, 0, end-start)
	for _, r := range records[start:end] {
		rows = append(rows, project(r))
	}

	from := 0
	if total > 0 {
		from = start + 1
	}

	return TablePage{
		Rows:       rows,
		Page:       t.page,
		PageSize:   t.pageSize,
		PageSizes:  PageSizes,
		TotalPages: totalPages,
		Total:      total,
		From:       from,
		To:         end,
		Empty:      len(rows) == 0,
		HasPrev:    t.page > 1,
		HasNext:    t.page < totalPages,
	}
}

func (t *Table) clamp(total int) {
	if last := TotalPages(total, t.pageSize); t.page > last {
		t.page = last
	}
	if t.page < 1 {
		t.page = 1
	}
}

func project(r model.Record) Row {
	year := placeholder
	if y, ok := r.Year(); ok {
		year = strconv.Itoa(y)
	}
	return Row{
		Title:   orPlaceholder(r.Title),
		Topic:   orPlaceholder(r.Topic),
		Country: orPlaceholder(r.Country),
		Year:    year,
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
