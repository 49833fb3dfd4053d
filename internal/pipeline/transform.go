package pipeline

import (
	"strings"

	"go-records-dashboard/internal/model"
)

// FilterBySearch narrows records to those whose title or topic contains term,
// case-insensitively. A blank term returns records unchanged.
func FilterBySearch(records []model.Record, term string) []model.Record {
	if strings.TrimSpace(term) == "" {
		return records
	}

	needle := strings.ToLower(term)
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if (r.Title != "" && strings.Contains(strings.ToLower(r.Title), needle)) ||
			(r.Topic != "" && strings.Contains(strings.ToLower(r.Topic), needle)) {
			out = append(out, r)
		}
	}
	return out
}
