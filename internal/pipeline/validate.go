package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go-records-dashboard/internal/model"
)

// ValidationReport counts what DecodeRecords kept and dropped
type ValidationReport struct {
	Total   int
	Valid   int
	Skipped int
}

// DecodeRecords validates a /records payload at the boundary.
// A null body is an empty set; array entries that are not objects are skipped.
func DecodeRecords(body []byte) ([]model.Record, ValidationReport, error) {
	var report ValidationReport

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []model.Record{}, report, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, report, fmt.Errorf("failed to decode records: %w", err)
	}

	records := make([]model.Record, 0, len(raw))
	for _, item := range raw {
		report.Total++
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			report.Skipped++
			continue
		}
		var rec model.Record
		if err := json.Unmarshal(item, &rec); err != nil {
			report.Skipped++
			continue
		}
		records = append(records, rec)
		report.Valid++
	}

	return records, report, nil
}
