package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"go-records-dashboard/internal/model"
	"go-records-dashboard/pkg/utils"
)

// ExportFileName is the name of the downloaded CSV
const ExportFileName = "records.csv"

// ExportResult describes one written export file
type ExportResult struct {
	Type        string // "csv", "json"
	Path        string
	RecordCount int
	Bytes       int64
	ExportedAt  time.Time
}

// String is the one-line report of an export
func (r ExportResult) String() string {
	return fmt.Sprintf("%d records as %s to %s (%d bytes) at %s",
		r.RecordCount, r.Type, r.Path, r.Bytes, r.ExportedAt.Format(time.RFC3339))
}

// ExportCSV serializes records to CSV. It reports false, and produces nothing,
// for an empty or nil set.
func ExportCSV(records []model.Record) ([]byte, bool) {
	if len(records) == 0 {
		return nil, false
	}
	var buf bytes.Buffer
	if _, err := WriteCSV(&buf, records); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

// WriteCSV writes a header taken from the first record's keys followed by one row
// per record. Every field is quoted, embedded quotes are doubled and rows are
// joined by "\n" with no trailing newline. Records with other keys are not realigned.
func WriteCSV(w io.Writer, records []model.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	keys := records[0].Keys()
	if _, err := io.WriteString(w, quoteRow(keys)); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	recordCount := 0
	row := make([]string, len(keys))
	for _, rec := range records {
		for i, key := range keys {
			value, _ := rec.Get(key)
			row[i] = utils.Stringify(value)
		}
		if _, err := io.WriteString(w, "\n"+quoteRow(row)); err != nil {
			return recordCount, fmt.Errorf("failed to write row: %w", err)
		}
		recordCount++
	}

	return recordCount, nil
}

// ExportJSON writes records as an indented JSON array with export metadata
func ExportJSON(w io.Writer, records []model.Record) (int, error) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	exportData := map[string]interface{}{
		"export_info": map[string]interface{}{
			"exported_at":  time.Now().UTC(),
			"record_count": len(records),
			"export_type":  "records",
		},
		"data": records,
	}

	if err := encoder.Encode(exportData); err != nil {
		return 0, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return len(records), nil
}

func quoteRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
