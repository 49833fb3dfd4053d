package pipeline

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-records-dashboard/internal/model"
)

func TestExportCSV_EmptyIsNoop(t *testing.T) {
	data, ok := ExportCSV(nil)
	assert.False(t, ok)
	assert.Nil(t, data)

	data, ok = ExportCSV([]model.Record{})
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestExportCSV_QuotesEveryField(t *testing.T) {
	data, ok := ExportCSV([]model.Record{rec("a", 1.0, "b", "x,y")})
	require.True(t, ok)
	assert.Equal(t, "\"a\",\"b\"\n\"1\",\"x,y\"", string(data))
}

func TestExportCSV_EscapesQuotesAndNulls(t *testing.T) {
	records := []model.Record{
		rec("title", `say "hi"`, "end_year", nil),
		rec("title", "second", "end_year", 2020.0, "extra", "ignored"),
		rec("end_year", 2021.0),
	}

	data, ok := ExportCSV(records)
	require.True(t, ok)
	assert.Equal(t,
		"\"title\",\"end_year\"\n"+
			"\"say \"\"hi\"\"\",\"\"\n"+
			"\"second\",\"2020\"\n"+
			"\"\",\"2021\"",
		string(data))
}

func TestExportCSV_FollowsDecodedKeyOrder(t *testing.T) {
	records, _, err := DecodeRecords([]byte(`[{"z":1,"a":{"k":"v"}}]`))
	require.NoError(t, err)

	data, ok := ExportCSV(records)
	require.True(t, ok)
	assert.Equal(t, "\"z\",\"a\"\n\"1\",\"{\"\"k\"\":\"\"v\"\"}\"", string(data))
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	n, err := ExportJSON(&buf, []model.Record{rec("a", 1.0)})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var out struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 1.0, out.Data[0]["a"])
}

func TestExportResult_String(t *testing.T) {
	r := ExportResult{
		Type:        "csv",
		Path:        "output/records.csv",
		RecordCount: 3,
		Bytes:       120,
		ExportedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "3 records as csv to output/records.csv (120 bytes) at 2024-05-01T12:00:00Z", r.String())
}

func TestWriteCSV_NestedValuesUseStringForm(t *testing.T) {
	records := []model.Record{rec("tags", []interface{}{"a", "b"}, "meta", map[string]interface{}{"k": 1.0})}

	var buf bytes.Buffer
	_, err := WriteCSV(&buf, records)
	require.NoError(t, err)
	assert.Equal(t, "\"tags\",\"meta\"\n\"a,b\",\"[object Object]\"", buf.String())
}
