package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go-records-dashboard/pkg/utils"
)

// Field is one raw key/value pair of a record, in the order the server sent it
type Field struct {
	Key   string
	Value interface{}
}

// Record is one report/topic entry returned by the records API.
// Categorical fields use "" for absent; numeric fields are nil when absent or malformed.
type Record struct {
	Title   string `json:"-"`
	Topic   string `json:"-"`
	Sector  string `json:"-"`
	Region  string `json:"-"`
	Country string `json:"-"`
	Pestle  string `json:"-"`
	Source  string `json:"-"`

	Intensity  *float64 `json:"-"`
	Likelihood *float64 `json:"-"`
	Relevance  *float64 `json:"-"`
	StartYear  *int     `json:"-"`
	EndYear    *int     `json:"-"`

	// Fields keeps every raw key/value in received order
	Fields []Field `json:"-"`

	// endYearSent is true when end_year arrived with a non-null value,
	// usable or not
	endYearSent bool
}

// NewRecord builds a record from ordered raw fields and coerces the known keys
func NewRecord(fields ...Field) Record {
	r := Record{Fields: fields}
	r.coerce()
	return r
}

// Get returns the raw value for key
func (r Record) Get(key string) (interface{}, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the raw keys in received order
func (r Record) Keys() []string {
	keys := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Year returns end_year, falling back to start_year only when end_year is
// missing or null. A sent but unusable end_year, or a year of 0, reports false.
func (r Record) Year() (int, bool) {
	year := r.EndYear
	if year == nil && !r.endYearSent {
		year = r.StartYear
	}
	if year == nil || *year == 0 {
		return 0, false
	}
	return *year, true
}

// UnmarshalJSON decodes a JSON object keeping its key order
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	var fields []Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected record key %v", keyTok)
		}
		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode field %q: %w", key, err)
		}
		fields = append(fields, Field{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = NewRecord(fields...)
	return nil
}

// MarshalJSON writes the raw fields back in their original order
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Record) coerce() {
	for _, f := range r.Fields {
		switch f.Key {
		case "title":
			r.Title = utils.Stringify(f.Value)
		case "topic":
			r.Topic = utils.Stringify(f.Value)
		case "sector":
			r.Sector = utils.Stringify(f.Value)
		case "region":
			r.Region = utils.Stringify(f.Value)
		case "country":
			r.Country = utils.Stringify(f.Value)
		case "pestle":
			r.Pestle = utils.Stringify(f.Value)
		case "source":
			r.Source = utils.Stringify(f.Value)
		case "intensity":
			r.Intensity = finitePtr(f.Value)
		case "likelihood":
			r.Likelihood = finitePtr(f.Value)
		case "relevance":
			r.Relevance = finitePtr(f.Value)
		case "start_year":
			r.StartYear = intPtr(f.Value)
		case "end_year":
			r.EndYear = intPtr(f.Value)
			r.endYearSent = f.Value != nil
		}
	}
}

func finitePtr(v interface{}) *float64 {
	f, ok := utils.ToFinite(v)
	if !ok {
		return nil
	}
	return &f
}

func intPtr(v interface{}) *int {
	i, ok := utils.ToInt(v)
	if !ok {
		return nil
	}
	return &i
}
