package utils

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToFinite(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
		ok   bool
	}{
		{"float", 4.5, 4.5, true},
		{"int", 3, 3, true},
		{"numeric string", "4", 4, true},
		{"padded string", " 2.5 ", 2.5, true},
		{"json number", json.Number("7"), 7, true},
		{"nil", nil, 0, false},
		{"empty string", "", 0, false},
		{"blank string", "   ", 0, true},
		{"exponent", "1e3", 1000, true},
		{"hex", "0x10", 16, true},
		{"garbage", "x", 0, false},
		{"underscore", "1_000", 0, false},
		{"true", true, 1, true},
		{"false", false, 0, true},
		{"nan", math.NaN(), 0, false},
		{"inf string", "Inf", 0, false},
		{"object", map[string]interface{}{"a": 1}, 0, false},
		{"single element array", []interface{}{"5"}, 5, true},
		{"empty array", []interface{}{}, 0, true},
		{"pair array", []interface{}{1.0, 2.0}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFinite(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToInt(t *testing.T) {
	v, ok := ToInt(2020.0)
	assert.True(t, ok)
	assert.Equal(t, 2020, v)

	v, ok = ToInt("2021")
	assert.True(t, ok)
	assert.Equal(t, 2021, v)

	_, ok = ToInt(2020.5)
	assert.False(t, ok)

	_, ok = ToInt("")
	assert.False(t, ok)

	v, ok = ToInt(" ")
	assert.True(t, ok)
	assert.Zero(t, v)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "1", Stringify(1.0))
	assert.Equal(t, "0.25", Stringify(0.25))
	assert.Equal(t, "x,y", Stringify("x,y"))
	assert.Equal(t, "false", Stringify(false))
	assert.Equal(t, "a,b", Stringify([]interface{}{"a", "b"}))
	assert.Equal(t, ",1,2,3", Stringify([]interface{}{nil, 1.0, []interface{}{2.0, 3.0}}))
	assert.Equal(t, "[object Object]", Stringify(map[string]interface{}{"a": 1.0}))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDuration("5s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}
