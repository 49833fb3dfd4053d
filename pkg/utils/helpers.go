package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseDuration safely parses duration string like "30s", falling back to def
func ParseDuration(d string, def time.Duration) time.Duration {
	if d == "" {
		return def
	}
	duration, err := time.ParseDuration(d)
	if err != nil {
		return def
	}
	return duration
}

// ToFinite coerces a decoded JSON value into a finite float64 the way a
// browser's Number() does. nil and "" are absent; a whitespace-only string is 0,
// booleans are 1 and 0, arrays go through their string form, and non-numeric
// strings, objects, NaN and ±Inf are absent.
func ToFinite(v interface{}) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case []interface{}:
		parsed, ok := parseNumber(Stringify(val))
		if !ok {
			return 0, false
		}
		f = parsed
	case string:
		if val == "" {
			return 0, false
		}
		parsed, ok := parseNumber(val)
		if !ok {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseNumber parses trimmed decimal, exponent and 0x/0o/0b literals
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if strings.Contains(s, "_") {
		return 0, false
	}
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}
	// hex floats are Go syntax only
	if strings.ContainsAny(s, "xXpP") {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// ToInt coerces a value into an integer, using the same rules as ToFinite
// and additionally rejecting fractional numbers.
func ToInt(v interface{}) (int, bool) {
	f, ok := ToFinite(v)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// FormatNumber renders a float the way a browser prints a number:
// integers without a decimal point, everything else in shortest form.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Stringify turns a decoded JSON value into display text the way a browser's
// String() does: nil is "", arrays join their elements with "," and objects
// read "[object Object]".
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return FormatNumber(val)
	case json.Number:
		return val.String()
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case []interface{}:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = Stringify(item)
		}
		return strings.Join(parts, ",")
	case map[string]interface{}:
		return "[object Object]"
	default:
		return fmt.Sprint(val)
	}
}
