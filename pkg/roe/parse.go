package roe

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber converts a loosely typed JSON value into a float64. Nil, empty
// or non-numeric input, booleans and non-finite values yield def.
func ParseNumber(v any, def float64) float64 {
	var f float64

	switch x := v.(type) {
	case nil:
		return def
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		return ParseNumber(string(x), def)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return def
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return def
		}
		f = d.InexactFloat64()
	default:
		return def
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}
