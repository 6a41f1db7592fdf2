// Package pricing normalizes the legacy customer price field. The column
// stores either a JSON array of numbers or a comma-separated numeric list;
// every revenue computation goes through Parse.
package pricing

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Parse converts a stored price representation into a list of numbers.
// It is pure and never fails: malformed pieces are dropped silently and the
// result may be empty.
func Parse(raw string) []float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []float64{}
	}

	var value interface{}
	if err := json.Unmarshal([]byte(trimmed), &value); err != nil {
		return parseCommaSeparated(raw)
	}

	switch v := value.(type) {
	case []interface{}:
		prices := make([]float64, 0, len(v))
		for _, item := range v {
			if n, ok := toNumber(item); ok {
				prices = append(prices, n)
			}
		}
		return prices
	case nil:
		return []float64{}
	default:
		// Single scalar value: wrap it, fall back to 0 when not numeric
		if n, ok := toNumber(v); ok {
			return []float64{n}
		}
		return []float64{0}
	}
}

// Sum returns the total of all parsed prices in the stored representation
func Sum(raw string) float64 {
	var total float64
	for _, p := range Parse(raw) {
		total += p
	}
	return total
}

// parseCommaSeparated splits on commas and keeps only the numeric tokens,
// preserving order
func parseCommaSeparated(raw string) []float64 {
	parts := strings.Split(raw, ",")
	prices := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, err := strconv.ParseFloat(part, 64); err == nil {
			prices = append(prices, n)
		}
	}
	return prices
}

// toNumber coerces a decoded JSON value to a float64 where possible
func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
