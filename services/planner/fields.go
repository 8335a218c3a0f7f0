package planner

import (
	"strconv"
	"strings"

	"tripwise/models"
)

// priceRangeKeys are probed inside a nested price_range object, in order.
var priceRangeKeys = []string{"min", "from", "start", "low", "price", "amount", "minimum"}

// locationSubKeys are probed when a location candidate holds a nested object,
// e.g. {"city": {"name": "Riyadh"}}.
var locationSubKeys = []string{"name", "city", "region", "address"}

// ResolveString returns the first candidate key whose value is a non-empty
// string. The boolean reports whether any candidate resolved.
func ResolveString(record models.RawRecord, candidates []string) (string, bool) {
	for _, key := range candidates {
		value, ok := record[key]
		if !ok {
			continue
		}
		if s, ok := value.(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed, true
			}
		}
	}
	return "", false
}

// ResolveLocation is ResolveString plus support for nested location objects.
func ResolveLocation(record models.RawRecord, candidates []string) (string, bool) {
	for _, key := range candidates {
		value, ok := record[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed, true
			}
		case map[string]any:
			for _, subKey := range locationSubKeys {
				if s, ok := v[subKey].(string); ok {
					if trimmed := strings.TrimSpace(s); trimmed != "" {
						return trimmed, true
					}
				}
			}
		}
	}
	return "", false
}

// ResolvePrice returns the first parsable price among the candidate keys.
// When the flat candidates fail it probes a nested price_range object, then
// the cheapest entry of a nested foods list (restaurant records keep their
// menu there). The boolean reports whether a price was resolvable at all.
func ResolvePrice(record models.RawRecord, candidates []string) (float64, bool) {
	for _, key := range candidates {
		if value, ok := record[key]; ok {
			if price, ok := CoercePrice(value); ok {
				return price, true
			}
		}
	}

	if priceRange, ok := record["price_range"].(map[string]any); ok {
		for _, key := range priceRangeKeys {
			if value, ok := priceRange[key]; ok {
				if price, ok := CoercePrice(value); ok {
					return price, true
				}
			}
		}
	}

	if price, ok := cheapestFoodPrice(record, candidates); ok {
		return price, true
	}

	return 0, false
}

// cheapestFoodPrice scans a nested foods collection ({"foods": [...]} or
// {"foods": {"data": [...]}}) and returns the lowest resolvable entry price.
func cheapestFoodPrice(record models.RawRecord, candidates []string) (float64, bool) {
	var entries []any
	switch foods := record["foods"].(type) {
	case []any:
		entries = foods
	case map[string]any:
		if data, ok := foods["data"].([]any); ok {
			entries = data
		}
	}

	best := 0.0
	found := false
	for _, entry := range entries {
		rec, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if price, ok := ResolvePrice(rec, candidates); ok {
			if !found || price < best {
				best = price
				found = true
			}
		}
	}
	return best, found
}

// CoercePrice converts an upstream scalar into a float64 price. Numeric
// strings may carry thousands separators ("1,250") or a currency suffix
// ("150 SAR"); only a leading numeric prefix is required.
func CoercePrice(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if v < 0 {
			return 0, false
		}
		return v, true
	case int:
		if v < 0 {
			return 0, false
		}
		return float64(v), true
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
		if s == "" {
			return 0, false
		}
		if price, err := strconv.ParseFloat(s, 64); err == nil && price >= 0 {
			return price, true
		}
		if prefix := numericPrefix(s); prefix != "" {
			if price, err := strconv.ParseFloat(prefix, 64); err == nil && price >= 0 {
				return price, true
			}
		}
	}
	return 0, false
}

// numericPrefix extracts the leading digits-and-dot run of a string.
func numericPrefix(s string) string {
	end := 0
	for end < len(s) {
		c := s[end]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		end++
	}
	return s[:end]
}
