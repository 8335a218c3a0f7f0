package planner

import (
	"go.uber.org/zap"

	"tripwise/models"
	"tripwise/utils"
)

// NormalizeRecords converts raw upstream records into canonical items. A
// record whose price cannot be resolved from any candidate is dropped; losing
// individual records is expected with uncontrolled upstream schemas and is
// never an error. Input order is preserved and nothing is deduplicated.
func NormalizeRecords(records []models.RawRecord, fields FieldCandidates) []models.Item {
	items := make([]models.Item, 0, len(records))
	for _, record := range records {
		price, ok := ResolvePrice(record, fields.Price)
		if !ok {
			utils.RecordsDroppedTotal.Inc()
			zap.L().Debug("dropping record without resolvable price", zap.Any("record_keys", recordKeys(record)))
			continue
		}

		item := models.Item{
			Price:    price,
			MinPrice: price,
			MaxPrice: price,
			Raw:      record,
		}

		if priceRange, ok := record["price_range"].(map[string]any); ok {
			if min, ok := coerceFirst(priceRange, "min", "from"); ok {
				item.MinPrice = min
			}
			if max, ok := coerceFirst(priceRange, "max", "to"); ok {
				item.MaxPrice = max
			}
		}

		if name, ok := ResolveString(record, fields.Name); ok {
			item.Name = name
		}
		if location, ok := ResolveLocation(record, fields.Location); ok {
			item.Location = location
		}
		if url, ok := ResolveString(record, fields.URL); ok {
			item.URL = url
		}
		if id, ok := record["id"]; ok {
			if n, ok := CoercePrice(id); ok {
				intID := int(n)
				item.ID = &intID
			}
		}

		items = append(items, item)
	}
	return items
}

func coerceFirst(record map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if value, ok := record[key]; ok {
			if n, ok := CoercePrice(value); ok {
				return n, true
			}
		}
	}
	return 0, false
}

func recordKeys(record models.RawRecord) []string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	return keys
}
