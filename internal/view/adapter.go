// Package view normalizes rows read from the denormalized word_records
// projection. Each aggregate column arrives as a JSON-array-encoded string
// (or already-structured array); the adapter decodes it and collapses
// duplicates before the record reaches a client.
package view

import (
	"encoding/json"
	"fmt"

	"mondict/internal/models"
)

// DecodeAggregate turns a raw aggregate column value into a deduplicated
// array. Three input shapes are accepted:
//   - an array ([]interface{}): deduplicated and returned
//   - a JSON-array-encoded string: parsed, then deduplicated
//   - anything else, including un-parseable strings: returned unchanged
//
// Malformed values are forwarded as-is rather than failing the request,
// since older reference data predates strict encoding.
func DecodeAggregate(raw interface{}) interface{} {
	switch v := raw.(type) {
	case nil:
		return nil
	case []interface{}:
		return Dedup(v)
	case string:
		var parsed []interface{}
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return v
		}
		return Dedup(parsed)
	case []byte:
		var parsed []interface{}
		if err := json.Unmarshal(v, &parsed); err != nil {
			return string(v)
		}
		return Dedup(parsed)
	default:
		return raw
	}
}

// Dedup keeps one occurrence of each distinct value. The result preserves
// first-occurrence order, but callers must treat it as a set.
func Dedup(values []interface{}) []interface{} {
	seen := make(map[string]bool, len(values))
	result := make([]interface{}, 0, len(values))
	for _, v := range values {
		key := fmt.Sprintf("%T:%v", v, v)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, v)
	}
	return result
}

// NormalizeRecord applies DecodeAggregate to every aggregate field of a
// word record. Every read path goes through here so that clients always
// see the same field set decoded the same way.
func NormalizeRecord(rec *models.WordRecord) {
	rec.PosIDs = DecodeAggregate(rec.PosIDs)
	rec.PosENNames = DecodeAggregate(rec.PosENNames)
	rec.PosMMNames = DecodeAggregate(rec.PosMMNames)
	rec.DefinitionIDs = DecodeAggregate(rec.DefinitionIDs)
	rec.Definitions = DecodeAggregate(rec.Definitions)
	rec.Examples = DecodeAggregate(rec.Examples)
	rec.CategoryIDs = DecodeAggregate(rec.CategoryIDs)
	rec.Synonyms = DecodeAggregate(rec.Synonyms)
}

// NormalizeRecords normalizes a result set in place
func NormalizeRecords(recs []models.WordRecord) {
	for i := range recs {
		NormalizeRecord(&recs[i])
	}
}
