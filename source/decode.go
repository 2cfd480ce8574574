package source

import (
	"encoding/json"
	"fmt"
	"sort"
)

// DecodeFile decodes one institution export into untyped records. Accepted
// top-level shapes:
//
//   - a JSON array of records
//   - an object with a "profiles" or "extracted_items" array
//   - an object keyed by arbitrary ids whose values are records, iterated
//     in sorted key order
//
// Entries that are not JSON objects are skipped and counted in malformed;
// only a top-level parse failure is an error.
func DecodeFile(data []byte) (records []map[string]any, malformed int, err error) {
	data = trimBOM(data)
	data = skipWhitespace(data)

	if len(data) == 0 {
		return nil, 0, nil
	}

	switch data[0] {
	case '[':
		var items []any
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, 0, fmt.Errorf("parsing JSON array: %w", err)
		}
		return collect(items)

	case '{':
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, 0, fmt.Errorf("parsing JSON object: %w", err)
		}

		for _, key := range []string{"profiles", "extracted_items"} {
			if items, ok := doc[key].([]any); ok {
				return collect(items)
			}
		}

		// Object keyed by record ids. Sorted key order keeps output
		// deterministic across runs.
		keys := make([]string, 0, len(doc))
		for k := range doc {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if rec, ok := doc[k].(map[string]any); ok {
				records = append(records, rec)
			} else {
				malformed++
			}
		}
		return records, malformed, nil

	default:
		return nil, 0, fmt.Errorf("invalid JSON: expected { or [")
	}
}

func collect(items []any) ([]map[string]any, int, error) {
	var records []map[string]any
	malformed := 0
	for _, item := range items {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		} else {
			malformed++
		}
	}
	return records, malformed, nil
}

func trimBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}

func skipWhitespace(data []byte) []byte {
	for len(data) > 0 && (data[0] == ' ' || data[0] == '\t' || data[0] == '\n' || data[0] == '\r') {
		data = data[1:]
	}
	return data
}
