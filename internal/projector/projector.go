// Package projector reconstructs a filtered JSON value from a document and a
// selection of key paths. It mirrors the indexer's path construction exactly,
// so paths computed while filtering match the selection set bit-for-bit.
package projector

import (
	"sort"

	"github.com/mcncl/jsonsift/internal/keypath"
	"github.com/mcncl/jsonsift/internal/models"
	"github.com/mcncl/jsonsift/internal/selection"
)

// Filter projects the document onto the selection. The boolean reports
// whether anything was kept; when it is false the filtered result is absent
// and callers should surface JSON null. The input value is never modified.
func Filter(value models.JSONValue, sel selection.Set) (models.JSONValue, bool) {
	return filter(value, sel, "")
}

func filter(value models.JSONValue, sel selection.Set, path string) (models.JSONValue, bool) {
	switch v := value.(type) {
	case models.JSONArray:
		elementPath := keypath.Join(path, keypath.ArraySegment)
		result := make(models.JSONArray, 0, len(v))
		for _, element := range v {
			if kept, ok := filter(element, sel, elementPath); ok {
				result = append(result, kept)
			}
		}
		// Elements that filtered to nothing are dropped, but the surviving
		// ones keep their original order. An explicitly selected array is
		// kept even when it ends up empty.
		if len(result) > 0 || sel.Has(path) {
			return result, true
		}
		return nil, false
	case models.JSONObject:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		result := make(models.JSONObject)
		for _, key := range keys {
			childPath := keypath.Join(path, key)
			if !sel.HasWithin(childPath) {
				continue
			}
			if kept, ok := filter(v[key], sel, childPath); ok {
				result[key] = kept
			}
		}
		if len(result) > 0 || sel.Has(path) {
			return result, true
		}
		return nil, false
	default:
		// Scalars and null survive only when their own path is selected.
		if sel.Has(path) {
			return v, true
		}
		return nil, false
	}
}
