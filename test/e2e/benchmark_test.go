package e2e_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonsift/internal/indexer"
	"github.com/mcncl/jsonsift/internal/models"
	"github.com/mcncl/jsonsift/internal/projector"
	"github.com/mcncl/jsonsift/internal/selection"
)

// generateNestedValue creates a deeply nested JSON structure for benchmarking
func generateNestedValue(depth int, width int) models.JSONValue {
	if depth <= 0 {
		return models.JSONObject{
			"leaf_value": "data",
			"count":      "42",
			"enabled":    true,
		}
	}

	result := make(models.JSONObject)
	for i := 0; i < width; i++ {
		key := fmt.Sprintf("nested_%d_%d", depth, i)
		result[key] = generateNestedValue(depth-1, width)
	}
	return result
}

// generateWideArray creates an array of many similar objects; all elements
// collapse onto a handful of merged "[]" paths.
func generateWideArray(count int) models.JSONValue {
	rows := make(models.JSONArray, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, models.JSONObject{
			"id":     fmt.Sprintf("%d", i),
			"name":   fmt.Sprintf("row %d", i),
			"active": i%2 == 0,
		})
	}
	return models.JSONObject{"rows": rows}
}

func BenchmarkIndexer_DeepNesting(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping benchmark in short mode")
	}
	root := generateNestedValue(5, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		entries := indexer.Build(root)
		require.NotEmpty(b, entries)
	}
}

func BenchmarkIndexer_WideArray(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping benchmark in short mode")
	}
	root := generateWideArray(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		entries := indexer.Build(root)
		require.Len(b, entries, 5)
	}
}

func BenchmarkProjector_FullSelection(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping benchmark in short mode")
	}
	root := generateNestedValue(5, 4)
	sel := selection.All(indexer.Build(root))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, ok := projector.Filter(root, sel)
		require.True(b, ok)
	}
}

func BenchmarkProjector_SparseSelection(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping benchmark in short mode")
	}
	root := generateWideArray(10000)
	entries := indexer.Build(root)
	sel := selection.Toggle(selection.New(), "rows.[].id", entries)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, ok := projector.Filter(root, sel)
		require.True(b, ok)
	}
}
