// Package indexer derives the key-path index from a JSON document: a flat,
// deduplicated list of every addressable container and leaf path, annotated
// with display metadata for hierarchical rendering.
package indexer

import (
	"sort"

	"github.com/mcncl/jsonsift/internal/keypath"
	"github.com/mcncl/jsonsift/internal/models"
)

// Build walks the document and returns its PathEntry index, sorted by path.
// All elements of an array share a single "[]" path segment, so sibling
// elements with differing shapes are unioned into one subtree. A scalar root,
// or an empty object/array root, yields an empty index; callers decide
// whether that is an error.
func Build(root models.JSONValue) []models.PathEntry {
	b := &builder{seen: make(map[string]struct{})}
	b.walk(root, "")

	sort.Slice(b.entries, func(i, j int) bool {
		return b.entries[i].Path < b.entries[j].Path
	})
	return b.entries
}

type builder struct {
	seen    map[string]struct{}
	entries []models.PathEntry
}

func (b *builder) walk(node models.JSONValue, path string) {
	switch v := node.(type) {
	case models.JSONObject:
		// Sorted keys keep the walk deterministic regardless of map order.
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			childPath := keypath.Join(path, key)
			b.emit(childPath)
			b.walk(v[key], childPath)
		}
	case models.JSONArray:
		elementPath := keypath.Join(path, keypath.ArraySegment)
		// The element slot is addressable even at the root, where the array
		// itself has no path. An empty root array stays unindexed so the
		// caller reports the document as having no keys.
		if path != "" || len(v) > 0 {
			b.emit(elementPath)
		}
		for _, element := range v {
			b.walk(element, elementPath)
		}
	}
	// Scalars and null contribute no entries of their own; they are
	// addressed via the path emitted by their enclosing container.
}

// emit records an entry for the path unless one exists already. Ancestors are
// always emitted before descendants, so the parent lookup only has to walk up
// until it finds a recorded path.
func (b *builder) emit(path string) {
	if _, ok := b.seen[path]; ok {
		return
	}
	b.seen[path] = struct{}{}

	parent := keypath.Parent(path)
	for parent != "" {
		if _, ok := b.seen[parent]; ok {
			break
		}
		parent = keypath.Parent(parent)
	}

	b.entries = append(b.entries, models.PathEntry{
		Path:        path,
		DisplayName: keypath.DisplayName(path),
		Depth:       keypath.Depth(path),
		ParentPath:  parent,
	})
}
