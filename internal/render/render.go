// Package render turns a key-path index into display structures. It is a
// pure presentation layer: every function maps (entries, selection, collapse
// state) to text without touching the document or the filtering core.
package render

import (
	"strings"

	"github.com/disiqueira/gotree/v3"

	"github.com/mcncl/jsonsift/internal/config"
	"github.com/mcncl/jsonsift/internal/models"
	"github.com/mcncl/jsonsift/internal/selection"
)

// Tree renders the index as an ASCII tree with selection markers. Children
// of collapsed paths are hidden. Entries must be sorted by path, as the
// indexer returns them, so parents precede their children.
func Tree(entries []models.PathEntry, sel selection.Set, collapsed map[string]struct{}, display config.DisplayConfig) string {
	root := gotree.New(display.RootLabel)
	nodes := make(map[string]gotree.Tree, len(entries))
	hidden := make(map[string]struct{})

	for _, entry := range entries {
		parent := root
		if p := entry.ParentPath; p != "" {
			_, parentCollapsed := collapsed[p]
			_, parentHidden := hidden[p]
			if parentCollapsed || parentHidden {
				hidden[entry.Path] = struct{}{}
				continue
			}
			// A parent absent from entries (filtered out by search) leaves
			// the child attached to the root.
			if node, ok := nodes[p]; ok {
				parent = node
			}
		}

		marker := display.MarkerDeselected
		if sel.Has(entry.Path) {
			marker = display.MarkerSelected
		}
		nodes[entry.Path] = parent.Add(marker + " " + entry.DisplayName)
	}

	return root.Print()
}

// List renders the index as flat lines of "marker path", one entry per line,
// for scripting against.
func List(entries []models.PathEntry, sel selection.Set, display config.DisplayConfig) string {
	var b strings.Builder
	for _, entry := range entries {
		marker := display.MarkerDeselected
		if sel.Has(entry.Path) {
			marker = display.MarkerSelected
		}
		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(entry.Path)
		b.WriteString("\n")
	}
	return b.String()
}

// Match returns the entries whose path or display name contains the search
// term. An empty term matches everything.
func Match(entries []models.PathEntry, term string, caseSensitive bool) []models.PathEntry {
	if term == "" {
		return entries
	}
	if !caseSensitive {
		term = strings.ToLower(term)
	}

	matched := make([]models.PathEntry, 0, len(entries))
	for _, entry := range entries {
		path, name := entry.Path, entry.DisplayName
		if !caseSensitive {
			path = strings.ToLower(path)
			name = strings.ToLower(name)
		}
		if strings.Contains(path, term) || strings.Contains(name, term) {
			matched = append(matched, entry)
		}
	}
	return matched
}
