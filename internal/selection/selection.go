// Package selection models the set of key paths the user wants to keep, and
// the toggle rules that preserve the ancestor-closure invariant: whenever a
// path is selected, every ancestor on its parent chain is selected too.
package selection

import (
	"sort"

	"github.com/mcncl/jsonsift/internal/keypath"
	"github.com/mcncl/jsonsift/internal/models"
)

// Set is a set of selected paths.
type Set map[string]struct{}

// New returns an empty selection.
func New() Set {
	return make(Set)
}

// All returns a selection containing every entry path in the index.
func All(entries []models.PathEntry) Set {
	s := make(Set, len(entries))
	for _, entry := range entries {
		s[entry.Path] = struct{}{}
	}
	return s
}

// Has reports whether the path is selected.
func (s Set) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// HasWithin reports whether any selected path lies at or below the given
// prefix. The projector uses this to skip subtrees with nothing selected.
func (s Set) HasWithin(prefix string) bool {
	for path := range s {
		if keypath.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Len returns the number of selected paths.
func (s Set) Len() int {
	return len(s)
}

// Paths returns the selected paths in sorted order.
func (s Set) Paths() []string {
	paths := make([]string, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Clone copies the set; toggles never mutate their input.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for path := range s {
		out[path] = struct{}{}
	}
	return out
}

// Toggle flips the selection state of path against the given index and
// returns a new set; the input set is left untouched.
//
// Deselecting a path also deselects its entire subtree, since a removed
// container implies its contents are removed. Selecting a path selects every
// ancestor on its parent chain, and, when the path is a container (has at
// least one descendant entry), its entire subtree as well. Selecting a leaf
// deliberately selects only its ancestors, never its siblings.
func Toggle(s Set, path string, entries []models.PathEntry) Set {
	out := s.Clone()

	if out.Has(path) {
		delete(out, path)
		for _, entry := range entries {
			if entry.Path != path && keypath.HasPrefix(entry.Path, path) {
				delete(out, entry.Path)
			}
		}
		return out
	}

	out[path] = struct{}{}

	byPath := make(map[string]models.PathEntry, len(entries))
	for _, entry := range entries {
		byPath[entry.Path] = entry
	}
	for parent := byPath[path].ParentPath; parent != ""; parent = byPath[parent].ParentPath {
		out[parent] = struct{}{}
	}

	if isContainer(path, entries) {
		for _, entry := range entries {
			if keypath.HasPrefix(entry.Path, path) {
				out[entry.Path] = struct{}{}
			}
		}
	}
	return out
}

// isContainer reports whether the index holds at least one entry below path.
func isContainer(path string, entries []models.PathEntry) bool {
	for _, entry := range entries {
		if entry.Path != path && keypath.HasPrefix(entry.Path, path) {
			return true
		}
	}
	return false
}
