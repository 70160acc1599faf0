// Package keypath defines the dot-joined path grammar used to address nodes
// in a JSON document. Object keys are joined with ".", and the literal
// segment "[]" stands for "any element of this array", so all elements of an
// array share a single path. The indexer, selection and projector all build
// paths through this package so their path strings match exactly.
package keypath

import "strings"

// Separator joins path segments.
const Separator = "."

// ArraySegment is the literal segment representing any element of an array.
const ArraySegment = "[]"

// Join appends a segment to a path prefix. An empty prefix yields the bare
// segment, so top-level keys have single-segment paths.
func Join(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + Separator + segment
}

// Split breaks a path into its segments. The empty path has no segments.
func Split(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, Separator)
}

// Depth returns the number of segments above the path's last segment.
// Top-level paths have depth 0.
func Depth(path string) int {
	return len(Split(path)) - 1
}

// Parent returns the path with its last segment removed, or the empty string
// for top-level paths.
func Parent(path string) string {
	idx := strings.LastIndex(path, Separator)
	if idx < 0 {
		return ""
	}
	return path[:idx]
}

// DisplayName returns the label shown for a path: its last segment, prefixed
// with "[]." when the enclosing container is an array-element path.
func DisplayName(path string) string {
	segments := Split(path)
	if len(segments) == 0 {
		return ""
	}
	last := segments[len(segments)-1]
	if len(segments) >= 2 && segments[len(segments)-2] == ArraySegment {
		return ArraySegment + Separator + last
	}
	return last
}

// HasPrefix reports whether prefix addresses path itself or one of its
// ancestors. The comparison is segment-aware, so "item" is not a prefix of
// "item2.name" even though it is a textual prefix.
func HasPrefix(path, prefix string) bool {
	if prefix == "" {
		return true
	}
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+Separator)
}
