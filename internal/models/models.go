package models

// JSONValue is a generic type to represent any JSON value.
// This can be a string, number, boolean, null, object, or array.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// Document holds a parsed JSON value together with metadata about where it
// came from. The root value is treated as immutable once loaded; the indexer
// and projector never modify it.
type Document struct {
	Root       JSONValue
	SourceName string // Base name of the originating file, empty for stdin
}

// PathEntry is one row in the derived key-path index. Path is the unique key
// across all entries; DisplayName, Depth and ParentPath are derived from it.
type PathEntry struct {
	Path        string
	DisplayName string
	Depth       int
	ParentPath  string // empty when no indexed ancestor exists
}
