// Package session owns the mutable state around the filtering core: the
// loaded document, its key-path index, the current selection, and the
// search/collapse display state. The core algorithms stay pure; the session
// passes state in and stores what comes back.
package session

import (
	"github.com/google/uuid"

	"github.com/mcncl/jsonsift/internal/config"
	"github.com/mcncl/jsonsift/internal/errors"
	"github.com/mcncl/jsonsift/internal/formatter"
	"github.com/mcncl/jsonsift/internal/indexer"
	"github.com/mcncl/jsonsift/internal/models"
	"github.com/mcncl/jsonsift/internal/projector"
	"github.com/mcncl/jsonsift/internal/render"
	"github.com/mcncl/jsonsift/internal/selection"
)

// Session is one document's editing state. Zero or one document is loaded at
// a time; loading replaces all prior state wholesale.
type Session struct {
	id        uuid.UUID
	cfg       *config.Config
	doc       models.Document
	loaded    bool
	entries   []models.PathEntry
	sel       selection.Set
	collapsed map[string]struct{}
	search    string
}

// New creates an empty session. A nil config uses the defaults.
func New(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Session{
		id:        uuid.New(),
		cfg:       cfg,
		sel:       selection.New(),
		collapsed: make(map[string]struct{}),
	}
}

// ID returns the session's identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Loaded reports whether a document is currently loaded.
func (s *Session) Loaded() bool {
	return s.loaded
}

// Load indexes the document and initializes the selection to every path.
// If the document yields no addressable keys the session reverts to the
// no-document state and an index error wrapping ErrEmptyDocument is returned.
func (s *Session) Load(doc models.Document) error {
	entries := indexer.Build(doc.Root)
	if len(entries) == 0 {
		s.reset()
		return errors.NewIndexError("no keys found in document", errors.ErrEmptyDocument)
	}

	s.doc = doc
	s.loaded = true
	s.entries = entries
	s.sel = selection.All(entries)
	s.collapsed = make(map[string]struct{})
	s.search = ""
	return nil
}

func (s *Session) reset() {
	s.doc = models.Document{}
	s.loaded = false
	s.entries = nil
	s.sel = selection.New()
	s.collapsed = make(map[string]struct{})
	s.search = ""
}

// Entries returns the key-path index of the loaded document.
func (s *Session) Entries() []models.PathEntry {
	return s.entries
}

// Selection returns a copy of the currently selected paths.
func (s *Session) Selection() selection.Set {
	return s.sel.Clone()
}

// Toggle flips the selection state of path. Paths not present in the index
// are rejected with an input error wrapping ErrUnknownPath.
func (s *Session) Toggle(path string) error {
	if !s.hasEntry(path) {
		return errors.NewInputError("unknown path '"+path+"'", errors.ErrUnknownPath)
	}
	s.sel = selection.Toggle(s.sel, path, s.entries)
	return nil
}

func (s *Session) hasEntry(path string) bool {
	for _, entry := range s.entries {
		if entry.Path == path {
			return true
		}
	}
	return false
}

// SelectAll selects every path in the index.
func (s *Session) SelectAll() {
	s.sel = selection.All(s.entries)
}

// DeselectAll clears the selection.
func (s *Session) DeselectAll() {
	s.sel = selection.New()
}

// SetSearch sets the search term for VisibleEntries.
func (s *Session) SetSearch(term string) {
	s.search = term
}

// VisibleEntries returns the entries matching the current search term.
func (s *Session) VisibleEntries() []models.PathEntry {
	return render.Match(s.entries, s.search, s.cfg.Search.CaseSensitive)
}

// ToggleCollapse collapses or expands a container path in the tree view.
func (s *Session) ToggleCollapse(path string) error {
	if !s.hasEntry(path) {
		return errors.NewInputError("unknown path '"+path+"'", errors.ErrUnknownPath)
	}
	if _, ok := s.collapsed[path]; ok {
		delete(s.collapsed, path)
	} else {
		s.collapsed[path] = struct{}{}
	}
	return nil
}

// Filtered projects the document onto the current selection. It returns nil
// when no document is loaded or nothing is kept.
func (s *Session) Filtered() models.JSONValue {
	if !s.loaded {
		return nil
	}
	result, ok := projector.Filter(s.doc.Root, s.sel)
	if !ok {
		return nil
	}
	return result
}

// RenderTree renders the visible entries as an ASCII tree.
func (s *Session) RenderTree() string {
	return render.Tree(s.VisibleEntries(), s.sel, s.collapsed, s.cfg.Display)
}

// RenderList renders the visible entries as flat marker-and-path lines.
func (s *Session) RenderList() string {
	return render.List(s.VisibleEntries(), s.sel, s.cfg.Display)
}

// ExportName returns the download file name for the loaded document, derived
// from its source name per the output config.
func (s *Session) ExportName() string {
	return s.cfg.ExportName(s.doc.SourceName)
}

// Export serializes the filtered result as pretty-printed JSON. It fails
// with an export error wrapping ErrNoData when no document is loaded or the
// selection keeps nothing.
func (s *Session) Export() (string, error) {
	if !s.loaded {
		return "", errors.NewExportError("no document loaded", errors.ErrNoData)
	}
	result, ok := projector.Filter(s.doc.Root, s.sel)
	if !ok {
		return "", errors.NewExportError("selection keeps no paths", errors.ErrNoData)
	}
	return formatter.NewFormatterWithIndent(s.cfg.Output.IndentWidth).Format(result)
}
