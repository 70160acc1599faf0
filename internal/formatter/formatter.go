package formatter

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/mcncl/jsonsift/internal/models"
)

// DefaultIndentWidth is the number of spaces used per nesting level.
const DefaultIndentWidth = 2

// Formatter serializes JSON values to canonical pretty-printed text.
type Formatter struct {
	indent string
}

// NewFormatter creates a Formatter with the default 2-space indentation.
func NewFormatter() *Formatter {
	return NewFormatterWithIndent(DefaultIndentWidth)
}

// NewFormatterWithIndent creates a Formatter with a custom indent width.
// Widths below one fall back to the default.
func NewFormatterWithIndent(width int) *Formatter {
	if width < 1 {
		width = DefaultIndentWidth
	}
	return &Formatter{indent: strings.Repeat(" ", width)}
}

// Format renders the value as pretty-printed JSON with a trailing newline.
// A nil value renders as "null", the explicit nothing-selected signal.
func (f *Formatter) Format(value models.JSONValue) (string, error) {
	data, err := json.MarshalIndent(value, "", f.indent)
	if err != nil {
		return "", fmt.Errorf("failed to serialize JSON: %w", err)
	}
	return string(data) + "\n", nil
}
