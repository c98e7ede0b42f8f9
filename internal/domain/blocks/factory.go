package blocks

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var nonAnchor = regexp.MustCompile(`[^a-z0-9]+`)

// Anchor derives a URL-friendly fragment id from heading text.
// Example: "Hello World!" -> "hello-world"
func Anchor(text string) string {
	a := nonAnchor.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(a, "-")
}

// Partial is the attribute bag accepted by New. Keys absent from the
// bag fall back to the type's documented default; keys the type does
// not know are dropped.
type Partial map[string]any

// New constructs a block of the given type at the given position,
// filling every content field the type requires with its default when
// the partial bag does not supply it.
func New(t Type, partial Partial, position int) (Block, error) {
	if !KnownType(t) {
		return Block{}, &ValidationError{Field: "type", Reason: "unknown block type " + string(t)}
	}

	now := time.Now().UTC()
	b := Block{
		ID:        uuid.NewString(),
		Type:      t,
		Position:  position,
		Content:   defaultContent(t, partial),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return b, nil
}

func defaultContent(t Type, p Partial) Content {
	switch t {
	case Paragraph:
		return &ParagraphContent{
			Text:  p.str("text", ""),
			Marks: p.strings("marks"),
		}
	case Heading1, Heading2, Heading3, Heading4:
		text := p.str("text", "")
		anchor := p.str("anchor", "")
		if anchor == "" {
			anchor = Anchor(text)
		}
		return &HeadingContent{Text: text, Anchor: anchor}
	case BulletList, NumberedList:
		return &ListItemContent{
			Text:  p.str("text", ""),
			Marks: p.strings("marks"),
		}
	case Toggle:
		return &ToggleContent{
			Summary: p.str("summary", "Toggle"),
			IsOpen:  p.boolean("isOpen", false),
		}
	case Quote:
		return &QuoteContent{
			Text:   p.str("text", ""),
			Author: p.str("author", ""),
		}
	case Callout:
		return &CalloutContent{
			Icon:  p.str("icon", "💡"),
			Color: p.str("color", "blue"),
			Text:  p.str("text", ""),
		}
	case Divider:
		return &DividerContent{}
	case Code:
		return &CodeContent{
			Language:        p.str("language", "javascript"),
			Code:            p.str("code", ""),
			Filename:        p.str("filename", ""),
			ShowLineNumbers: p.boolean("showLineNumbers", true),
			HighlightLines:  p.ints("highlightLines"),
		}
	case Math:
		return &MathContent{
			Latex:       p.str("latex", ""),
			Display:     p.str("display", "block"),
			Description: p.str("description", ""),
		}
	case Image:
		return &ImageContent{
			URL:     p.str("url", ""),
			Alt:     p.str("alt", ""),
			Caption: p.str("caption", ""),
			Width:   p.intPtr("width"),
			Height:  p.intPtr("height"),
		}
	case Mindmap:
		return &MindmapContent{
			MindmapID: p.strPtr("mindmapId"),
			Title:     p.str("title", "Mind Map"),
			Thumbnail: p.strPtr("thumbnail"),
		}
	case Table:
		return &TableContent{Rows: p.rows("rows")}
	}
	// unreachable: New rejects unknown types first
	return nil
}

// Validate is a structural check only: id, type and content must be
// present and the type must be in the enumeration. Content shape is the
// factory's responsibility at construction, not re-checked here.
func Validate(b Block) bool {
	if b.ID == "" || b.Content == nil {
		return false
	}
	return KnownType(b.Type)
}

// ---------- partial bag accessors

func (p Partial) str(key, def string) string {
	if v, ok := p[key].(string); ok && v != "" {
		return v
	}
	return def
}

func (p Partial) strPtr(key string) *string {
	if v, ok := p[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

func (p Partial) boolean(key string, def bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return def
}

func (p Partial) intPtr(key string) *int {
	switch v := p[key].(type) {
	case int:
		return &v
	case float64: // JSON numbers decode as float64
		n := int(v)
		return &n
	}
	return nil
}

func (p Partial) strings(key string) []string {
	out := []string{}
	switch v := p[key].(type) {
	case []string:
		out = append(out, v...)
	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

func (p Partial) ints(key string) []int {
	out := []int{}
	switch v := p[key].(type) {
	case []int:
		out = append(out, v...)
	case []any:
		for _, e := range v {
			if f, ok := e.(float64); ok {
				out = append(out, int(f))
			}
		}
	}
	return out
}

func (p Partial) rows(key string) [][]string {
	out := [][]string{}
	switch v := p[key].(type) {
	case [][]string:
		out = append(out, v...)
	case []any:
		for _, e := range v {
			if cells, ok := e.([]any); ok {
				row := make([]string, 0, len(cells))
				for _, c := range cells {
					if s, ok := c.(string); ok {
						row = append(row, s)
					}
				}
				out = append(out, row)
			}
		}
	}
	return out
}
