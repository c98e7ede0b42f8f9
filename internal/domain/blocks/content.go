package blocks

import (
	"encoding/json"
	"fmt"
)

type ParagraphContent struct {
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

type HeadingContent struct {
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

type ListItemContent struct {
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

type ToggleContent struct {
	Summary string `json:"summary"`
	IsOpen  bool   `json:"isOpen"`
}

type QuoteContent struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

type CalloutContent struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Text  string `json:"text"`
}

type DividerContent struct{}

type CodeContent struct {
	Language        string `json:"language"`
	Code            string `json:"code"`
	Filename        string `json:"filename"`
	ShowLineNumbers bool   `json:"showLineNumbers"`
	HighlightLines  []int  `json:"highlightLines"`
}

type MathContent struct {
	Latex       string `json:"latex"`
	Display     string `json:"display"` // "block" or "inline"
	Description string `json:"description"`
}

type ImageContent struct {
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
	Width   *int   `json:"width"`
	Height  *int   `json:"height"`
}

type MindmapContent struct {
	MindmapID *string `json:"mindmapId"`
	Title     string  `json:"title"`
	Thumbnail *string `json:"thumbnail"`
}

type TableContent struct {
	Rows [][]string `json:"rows"`
}

func (ParagraphContent) blockContent() {}
func (HeadingContent) blockContent()   {}
func (ListItemContent) blockContent()  {}
func (ToggleContent) blockContent()    {}
func (QuoteContent) blockContent()     {}
func (CalloutContent) blockContent()   {}
func (DividerContent) blockContent()   {}
func (CodeContent) blockContent()      {}
func (MathContent) blockContent()      {}
func (ImageContent) blockContent()     {}
func (MindmapContent) blockContent()   {}
func (TableContent) blockContent()     {}

// decodeContent unmarshals a stored content bag into the typed shape
// for t. The switch is exhaustive over the enumeration.
func decodeContent(t Type, raw json.RawMessage) (Content, error) {
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}

	unmarshal := func(into Content) (Content, error) {
		if err := json.Unmarshal(raw, into); err != nil {
			return nil, fmt.Errorf("decode %s content: %w", t, err)
		}
		return into, nil
	}

	switch t {
	case Paragraph:
		c := &ParagraphContent{}
		return unmarshal(c)
	case Heading1, Heading2, Heading3, Heading4:
		c := &HeadingContent{}
		return unmarshal(c)
	case BulletList, NumberedList:
		c := &ListItemContent{}
		return unmarshal(c)
	case Toggle:
		c := &ToggleContent{}
		return unmarshal(c)
	case Quote:
		c := &QuoteContent{}
		return unmarshal(c)
	case Callout:
		c := &CalloutContent{}
		return unmarshal(c)
	case Divider:
		c := &DividerContent{}
		return unmarshal(c)
	case Code:
		c := &CodeContent{}
		return unmarshal(c)
	case Math:
		c := &MathContent{}
		return unmarshal(c)
	case Image:
		c := &ImageContent{}
		return unmarshal(c)
	case Mindmap:
		c := &MindmapContent{}
		return unmarshal(c)
	case Table:
		c := &TableContent{}
		return unmarshal(c)
	default:
		return nil, fmt.Errorf("decode content: unknown block type %q", t)
	}
}
