// Package notion consumes content produced by the Notion API: the
// hierarchical block tree a synced article stores verbatim, and the
// read path that renders that tree to HTML.
package notion

import "encoding/json"

// SyncedContent is the shape an article stores after a sync: the page
// object verbatim plus the flat, ordered block tree.
type SyncedContent struct {
	Page   json.RawMessage `json:"page"`
	Blocks []Block         `json:"blocks"`
}

// Block is one node of the foreign tree. The type-specific payload
// lives under its own key, mirroring the wire shape; Children is the
// uniform child edge the sync client fills for every container block,
// independent of type.
type Block struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	HasChildren bool   `json:"has_children"`

	Children []Block `json:"children,omitempty"`

	Paragraph        *RichTextValue `json:"paragraph,omitempty"`
	Heading1         *RichTextValue `json:"heading_1,omitempty"`
	Heading2         *RichTextValue `json:"heading_2,omitempty"`
	Heading3         *RichTextValue `json:"heading_3,omitempty"`
	BulletedListItem *RichTextValue `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextValue `json:"numbered_list_item,omitempty"`
	ToDo             *ToDoValue     `json:"to_do,omitempty"`
	Toggle           *RichTextValue `json:"toggle,omitempty"`
	Quote            *RichTextValue `json:"quote,omitempty"`
	Callout          *CalloutValue  `json:"callout,omitempty"`
	Code             *CodeValue     `json:"code,omitempty"`
	Equation         *EquationValue `json:"equation,omitempty"`
	Image            *FileValue     `json:"image,omitempty"`
	Video            *FileValue     `json:"video,omitempty"`
	File             *FileValue     `json:"file,omitempty"`
	Bookmark         *LinkValue     `json:"bookmark,omitempty"`
	Embed            *LinkValue     `json:"embed,omitempty"`
	LinkPreview      *LinkValue     `json:"link_preview,omitempty"`
	TableRow         *TableRowValue `json:"table_row,omitempty"`
}

// RichText is one styled run of text.
type RichText struct {
	Type        string         `json:"type,omitempty"`
	PlainText   string         `json:"plain_text"`
	Href        *string        `json:"href,omitempty"`
	Annotations Annotations    `json:"annotations"`
	Equation    *EquationValue `json:"equation,omitempty"`
}

// Annotations is the additive styling bag on a run.
type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

type RichTextValue struct {
	RichText []RichText `json:"rich_text"`
	Color    string     `json:"color,omitempty"`
}

type ToDoValue struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
}

type CalloutValue struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
	Color    string     `json:"color,omitempty"`
}

type CodeValue struct {
	RichText []RichText `json:"rich_text"`
	Caption  []RichText `json:"caption,omitempty"`
	Language string     `json:"language"`
}

type EquationValue struct {
	Expression string `json:"expression"`
}

type Icon struct {
	Emoji string `json:"emoji,omitempty"`
}

// FileValue carries either an uploaded file or an external URL.
type FileValue struct {
	File     *FileRef   `json:"file,omitempty"`
	External *FileRef   `json:"external,omitempty"`
	Caption  []RichText `json:"caption,omitempty"`
	Name     string     `json:"name,omitempty"`
}

func (f *FileValue) URL() string {
	if f == nil {
		return ""
	}
	if f.File != nil {
		return f.File.URL
	}
	if f.External != nil {
		return f.External.URL
	}
	return ""
}

type FileRef struct {
	URL string `json:"url"`
}

type LinkValue struct {
	URL     string     `json:"url"`
	Caption []RichText `json:"caption,omitempty"`
}

type TableRowValue struct {
	Cells [][]RichText `json:"cells"`
}
