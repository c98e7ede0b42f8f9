package articles

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Article owns its metadata plus exactly one content shape: either the
// flat position-ordered Blocks rows (native editor) or the opaque
// NotionContent tree (synced from Notion). The two are mutually
// exclusive; readers dispatch on which is present, NotionContent first.
type Article struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title      string     `gorm:"not null" json:"title"`
	Slug       string     `gorm:"not null;uniqueIndex" json:"slug"`
	Excerpt    string     `json:"excerpt"`
	CoverImage *string    `json:"cover_image,omitempty"`
	Published  bool       `gorm:"not null;default:false;index" json:"published"`
	Tags       StringList `gorm:"type:jsonb" json:"tags"`

	AuthorID *uint `gorm:"index" json:"-"`

	NotionPageID  *string         `gorm:"uniqueIndex" json:"notion_page_id,omitempty"`
	NotionContent json.RawMessage `gorm:"type:jsonb" json:"notion_content,omitempty"`
	LastSyncedAt  *time.Time      `json:"last_synced_at,omitempty"`

	Blocks []Block `gorm:"foreignKey:ArticleID;references:ID;constraint:OnDelete:CASCADE;" json:"blocks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Block is the persisted row shape of one editor block: dense position
// within the article, type tag, content as a JSON bag.
type Block struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ArticleID string  `gorm:"type:uuid;not null;index:idx_blocks_article_position,priority:1" json:"article_id"`
	Position  int     `gorm:"not null;default:0;index:idx_blocks_article_position,priority:2" json:"position"`
	ParentID  *string `gorm:"type:uuid" json:"parent_id"`

	Type    string          `gorm:"not null;index" json:"type"`
	Content json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StringList stores a tag set as a JSON array column, portable across
// postgres and the sqlite test driver.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported tags column type %T", value)
	}
}
