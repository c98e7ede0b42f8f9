package articles

import (
	"encoding/json"
	"time"
)

// ---------- requests

type CreateArticleRequest struct {
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	CoverImage *string  `json:"cover_image"`
	Tags       []string `json:"tags"`
}

type UpdateArticleRequest struct {
	Title      *string   `json:"title"`
	Slug       *string   `json:"slug"`
	Excerpt    *string   `json:"excerpt"`
	CoverImage *string   `json:"cover_image"`
	Published  *bool     `json:"published"`
	Tags       *[]string `json:"tags"`
}

type BlockInput struct {
	ID       string          `json:"id"`
	Type     string          `json:"type" binding:"required"`
	Position int             `json:"position"`
	ParentID *string         `json:"parent_id"`
	Content  json.RawMessage `json:"content"`
}

type ReplaceBlocksRequest struct {
	Blocks []BlockInput `json:"blocks"`
}

// ---------- responses

type ArticleSummary struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Excerpt    string     `json:"excerpt"`
	CoverImage *string    `json:"cover_image,omitempty"`
	Published  bool       `json:"published"`
	Tags       []string   `json:"tags"`
	NotionSync bool       `json:"notion_sync"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	SyncedAt   *time.Time `json:"last_synced_at,omitempty"`
}

type BlockResponse struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Position int             `json:"position"`
	ParentID *string         `json:"parent_id"`
	Content  json.RawMessage `json:"content"`
}
