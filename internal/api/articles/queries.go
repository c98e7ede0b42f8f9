package articles

import (
	"portfolio-app/internal/domain/articles"

	"gorm.io/gorm"
)

func findBySlug(db *gorm.DB, slug string, publishedOnly bool) (*articles.Article, error) {
	q := db.Where("slug = ?", slug)
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var a articles.Article
	if err := q.First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func findByID(db *gorm.DB, id string) (*articles.Article, error) {
	var a articles.Article
	if err := db.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func toSummary(a articles.Article) ArticleSummary {
	tags := []string(a.Tags)
	if tags == nil {
		tags = []string{}
	}
	return ArticleSummary{
		ID:         a.ID,
		Title:      a.Title,
		Slug:       a.Slug,
		Excerpt:    a.Excerpt,
		CoverImage: a.CoverImage,
		Published:  a.Published,
		Tags:       tags,
		NotionSync: a.NotionPageID != nil,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		SyncedAt:   a.LastSyncedAt,
	}
}

func toBlockResponses(stored []articles.Block) []BlockResponse {
	out := make([]BlockResponse, 0, len(stored))
	for _, b := range stored {
		out = append(out, BlockResponse{
			ID:       b.ID,
			Type:     b.Type,
			Position: b.Position,
			ParentID: b.ParentID,
			Content:  b.Content,
		})
	}
	return out
}
