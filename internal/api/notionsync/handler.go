package notionsync

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"portfolio-app/config"
	"portfolio-app/database"
	"portfolio-app/internal/domain/articles"
	"portfolio-app/internal/notion"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// POST /admin/notion/sync (auth, admin)
//
// Pulls a Notion page and upserts it as an article keyed by the page
// id. The fetched block tree replaces any previously synced content.
func SyncFromNotion(c *gin.Context) {
	if config.NOTION_API_TOKEN == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Notion sync is not configured"})
		return
	}

	var input struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pageID, err := notion.ExtractPageID(input.URL)
	if err != nil {
		if errors.Is(err, notion.ErrDatabaseURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "This looks like a database URL. Paste a page URL instead."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not find a page id in that URL"})
		return
	}

	client := notion.NewClient(config.NOTION_API_TOKEN)
	ctx := c.Request.Context()

	page, rawPage, err := client.GetPage(ctx, pageID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch page from Notion", "details": err.Error()})
		return
	}

	tree, err := client.GetAllBlocks(ctx, pageID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch blocks from Notion", "details": err.Error()})
		return
	}

	content, err := json.Marshal(notion.SyncedContent{Page: rawPage, Blocks: tree})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode synced content"})
		return
	}

	md := notion.ExtractMetadata(page)
	title := md.Title
	if title == "" {
		title = "Untitled"
	}
	now := time.Now()

	var a articles.Article
	err = database.DB.Where("notion_page_id = ?", pageID).First(&a).Error
	created := false

	switch {
	case err == nil:
		updates := map[string]any{
			"title":          title,
			"excerpt":        md.Excerpt,
			"cover_image":    md.Cover,
			"tags":           articles.StringList(md.Tags),
			"published":      md.Published,
			"notion_content": json.RawMessage(content),
			"last_synced_at": &now,
		}
		if err := database.DB.Model(&a).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		created = true
		slug, err := uniqueSlug(database.DB, articles.MakeSlug(title))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate slug"})
			return
		}
		a = articles.Article{
			ID:            uuid.NewString(),
			Title:         title,
			Slug:          slug,
			Excerpt:       md.Excerpt,
			CoverImage:    md.Cover,
			Published:     md.Published,
			Tags:          articles.StringList(md.Tags),
			NotionPageID:  &pageID,
			NotionContent: content,
			LastSyncedAt:  &now,
		}
		if err := database.DB.Create(&a).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        a.ID,
		"slug":      a.Slug,
		"title":     title,
		"published": md.Published,
		"blocks":    len(tree),
		"created":   created,
		"synced_at": now,
	})
}

func uniqueSlug(db *gorm.DB, base string) (string, error) {
	var count int64
	if err := db.Model(&articles.Article{}).Where("slug = ?", base).Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}
	suffix, err := gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 6)
	if err != nil {
		return "", err
	}
	return base + "-" + suffix, nil
}
