package articles

import (
	"encoding/json"
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/articles"
	"portfolio-app/internal/domain/blocks"
	"portfolio-app/internal/notion"
	"portfolio-app/internal/render"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// GET /articles
func ListPublishedArticles(c *gin.Context) {
	var list []articles.Article
	err := database.DB.
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}

	out := make([]ArticleSummary, 0, len(list))
	for _, a := range list {
		out = append(out, toSummary(a))
	}
	c.JSON(http.StatusOK, out)
}

// GET /articles/:slug
func GetArticleBySlug(c *gin.Context) {
	a, err := findBySlug(database.DB, c.Param("slug"), true)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	resp := gin.H{"article": toSummary(*a)}

	if len(a.NotionContent) > 0 {
		resp["notion_content"] = a.NotionContent
	} else {
		var stored []articles.Block
		if err := database.DB.Where("article_id = ?", a.ID).Order("position ASC").Find(&stored).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load blocks"})
			return
		}
		resp["blocks"] = toBlockResponses(stored)
	}

	c.JSON(http.StatusOK, resp)
}

// GET /articles/:slug/html
//
// Renders the article to an HTML fragment. Synced Notion content wins
// over native blocks when both are somehow present.
func GetArticleHTML(c *gin.Context) {
	a, err := findBySlug(database.DB, c.Param("slug"), true)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	if len(a.NotionContent) > 0 {
		var synced notion.SyncedContent
		if err := json.Unmarshal(a.NotionContent, &synced); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored Notion content is corrupt"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"html": notion.Render(synced.Blocks), "source": "notion"})
		return
	}

	persister := &articles.BlockPersister{DB: database.DB}
	rows, err := persister.LoadRows(c.Request.Context(), a.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load blocks"})
		return
	}
	bs, err := blocks.Deserialize(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored blocks are corrupt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"html": render.Blocks(bs), "source": "blocks"})
}

// GET /admin/articles (auth, admin)
func ListAllArticles(c *gin.Context) {
	var list []articles.Article
	if err := database.DB.Order("updated_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}

	out := make([]ArticleSummary, 0, len(list))
	for _, a := range list {
		out = append(out, toSummary(a))
	}
	c.JSON(http.StatusOK, out)
}

// POST /admin/articles (auth, admin)
func CreateArticle(c *gin.Context) {
	var input CreateArticleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// no title: create an untitled draft with a collision-free slug
	title := input.Title
	var slug string
	if title == "" {
		title = "Untitled Article"
		slug = articles.NewUntitledSlug()
	} else {
		var err error
		slug, err = uniqueSlug(database.DB, articles.MakeSlug(title))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate slug"})
			return
		}
	}

	userID := c.GetUint("user_id")
	var authorID *uint
	if userID != 0 {
		authorID = &userID
	}

	a := articles.Article{
		ID:         uuid.NewString(),
		Title:      title,
		Slug:       slug,
		Excerpt:    input.Excerpt,
		CoverImage: input.CoverImage,
		Tags:       articles.StringList(input.Tags),
		AuthorID:   authorID,
	}
	if err := database.DB.Create(&a).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to create article", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toSummary(a))
}

// GET /admin/articles/:id (auth, admin)
func GetArticleByID(c *gin.Context) {
	a, err := findByID(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var stored []articles.Block
	if err := database.DB.Where("article_id = ?", a.ID).Order("position ASC").Find(&stored).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load blocks"})
		return
	}

	resp := gin.H{
		"article": toSummary(*a),
		"blocks":  toBlockResponses(stored),
	}
	if len(a.NotionContent) > 0 {
		resp["notion_content"] = a.NotionContent
	}
	c.JSON(http.StatusOK, resp)
}

// PUT /admin/articles/:id (auth, admin)
func UpdateArticle(c *gin.Context) {
	a, err := findByID(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var input UpdateArticleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]any{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Slug != nil {
		s := articles.MakeSlug(*input.Slug)
		if s != a.Slug {
			var count int64
			database.DB.Model(&articles.Article{}).Where("slug = ? AND id <> ?", s, a.ID).Count(&count)
			if count > 0 {
				c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
				return
			}
			updates["slug"] = s
		}
	}
	if input.Excerpt != nil {
		updates["excerpt"] = *input.Excerpt
	}
	if input.CoverImage != nil {
		updates["cover_image"] = *input.CoverImage
	}
	if input.Published != nil {
		updates["published"] = *input.Published
	}
	if input.Tags != nil {
		updates["tags"] = articles.StringList(*input.Tags)
	}

	if len(updates) > 0 {
		if err := database.DB.Model(a).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
			return
		}
	}

	c.JSON(http.StatusOK, toSummary(*a))
}

// DELETE /admin/articles/:id (auth, admin)
func DeleteArticle(c *gin.Context) {
	id := c.Param("id")
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&articles.Block{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&articles.Article{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}

// POST /admin/articles/:id/publish (auth, admin)
func PublishArticle(c *gin.Context) {
	setPublished(c, true)
}

// POST /admin/articles/:id/unpublish (auth, admin)
func UnpublishArticle(c *gin.Context) {
	setPublished(c, false)
}

func setPublished(c *gin.Context, published bool) {
	a, err := findByID(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	if err := database.DB.Model(a).Update("published", published).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": a.ID, "published": published})
}

// GET /admin/articles/:id/blocks (auth, admin)
func GetArticleBlocks(c *gin.Context) {
	a, err := findByID(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var stored []articles.Block
	if err := database.DB.Where("article_id = ?", a.ID).Order("position ASC").Find(&stored).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load blocks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocks": toBlockResponses(stored)})
}

// PUT /admin/articles/:id/blocks (auth, admin)
//
// Replaces the whole block list in one transaction. Every incoming row
// is validated against the block type enumeration before any write.
func ReplaceArticleBlocks(c *gin.Context) {
	a, err := findByID(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var input ReplaceBlocksRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows := make([]blocks.Row, 0, len(input.Blocks))
	for i, in := range input.Blocks {
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		content := in.Content
		if len(content) == 0 {
			content = json.RawMessage("{}")
		}
		rows = append(rows, blocks.Row{
			ID:       id,
			Position: i,
			ParentID: in.ParentID,
			Type:     in.Type,
			Content:  content,
		})
	}

	// rejects unknown types and malformed content bags
	if _, err := blocks.Deserialize(rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	persister := &articles.BlockPersister{DB: database.DB}
	if err := persister.ReplaceRows(c.Request.Context(), a.ID, rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save blocks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": len(rows)})
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
