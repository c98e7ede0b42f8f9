package admin

import (
	"net/http"
	"time"

	"portfolio-app/database"
	"portfolio-app/internal/domain/articles"
	"portfolio-app/internal/domain/contacts"

	"github.com/gin-gonic/gin"
)

type AdminStats struct {
	TotalArticles     int64 `json:"total_articles"`
	PublishedArticles int64 `json:"published_articles"`
	SyncedArticles    int64 `json:"synced_articles"`
	TotalBlocks       int64 `json:"total_blocks"`
	UnreadContacts    int64 `json:"unread_contacts"`
	RecentContacts    int64 `json:"recent_contacts"`
}

// GET /admin/dashboard (auth, admin)
func AdminDashboard(c *gin.Context) {
	var stats AdminStats
	db := database.DB

	db.Model(&articles.Article{}).Count(&stats.TotalArticles)
	db.Model(&articles.Article{}).Where("published = ?", true).Count(&stats.PublishedArticles)
	db.Model(&articles.Article{}).Where("notion_page_id IS NOT NULL").Count(&stats.SyncedArticles)
	db.Model(&articles.Block{}).Count(&stats.TotalBlocks)
	db.Model(&contacts.Contact{}).Where("read = ?", false).Count(&stats.UnreadContacts)
	db.Model(&contacts.Contact{}).Where("created_at > ?", time.Now().AddDate(0, 0, -7)).Count(&stats.RecentContacts)

	c.JSON(http.StatusOK, stats)
}
