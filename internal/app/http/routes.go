package routes

import (
	adminapi "portfolio-app/internal/api/admin"
	articlesapi "portfolio-app/internal/api/articles"
	authapi "portfolio-app/internal/api/auth"
	contactsapi "portfolio-app/internal/api/contacts"
	notionapi "portfolio-app/internal/api/notionsync"
	"portfolio-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ✅ Apply input sanitization to public routes only
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/login", authapi.Login)
	public.POST("/contact", contactsapi.SubmitContact)

	public.GET("/articles", articlesapi.ListPublishedArticles)
	public.GET("/articles/:slug", articlesapi.GetArticleBySlug)
	public.GET("/articles/:slug/html", articlesapi.GetArticleHTML)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", authapi.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)

	admin.GET("/articles", articlesapi.ListAllArticles)
	admin.POST("/articles", articlesapi.CreateArticle)
	admin.GET("/articles/:id", articlesapi.GetArticleByID)
	admin.PUT("/articles/:id", articlesapi.UpdateArticle)
	admin.DELETE("/articles/:id", articlesapi.DeleteArticle)

	admin.POST("/articles/:id/publish", articlesapi.PublishArticle)
	admin.POST("/articles/:id/unpublish", articlesapi.UnpublishArticle)

	admin.GET("/articles/:id/blocks", articlesapi.GetArticleBlocks)
	admin.PUT("/articles/:id/blocks", articlesapi.ReplaceArticleBlocks)

	admin.POST("/notion/sync", notionapi.SyncFromNotion)

	admin.GET("/contacts", contactsapi.ListContacts)
	admin.PUT("/contacts/:id/read", contactsapi.MarkContactRead)
}
