package contacts

import (
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/contacts"

	"github.com/gin-gonic/gin"
)

// POST /contact
func SubmitContact(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := contacts.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thanks for reaching out!"})
}

// GET /admin/contacts (auth, admin)
func ListContacts(c *gin.Context) {
	var list []contacts.Contact
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// PUT /admin/contacts/:id/read (auth, admin)
func MarkContactRead(c *gin.Context) {
	var body struct {
		Read *bool `json:"read"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Read == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing read flag"})
		return
	}

	var msg contacts.Contact
	if err := database.DB.First(&msg, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	if err := database.DB.Model(&msg).Update("read", *body.Read).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": msg.ID, "read": *body.Read})
}
