package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	// Health check (no auth required)
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "🌿 VrikZo Backend is Running Successfully!")
	})

	api := r.Group("/api")
	{
		api.POST("/upload", h.uploadHandler.Upload)
		api.POST("/detect", h.detectHandler.Detect)
		api.POST("/chat", h.chatHandler.Chat)

		users := api.Group("/users")
		{
			users.POST("/registerEmail", h.userHandler.RegisterEmail)
		}

		reminders := api.Group("/reminders")
		{
			reminders.POST("/create", h.reminderHandler.CreateReminder)
			reminders.DELETE("/:id", h.reminderHandler.CancelReminder)
		}
	}
}
