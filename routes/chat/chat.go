package chat

import (
	"StudyIQ/controllers"
	"StudyIQ/middleware"

	"github.com/gin-gonic/gin"
)

// Register registers the public chat routes.
func Register(r *gin.Engine, chat controllers.ChatAPI) {
	r.GET("/api/chat/:mode", controllers.GetHistory(chat))
	// Rate limiting on the message send endpoint
	r.POST("/api/chat", middleware.RateLimit(), controllers.SendMessage(chat))
}
