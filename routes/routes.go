package routes

import (
	"net/http"

	"StudyIQ/middleware"
	svc "StudyIQ/pkg/services"
	"StudyIQ/pkg/storage"

	"github.com/gin-gonic/gin"

	authRoutes "StudyIQ/routes/auth"
	chatRoutes "StudyIQ/routes/chat"
	profileRoutes "StudyIQ/routes/profile"
	sessionRoutes "StudyIQ/routes/sessions"
	websocketRoutes "StudyIQ/routes/websocket"
)

func RegisterRoutes(r *gin.Engine, store *storage.Store, chat *svc.ChatService) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "StudyIQ backend running"})
	})

	chatRoutes.Register(r, chat)
	websocketRoutes.Register(r, chat)
	authRoutes.RegisterPublic(r, store)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	authRoutes.RegisterProtected(protected)
	profileRoutes.Register(protected, store)
	sessionRoutes.Register(protected, store)
}
