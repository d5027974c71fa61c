package sessions

import (
	"StudyIQ/controllers"
	"StudyIQ/pkg/storage"

	"github.com/gin-gonic/gin"
)

// Register registers saved-chat session routes (protected)
func Register(g *gin.RouterGroup, store *storage.Store) {
	g.POST("/api/sessions", controllers.CreateSession(store))
	g.GET("/api/sessions", controllers.ListSessions(store))
	g.GET("/api/sessions/:session_id", controllers.GetSession(store))
	g.DELETE("/api/sessions/:session_id", controllers.DeleteSession(store))
}
