package profile

import (
	"StudyIQ/controllers"
	"StudyIQ/pkg/storage"

	"github.com/gin-gonic/gin"
)

// Register registers the profile routes (protected)
func Register(g *gin.RouterGroup, store *storage.Store) {
	g.GET("/api/me", controllers.Me(store))
}
