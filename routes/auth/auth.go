package auth

import (
	"StudyIQ/controllers"
	"StudyIQ/pkg/storage"

	"github.com/gin-gonic/gin"
)

// RegisterPublic registers public auth routes: /api/auth/register, /api/auth/login
func RegisterPublic(r *gin.Engine, store *storage.Store) {
	r.POST("/api/auth/register", controllers.Register(store))
	r.POST("/api/auth/login", controllers.Login(store))
}

// RegisterProtected registers protected auth routes (e.g. logout)
func RegisterProtected(g *gin.RouterGroup) {
	g.POST("/api/auth/logout", controllers.Logout())
}
