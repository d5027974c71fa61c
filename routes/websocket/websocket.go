package websocket

import (
	"StudyIQ/controllers"

	"github.com/gin-gonic/gin"
)

// Register registers the WebSocket chat endpoint.
func Register(r *gin.Engine, chat controllers.ChatStreamAPI) {
	r.GET("/ws/chat", controllers.ChatWS(chat))
}
