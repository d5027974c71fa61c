package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"StudyIQ/middleware"
	svc "StudyIQ/pkg/services"
	tokenstore "StudyIQ/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS handled at HTTP level; allow WS here
		return true
	},
}

// ChatStreamAPI is the streaming orchestrator surface the WS handler uses.
type ChatStreamAPI interface {
	SubmitTurnStream(ctx context.Context, req svc.TurnRequest, onUserSaved func(), onDelta func(string)) (*svc.TurnResult, error)
}

type wsStartPayload struct {
	Type        string `json:"type"`
	Message     string `json:"message"`
	Mode        string `json:"mode"`
	ImageBase64 string `json:"imageBase64"`
}

// ChatWS handles WebSocket chat streaming.
// Client protocol (JSON messages):
//
//	-> {type: "start", message: string, mode: string, imageBase64?: string}
//	<- {type: "user_saved"} (once, after the user turn is persisted)
//	<- {type: "delta", data: string}
//	<- {type: "done", ok: true}
//	<- {type: "error", error: string}
//
// Auth is optional and carried as ?token=JWT; when present the turn is
// attributed to the token's user.
func ChatWS(chat ChatStreamAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID *uint
		if tokenStr := strings.TrimSpace(c.Query("token")); tokenStr != "" {
			uid, jti, err := middleware.ParseToken(tokenStr)
			if err != nil || tokenstore.IsRevoked(jti) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
				return
			}
			userID = &uid
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[ws] upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		conn.SetReadLimit(1 << 20)
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var start wsStartPayload
		if err := conn.ReadJSON(&start); err != nil || start.Type != "start" {
			_ = conn.WriteJSON(gin.H{"type": "error", "error": "expected start payload"})
			return
		}

		if !middleware.Allow(c.ClientIP()) {
			_ = conn.WriteJSON(gin.H{"type": "error", "error": "too many requests"})
			return
		}

		onUserSaved := func() {
			_ = conn.WriteJSON(gin.H{"type": "user_saved"})
		}
		onDelta := func(chunk string) {
			_ = conn.WriteJSON(gin.H{"type": "delta", "data": chunk})
		}

		_, err = chat.SubmitTurnStream(c.Request.Context(), svc.TurnRequest{
			Message:     start.Message,
			Mode:        start.Mode,
			UserID:      userID,
			ImageBase64: start.ImageBase64,
		}, onUserSaved, onDelta)
		if err != nil {
			msg := "Internal server error"
			if errors.Is(err, svc.ErrInvalidInput) {
				msg = "Invalid input"
			}
			log.Printf("[ws] stream turn failed: %v", err)
			_ = conn.WriteJSON(gin.H{"type": "error", "error": msg})
			return
		}

		_ = conn.WriteJSON(gin.H{"type": "done", "ok": true})
	}
}
