package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"StudyIQ/models"
	svc "StudyIQ/pkg/services"

	"github.com/gin-gonic/gin"
)

// ChatAPI is the orchestrator surface the HTTP handlers depend on.
type ChatAPI interface {
	History(mode string) ([]models.Message, error)
	SubmitTurn(ctx context.Context, req svc.TurnRequest) (*svc.TurnResult, error)
}

// GetHistory handles GET /api/chat/:mode.
func GetHistory(chat ChatAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		mode := c.Param("mode")
		history, err := chat.History(mode)
		if err != nil {
			if errors.Is(err, svc.ErrInvalidMode) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid mode"})
				return
			}
			log.Printf("[chat] history error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		out := make([]gin.H, 0, len(history))
		for _, m := range history {
			out = append(out, messageJSON(m))
		}
		c.JSON(http.StatusOK, out)
	}
}

// SendMessage handles POST /api/chat.
func SendMessage(chat ChatAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Message     string `json:"message"`
			Mode        string `json:"mode"`
			UserID      *uint  `json:"userId"`
			ImageBase64 string `json:"imageBase64"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
			return
		}

		result, err := chat.SubmitTurn(c.Request.Context(), svc.TurnRequest{
			Message:     body.Message,
			Mode:        body.Mode,
			UserID:      body.UserID,
			ImageBase64: body.ImageBase64,
		})
		if err != nil {
			if errors.Is(err, svc.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
				return
			}
			log.Printf("[chat] submit error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": result.Content, "role": result.Role})
	}
}

func messageJSON(m models.Message) gin.H {
	out := gin.H{
		"id":        m.ID,
		"role":      m.Role,
		"content":   m.Content,
		"mode":      m.Mode,
		"createdAt": m.CreatedAt,
	}
	if m.UserID != nil {
		out["userId"] = *m.UserID
	}
	return out
}
