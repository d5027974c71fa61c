package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"StudyIQ/middleware"
	"StudyIQ/models"
	"StudyIQ/pkg/storage"

	"github.com/gin-gonic/gin"
)

// CreateSession handles POST /api/sessions: saving the current chat under a
// title so it can be revisited later.
func CreateSession(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, _ := middleware.CurrentUserID(c)

		var body struct {
			Title string `json:"title"`
			Mode  string `json:"mode"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
			return
		}
		if !models.ValidMode(body.Mode) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid mode"})
			return
		}

		sess, err := store.CreateChatSession(uid, strings.TrimSpace(body.Title), body.Mode)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create session"})
			return
		}
		c.JSON(http.StatusCreated, sessionJSON(sess))
	}
}

func ListSessions(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, _ := middleware.CurrentUserID(c)

		sessions, err := store.ListChatSessionsByUser(uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "db error"})
			return
		}
		out := make([]gin.H, 0, len(sessions))
		for i := range sessions {
			out = append(out, sessionJSON(&sessions[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetSession(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, _ := middleware.CurrentUserID(c)
		id, _ := strconv.Atoi(c.Param("session_id"))

		sess, err := store.GetChatSession(uint(id))
		if err != nil || sess.UserID != uid {
			c.JSON(http.StatusNotFound, gin.H{"message": "session not found"})
			return
		}
		c.JSON(http.StatusOK, sessionJSON(sess))
	}
}

func DeleteSession(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, _ := middleware.CurrentUserID(c)
		id, _ := strconv.Atoi(c.Param("session_id"))

		sess, err := store.GetChatSession(uint(id))
		if err != nil || sess.UserID != uid {
			c.JSON(http.StatusNotFound, gin.H{"message": "session not found"})
			return
		}
		if err := store.DeleteChatSession(sess.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "session deleted"})
	}
}

func sessionJSON(s *models.ChatSession) gin.H {
	return gin.H{
		"id":        s.ID,
		"userId":    s.UserID,
		"title":     s.Title,
		"mode":      s.Mode,
		"createdAt": s.CreatedAt,
	}
}
