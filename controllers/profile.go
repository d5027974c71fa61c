package controllers

import (
	"log"
	"net/http"

	"StudyIQ/middleware"
	"StudyIQ/pkg/storage"

	"github.com/gin-gonic/gin"
)

// Me handles GET /api/me. The reported message count is the daily quota
// counter after the reset-on-read check, so a stale counter from a previous
// day reads as zero.
func Me(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		user, err := store.GetUser(uid)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		count, err := store.EffectiveMessageCount(uid)
		if err != nil {
			log.Printf("[profile] message count for user %d: %v", uid, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":             user.ID,
			"email":          user.Email,
			"is_premium":     user.IsPremium,
			"messages_count": count,
		})
	}
}
