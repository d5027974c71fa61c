package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"StudyIQ/middleware"
	"StudyIQ/models"
	"StudyIQ/pkg/config"
	"StudyIQ/pkg/storage"
	tokenstore "StudyIQ/pkg/token"
	utils "StudyIQ/pkg/utills"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Register handler
func Register(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email           string `json:"email"`
			Password        string `json:"password"`
			ConfirmPassword string `json:"confirmPassword"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
			return
		}

		email := strings.TrimSpace(strings.ToLower(body.Email))
		password := body.Password
		confirm := body.ConfirmPassword

		if email == "" || password == "" || confirm == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email, password, and confirm password are required"})
			return
		}
		if !utils.IsValidEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email address"})
			return
		}
		if password != confirm {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Passwords don't match"})
			return
		}
		if len(password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters"})
			return
		}
		if !utils.HasLetter(password) || !utils.HasNumber(password) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password must contain at least one letter and one number"})
			return
		}

		if _, err := store.GetUserByEmail(email); err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already exists"})
			return
		} else if !errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "db error"})
			return
		}

		user := models.User{Email: email, MessagesResetDate: time.Now()}
		if err := user.SetPassword(password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to set password"})
			return
		}
		if err := store.CreateUser(&user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
	}
}

// Login handler
func Login(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
			return
		}
		email := strings.TrimSpace(strings.ToLower(body.Email))
		password := body.Password

		if email == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
			return
		}

		user, err := store.GetUserByEmail(email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		if !user.CheckPassword(password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		// JWT with 1 day expiry
		jti := uuid.NewString()
		claims := jwt.MapClaims{
			"sub": strconv.Itoa(int(user.ID)),
			"exp": time.Now().Add(24 * time.Hour).Unix(),
			"jti": jti,
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenStr, err := token.SignedString([]byte(config.JWTSecret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": tokenStr, "email": user.Email, "is_premium": user.IsPremium})
	}
}

// Logout handler
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		jti, _ := c.Get(middleware.ContextJTIKey)
		if s, ok := jti.(string); ok && s != "" {
			tokenstore.RevokeToken(s)
		}
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}
