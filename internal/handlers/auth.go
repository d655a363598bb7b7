package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SubhashKumar14/LearnPath/internal/auth"
	"github.com/SubhashKumar14/LearnPath/internal/middleware"
	"github.com/SubhashKumar14/LearnPath/internal/models"
	"github.com/SubhashKumar14/LearnPath/internal/store"
)

type AuthHandler struct {
	auth *auth.Service
	log  *zap.Logger
}

func NewAuthHandler(svc *auth.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: svc, log: log}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, err := h.auth.Register(req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
	case err != nil:
		h.log.Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login opens a session for valid credentials and answers with the page
// the client should navigate to for its role.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.log.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionUserID, user.ID)
	sess.Set(middleware.SessionName, user.Name)
	sess.Set(middleware.SessionEmail, user.Email)
	sess.Set(middleware.SessionRole, string(user.Role))
	if err := sess.Save(); err != nil {
		h.log.Error("failed to save session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	redirect := "/dashboard"
	if user.Role == models.RoleAdmin {
		redirect = "/admin"
	}
	c.JSON(http.StatusOK, gin.H{"redirect": redirect})
}

// Logout destroys the session. Calling it without one is a no-op that
// still answers 200.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := sess.Save(); err != nil {
		h.log.Error("failed to destroy session", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// CurrentUser returns the identity bound to the session.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	sess := sessions.Default(c)
	id, _ := middleware.CurrentUserID(c)
	role, _ := middleware.CurrentRole(c)
	name, _ := sess.Get(middleware.SessionName).(string)
	email, _ := sess.Get(middleware.SessionEmail).(string)

	c.JSON(http.StatusOK, gin.H{
		"id":    id,
		"name":  name,
		"email": email,
		"role":  role,
	})
}
