package handlers

import (
	"errors"
	"net/http"

	"beautymatch/models"
	"beautymatch/services/auth"
	"beautymatch/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the identity endpoints.
type AuthHandler struct {
	AuthService auth.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: svc}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	resp, err := h.AuthService.Register(c, req.Email, req.Password, req.Name, models.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailInUse):
			utils.JSONError(c, http.StatusConflict, "Email already in use", err.Error())
		case errors.Is(err, auth.ErrInvalidEmail), errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidRole):
			utils.JSONError(c, http.StatusBadRequest, "Invalid registration details", err.Error())
		default:
			logger.Error("RegisterHandler: registration failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Registration failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	resp, err := h.AuthService.Login(c, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", err.Error())
		case errors.Is(err, auth.ErrRateLimited):
			utils.JSONError(c, http.StatusTooManyRequests, "Too many attempts", err.Error())
		default:
			logger.Error("LoginHandler: login failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.AuthService.Logout(c, userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// UpdateFCMTokenHandler handles PUT /api/auth/fcm-token.
func (h *AuthHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	userID := c.GetString("userID")
	if err := h.AuthService.UpdateFCMToken(c, userID, req.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token updated"})
}
