package handlers

import (
	"errors"
	"net/http"

	"medcrm/models"
	"medcrm/services/account"
	"medcrm/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler exposes dashboard account endpoints.
type AccountHandler struct {
	AccountService account.AccountService
}

// RegisterAccountHandler handles POST /auth/register.
func (h *AccountHandler) RegisterAccountHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.RegisterAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	resp, err := h.AccountService.Register(req, c.ClientIP())
	if err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to register account", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignInHandler handles POST /auth/sign-in.
func (h *AccountHandler) SignInHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	resp, err := h.AccountService.SignIn(req, c.ClientIP())
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Sign-in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutHandler handles POST /auth/sign-out for the signed-in account.
func (h *AccountHandler) SignOutHandler(c *gin.Context) {
	logger := utils.GetLogger()
	accountID := c.GetString("accountID")
	if accountID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}
	if err := h.AccountService.SignOut(accountID); err != nil {
		logger.Error("Sign-out failed", zap.String("accountID", accountID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// GetProfileHandler handles GET /auth/me.
func (h *AccountHandler) GetProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	accountID := c.GetString("accountID")
	acct, err := h.AccountService.GetAccountByID(accountID)
	if err != nil {
		logger.Error("Account not found", zap.String("accountID", accountID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, acct)
}

// UpdateProfileHandler handles PUT /auth/me.
func (h *AccountHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	accountID := c.GetString("accountID")
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	acct, err := h.AccountService.UpdateAccount(accountID, updates)
	if err != nil {
		logger.Error("Failed to update account", zap.String("accountID", accountID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, acct)
}

// ChangePasswordHandler handles PUT /auth/me/password.
// Body: {"currentPassword": "...", "newPassword": "..."}.
func (h *AccountHandler) ChangePasswordHandler(c *gin.Context) {
	logger := utils.GetLogger()
	accountID := c.GetString("accountID")
	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.AccountService.ChangePassword(accountID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, account.ErrWrongPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to change password", zap.String("accountID", accountID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// DeleteAccountHandler handles DELETE /accounts/:id (admin only).
func (h *AccountHandler) DeleteAccountHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.AccountService.DeleteAccount(id); err != nil {
		logger.Error("Failed to delete account", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
