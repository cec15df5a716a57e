package handlers

import (
	"errors"
	"net/http"

	"lojinha/middleware"
	userService "lojinha/services/user"
	"lojinha/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Login handles POST /api/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Corpo da requisição inválido."})
		return
	}

	auth, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userService.ErrInvalidCredentials) {
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": err.Error()})
			return
		}
		utils.GetLogger().Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao autenticar."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  true,
		"token":   auth.Token,
		"user":    auth.User,
		"message": "Você está logado.",
	})
}

// Logout handles POST /api/logout/:id. The path ID must match the
// authenticated user.
func (h *UserHandler) Logout(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "ID inválido."})
		return
	}

	authID, exists := c.Get(middleware.UserIDKey)
	if !exists || authID.(uint) != id {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}

	if err := h.Service.Logout(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao encerrar a sessão."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Logout realizado com sucesso!"})
}
