package handlers

import (
	"errors"
	"net/http"
	"strconv"

	userService "lojinha/services/user"
	"lojinha/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const usersPerPage = 10

// UserHandler exposes the user CRUD and auth endpoints.
type UserHandler struct {
	Service userService.UserService
}

func NewUserHandler(svc userService.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// ListUsers handles GET /api/users?page=N.
func (h *UserHandler) ListUsers(c *gin.Context) {
	page := utils.ParsePage(c)
	users, total, err := h.Service.ListUsers(c.Request.Context(), page, usersPerPage)
	if err != nil {
		utils.GetLogger().Error("User listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao listar usuários."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": utils.NewPage(users, page, usersPerPage, total),
	})
}

// GetUser handles GET /api/users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "ID inválido."})
		return
	}

	usr, err := h.Service.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, userService.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": err.Error()})
			return
		}
		utils.GetLogger().Error("User lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao buscar usuário."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": usr})
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var in userService.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Corpo da requisição inválido."})
		return
	}

	usr, err := h.Service.CreateUser(c.Request.Context(), in)
	if err != nil {
		var fe utils.FieldErrors
		if errors.As(err, &fe) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":  false,
				"message": "Erro de validação.",
				"errors":  fe,
			})
			return
		}
		utils.GetLogger().Error("User creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao criar usuário."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  true,
		"message": "Usuário criado com sucesso!",
		"user":    usr,
	})
}

// UpdateUser handles PUT /api/users/:id.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "ID inválido."})
		return
	}

	var in userService.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Corpo da requisição inválido."})
		return
	}

	usr, err := h.Service.UpdateUser(c.Request.Context(), id, in)
	if err != nil {
		var fe utils.FieldErrors
		switch {
		case errors.Is(err, userService.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": err.Error()})
		case errors.As(err, &fe):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":  false,
				"message": "Erro de validação.",
				"errors":  fe,
			})
		default:
			utils.GetLogger().Error("User update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao atualizar usuário."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Usuário atualizado com sucesso!",
		"user":    usr,
	})
}

// DeleteUser handles DELETE /api/users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "ID inválido."})
		return
	}

	if err := h.Service.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, userService.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": err.Error()})
			return
		}
		utils.GetLogger().Error("User deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao deletar usuário."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Usuário deletado!"})
}
