package handlers

import (
	"errors"
	"net/http"

	"lojinha/middleware"
	productService "lojinha/services/product"
	"lojinha/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const favoritesPerPage = 20

// FavoriteHandler exposes the favorite-product endpoints. All of them
// require an authenticated user.
type FavoriteHandler struct {
	Service productService.FavoriteService
}

func NewFavoriteHandler(svc productService.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Service: svc}
}

func authenticatedUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}

// ListFavorites handles GET /api/favorites?page=N.
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}

	page := utils.ParsePage(c)
	products, total, err := h.Service.ListFavorites(c.Request.Context(), userID, page, favoritesPerPage)
	if err != nil {
		utils.GetLogger().Error("Favorite listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao listar favoritos."})
		return
	}

	if total == 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":  false,
			"message": "Você ainda não favoritou nenhum produto.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    true,
		"favorites": utils.NewPage(products, page, favoritesPerPage, total),
	})
}

// AddFavorite handles POST /api/products/:id/favorite.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}
	productID, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "ID inválido."})
		return
	}

	if err := h.Service.Favorite(c.Request.Context(), userID, productID); err != nil {
		if errors.Is(err, productService.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": err.Error()})
			return
		}
		utils.GetLogger().Error("Favorite add failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao favoritar produto."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Produto favoritado com sucesso!"})
}

// RemoveFavorite handles DELETE /api/products/:id/favorite.
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}
	productID, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "ID inválido."})
		return
	}

	if err := h.Service.Unfavorite(c.Request.Context(), userID, productID); err != nil {
		if errors.Is(err, productService.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": err.Error()})
			return
		}
		utils.GetLogger().Error("Favorite removal failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao remover favorito."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Produto removido dos favoritos!"})
}
