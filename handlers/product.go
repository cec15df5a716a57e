package handlers

import (
	"errors"
	"net/http"

	productService "lojinha/services/product"
	"lojinha/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const productsPerPage = 20

// ProductHandler exposes the catalog CRUD endpoints.
type ProductHandler struct {
	Service productService.ProductService
}

func NewProductHandler(svc productService.ProductService) *ProductHandler {
	return &ProductHandler{Service: svc}
}

// ListProducts handles GET /api/products?page=N.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page := utils.ParsePage(c)
	products, total, err := h.Service.ListProducts(c.Request.Context(), page, productsPerPage)
	if err != nil {
		utils.GetLogger().Error("Product listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao listar produtos."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": utils.NewPage(products, page, productsPerPage, total),
	})
}

// GetProduct handles GET /api/products/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "ID inválido."})
		return
	}

	p, err := h.Service.GetProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, productService.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": err.Error()})
			return
		}
		utils.GetLogger().Error("Product lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao buscar produto."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": p})
}

// CreateProduct handles POST /api/products.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var in productService.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Corpo da requisição inválido."})
		return
	}

	p, err := h.Service.CreateProduct(c.Request.Context(), in)
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
		utils.GetLogger().Error("Product creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao criar produto."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  true,
		"message": "Produto criado com sucesso!",
		"product": p,
	})
}

// UpdateProduct handles PUT /api/products/:id.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "ID inválido."})
		return
	}

	var in productService.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Corpo da requisição inválido."})
		return
	}

	p, err := h.Service.UpdateProduct(c.Request.Context(), id, in)
	if err != nil {
		var fe utils.FieldErrors
		switch {
		case errors.Is(err, productService.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": err.Error()})
		case errors.As(err, &fe):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":  false,
				"message": "Erro de validação.",
				"errors":  fe,
			})
		default:
			utils.GetLogger().Error("Product update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao atualizar produto."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Produto atualizado com sucesso!",
		"product": p,
	})
}

// DeleteProduct handles DELETE /api/products/:id.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "ID inválido."})
		return
	}

	if err := h.Service.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, productService.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": err.Error()})
			return
		}
		utils.GetLogger().Error("Product deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao deletar produto."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Produto deletado!"})
}
