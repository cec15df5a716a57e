package handlers

import (
	"errors"
	"net/http"

	uploadService "lojinha/services/upload"
	userService "lojinha/services/user"
	"lojinha/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const filesPerPage = 10

// UploadHandler exposes the file upload and listing endpoints.
type UploadHandler struct {
	Service uploadService.UploadService
}

func NewUploadHandler(svc uploadService.UploadService) *UploadHandler {
	return &UploadHandler{Service: svc}
}

// ListFiles handles GET /api/files?page=N.
func (h *UploadHandler) ListFiles(c *gin.Context) {
	page := utils.ParsePage(c)
	files, total, err := h.Service.ListFiles(c.Request.Context(), page, filesPerPage)
	if err != nil {
		utils.GetLogger().Error("File listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao listar arquivos."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": utils.NewPage(files, page, filesPerPage, total),
	})
}

// ListUserFiles handles GET /api/user/:userId/files.
func (h *UploadHandler) ListUserFiles(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}

	files, err := h.Service.ListUserFiles(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, userService.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
			return
		}
		utils.GetLogger().Error("User file listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Erro ao listar arquivos."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Arquivos encontrados",
		"files":   files,
	})
}

// UploadFile handles POST /api/uploadFile (multipart field "img").
func (h *UploadHandler) UploadFile(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}

	header, err := c.FormFile("img")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  false,
			"message": "Erro de validação.",
			"errors":  gin.H{"img": []string{uploadService.ErrFileRequired.Error()}},
		})
		return
	}

	record, err := h.Service.Upload(c.Request.Context(), userID, header)
	if err != nil {
		switch {
		case errors.Is(err, uploadService.ErrFileRequired),
			errors.Is(err, uploadService.ErrInvalidType),
			errors.Is(err, uploadService.ErrTooLarge):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":  false,
				"message": "Erro de validação.",
				"errors":  gin.H{"img": []string{err.Error()}},
			})
		default:
			utils.GetLogger().Error("Upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  false,
				"message": "Erro ao realizar upload: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Upload realizado com sucesso!",
		"file":    record,
	})
}
