package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite.backend/internal/interfaces/http/response"
	"corpsite.backend/internal/usecases"
)

// ContentHandler serves the read-only site listings
type ContentHandler struct {
	contentUsecase *usecases.ContentUsecase
}

func NewContentHandler(contentUsecase *usecases.ContentUsecase) *ContentHandler {
	return &ContentHandler{contentUsecase: contentUsecase}
}

// ListMOUs GET /api/mous/
func (h *ContentHandler) ListMOUs(c *gin.Context) {
	items, err := h.contentUsecase.ListMOUs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListGallery GET /api/gallery/
func (h *ContentHandler) ListGallery(c *gin.Context) {
	items, err := h.contentUsecase.ListGallery(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListProjects GET /api/projects/
func (h *ContentHandler) ListProjects(c *gin.Context) {
	items, err := h.contentUsecase.ListProjects(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListGiveback GET /api/giveback/
func (h *ContentHandler) ListGiveback(c *gin.Context) {
	items, err := h.contentUsecase.ListGiveback(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}
