package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courseplatform-backend/internal/domains/category"
	"courseplatform-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.CategoryService
}

func NewCategoryHandler(svc category.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
	}
}

// GetAll - GET /api/courses/categories
func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to load categories")
		return
	}

	response.Success(c, http.StatusOK, categories)
}
