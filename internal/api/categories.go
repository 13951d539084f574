package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SirClappington/ecommerce-admin-backend/internal/services"
)

func (h *handler) listCategories(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *handler) createCategory(c *gin.Context) {
	var input services.CategoryInput
	if err := bindJSON(c, &input); err != nil {
		h.handleError(c, err)
		return
	}
	category, err := h.Categories.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *handler) updateCategory(c *gin.Context) {
	var input services.CategoryInput
	if err := bindJSON(c, &input); err != nil {
		h.handleError(c, err)
		return
	}
	category, err := h.Categories.Update(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *handler) deleteCategory(c *gin.Context) {
	if err := h.Categories.Delete(c.Request.Context(), c.Query("_id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, "ok")
}

func (h *handler) categoryProperties(c *gin.Context) {
	props, err := h.Categories.Properties(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, props)
}
