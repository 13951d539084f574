package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SirClappington/ecommerce-admin-backend/internal/errors"
)

// upload takes one or more multipart parts named "file".
func (h *handler) upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.handleError(c, errors.NewValidationError("multipart form expected"))
		return
	}

	links, err := h.Uploads.Upload(c.Request.Context(), form.File["file"])
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"links": links})
}
