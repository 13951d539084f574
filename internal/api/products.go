package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SirClappington/ecommerce-admin-backend/internal/services"
)

// getProducts returns one product for ?id= and the full list otherwise.
func (h *handler) getProducts(c *gin.Context) {
	ctx := c.Request.Context()
	if id := c.Query("id"); id != "" {
		product, err := h.Products.Get(ctx, id)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
		return
	}

	products, err := h.Products.List(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handler) createProduct(c *gin.Context) {
	var input services.ProductInput
	if err := bindJSON(c, &input); err != nil {
		h.handleError(c, err)
		return
	}
	product, err := h.Products.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *handler) updateProduct(c *gin.Context) {
	var input services.ProductInput
	if err := bindJSON(c, &input); err != nil {
		h.handleError(c, err)
		return
	}
	if _, err := h.Products.Update(c.Request.Context(), input); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}

// deleteProduct accepts the id as ?_id= or, like older clients send it, ?id=.
func (h *handler) deleteProduct(c *gin.Context) {
	id := c.Query("_id")
	if id == "" {
		id = c.Query("id")
	}
	if err := h.Products.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
