package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handler) listOrders(c *gin.Context) {
	orders, err := h.Orders.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *handler) locateOrder(c *gin.Context) {
	loc, err := h.Orders.Locate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, loc)
}
