package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SirClappington/ecommerce-admin-backend/internal/middleware"
)

func (h *handler) createSession(c *gin.Context) {
	var request struct {
		IDToken string `json:"idToken"`
	}
	if err := bindJSON(c, &request); err != nil {
		h.handleError(c, err)
		return
	}

	cookie, identity, err := h.Auth.CreateSession(c.Request.Context(), request.IDToken)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.CookieName, cookie, int(h.Auth.SessionTTL().Seconds()), "/", "", h.CookieSecure, true)
	c.JSON(http.StatusOK, identity)
}

func (h *handler) currentSession(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, identity)
}

func (h *handler) deleteSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.CookieName, "", -1, "/", "", h.CookieSecure, true)
	c.Status(http.StatusNoContent)
}
