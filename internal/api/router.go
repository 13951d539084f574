package api

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SirClappington/ecommerce-admin-backend/internal/errors"
	"github.com/SirClappington/ecommerce-admin-backend/internal/middleware"
	"github.com/SirClappington/ecommerce-admin-backend/internal/services"
)

type Deps struct {
	Categories *services.CategoryService
	Products   *services.ProductService
	Orders     *services.OrderService
	Uploads    *services.UploadService
	Auth       *services.AuthService
	Logger     *zap.Logger

	CookieName   string
	CookieSecure bool
	MaxMemory    int64
}

type handler struct {
	Deps
}

// NewRouter registers every route. Everything under /api except
// /api/auth runs behind the admin guard.
func NewRouter(deps Deps) *gin.Engine {
	h := &handler{Deps: deps}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(deps.Logger))
	if deps.MaxMemory > 0 {
		r.MaxMultipartMemory = deps.MaxMemory
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	guard := middleware.RequireAdmin(deps.Auth, deps.CookieName)

	auth := r.Group("/api/auth")
	auth.POST("/session", h.createSession)
	auth.GET("/session", guard, h.currentSession)
	auth.DELETE("/session", h.deleteSession)

	api := r.Group("/api", guard)
	api.GET("/categories", h.listCategories)
	api.POST("/categories", h.createCategory)
	api.PUT("/categories", h.updateCategory)
	api.DELETE("/categories", h.deleteCategory)
	api.GET("/categories/:id/properties", h.categoryProperties)

	api.GET("/products", h.getProducts)
	api.POST("/products", h.createProduct)
	api.PUT("/products", h.updateProduct)
	api.DELETE("/products", h.deleteProduct)

	api.GET("/orders", h.listOrders)
	api.GET("/orders/:id/location", h.locateOrder)

	api.POST("/upload", h.upload)

	return r
}

func (h *handler) handleError(c *gin.Context, err error) {
	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		switch apiErr.Type {
		case errors.ErrorTypeValidation:
			c.JSON(http.StatusBadRequest, apiErr)
		case errors.ErrorTypeNotFound:
			c.JSON(http.StatusNotFound, apiErr)
		case errors.ErrorTypeExternal:
			c.JSON(http.StatusServiceUnavailable, apiErr)
		case errors.ErrorTypeUnauthorized:
			c.AbortWithStatus(http.StatusUnauthorized)
		default:
			c.JSON(http.StatusInternalServerError, apiErr)
		}
		return
	}

	// Handle unknown errors
	h.Logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, errors.NewInternalError(err))
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
