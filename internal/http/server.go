package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"thattukada/internal/cart"
	"thattukada/internal/catalog"
	"thattukada/internal/postgrest"
	"thattukada/internal/service"
)

const sessionHeader = "X-Session-ID"

type Server struct {
	engine *gin.Engine
	svc    *service.CatalogService
	carts  *cart.Manager
	logger *zap.Logger
}

func NewServer(svc *service.CatalogService, carts *cart.Manager, logger *zap.Logger) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{engine: r, svc: svc, carts: carts, logger: logger}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.engine.GET("/health", s.health)

	v1 := s.engine.Group("/api/v1")
	v1.Use(sessionMiddleware())
	{
		products := v1.Group("/products")
		products.GET("", s.listProducts)
		products.POST("", s.createProduct)
		products.PUT(":id", s.updateProduct)
		products.DELETE(":id", s.deleteProduct)

		categories := v1.Group("/categories")
		categories.GET("", s.listCategories)
		categories.POST("", s.createCategory)
		categories.PUT(":id", s.updateCategory)
		categories.DELETE(":id", s.deleteCategory)

		banners := v1.Group("/banners")
		banners.GET("", s.listBanners)
		banners.POST("", s.createBanner)
		banners.PUT(":id", s.updateBanner)
		banners.DELETE(":id", s.deleteBanner)

		gallery := v1.Group("/gallery")
		gallery.GET("", s.listGallery)
		gallery.POST("", s.createGalleryItem)
		gallery.PUT(":id", s.updateGalleryItem)
		gallery.DELETE(":id", s.deleteGalleryItem)

		orders := v1.Group("/orders")
		orders.GET("", s.listOrders)
		orders.PATCH(":id/status", s.updateOrderStatus)

		profiles := v1.Group("/profiles")
		profiles.GET("", s.listProfiles)
		profiles.PATCH(":id/role", s.updateProfileRole)

		admin := v1.Group("/admin")
		admin.GET("/stats", s.dashboardStats)
		admin.POST("/upload", s.uploadImage)

		cartGroup := v1.Group("/cart")
		cartGroup.GET("", s.getCart)
		cartGroup.DELETE("", s.clearCart)
		cartGroup.POST("/items", s.addCartItem)
		cartGroup.PATCH("/items/:productId", s.updateCartItem)
		cartGroup.DELETE("/items/:productId", s.removeCartItem)

		v1.POST("/checkout", s.checkout)
	}
}

// sessionMiddleware привязывает корзину к заголовку X-Session-ID;
// если клиент пришёл без него, выдаётся новый идентификатор
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(sessionHeader)
		if sid == "" {
			sid = uuid.NewString()
		}
		c.Set("sessionID", sid)
		c.Header(sessionHeader, sid)
		c.Next()
	}
}

func (s *Server) sessionCart(c *gin.Context) *cart.Cart {
	return s.carts.Get(c.GetString("sessionID"))
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"mode":   s.svc.Mode(),
	})
}

func mapErrorToStatus(err error) int {
	var apiErr *postgrest.APIError
	switch {
	case errors.Is(err, service.ErrCategoryRequired), errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, service.ErrStorageNotConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &apiErr):
		if apiErr.Status == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
}
