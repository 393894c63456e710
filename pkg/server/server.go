// Package server exposes the REST surface over products, clients and orders.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/casuarinas/backend/pkg/config"
	"github.com/casuarinas/backend/pkg/models"
	"github.com/casuarinas/backend/pkg/repository"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	router   *gin.Engine
	products repository.ProductRepository
	clients  repository.ClientRepository
	orders   repository.OrderRepository
	cache    *repository.RedisRepository // optional
	audit    *repository.MongoRepository // optional
}

func New(cfg *config.Config, logger *zap.Logger,
	products repository.ProductRepository,
	clients repository.ClientRepository,
	orders repository.OrderRepository,
	cache *repository.RedisRepository,
	audit *repository.MongoRepository) *Server {

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	return &Server{
		config:   cfg,
		logger:   logger,
		router:   router,
		products: products,
		clients:  clients,
		orders:   orders,
		cache:    cache,
		audit:    audit,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", s.listProducts)
			products.GET("/search", s.searchProducts)
			products.GET("/category", s.productsByCategory)
			products.GET("/active", s.activeProducts)
			products.GET("/admin", s.adminProducts)
			products.GET("/:id", s.getProduct)
			products.POST("", s.createProduct)
			products.PUT("/:id", s.updateProduct)
			products.DELETE("/:id", s.deleteProduct)
		}

		clients := api.Group("/clients")
		{
			clients.GET("", s.listClients)
			clients.GET("/:id", s.getClient)
			clients.POST("", s.createClient)
			clients.PUT("/:id", s.updateClient)
			clients.DELETE("/:id", s.deleteClient)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", s.listOrders)
			orders.GET("/date-range", s.ordersByDateRange)
			orders.GET("/total", s.ordersByMinTotal)
			orders.GET("/:id", s.getOrder)
			orders.POST("", s.createOrder)
			orders.PUT("/:id", s.updateOrder)
			orders.DELETE("/:id", s.deleteOrder)
		}
	}

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("Server starting", zap.String("address", addr))
	return s.router.Run(addr)
}

// cachedProduct returns the cached row or nil. Cache misses and cache errors
// both fall through to the store.
func (s *Server) cachedProduct(ctx context.Context, id uint64) *models.Product {
	if s.cache == nil {
		return nil
	}
	product, err := s.cache.GetProductCache(ctx, id)
	if err != nil {
		return nil
	}
	return product
}

func (s *Server) cacheProduct(ctx context.Context, product *models.Product) {
	if s.cache == nil {
		return
	}
	if err := s.cache.CacheProduct(ctx, product); err != nil {
		s.logger.Warn("Failed to cache product", zap.Uint64("id", product.ID), zap.Error(err))
	}
}

func (s *Server) invalidateProduct(ctx context.Context, id uint64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProduct(ctx, id); err != nil {
		s.logger.Warn("Failed to invalidate product cache", zap.Uint64("id", id), zap.Error(err))
	}
}

// auditLog records a mutation fire-and-forget; audit failures never fail the
// request.
func (s *Server) auditLog(action string, entityID uint64, data bson.M) {
	if s.audit == nil {
		return
	}
	go func() {
		err := s.audit.CreateAuditLog(context.Background(), &repository.AuditLog{
			Service:  s.config.Server.Name,
			Action:   action,
			EntityID: entityID,
			Data:     data,
		})
		if err != nil {
			s.logger.Warn("Failed to write audit log", zap.String("action", action), zap.Error(err))
		}
	}()
}

// parseID reads the :id path param; on a malformed id it writes the 400 and
// reports false.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id: " + err.Error()})
		return 0, false
	}
	return id, true
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
