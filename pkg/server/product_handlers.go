package server

import (
	"net/http"

	"github.com/casuarinas/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// productPayload is the client-writable subset of a product. Id and the
// timestamps are server-controlled; an omitted active defaults to true.
type productPayload struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Comment  string  `json:"comment"`
	Category string  `json:"category"`
	Unit     string  `json:"unit"`
	Active   *bool   `json:"active"`
}

func (p *productPayload) toModel() models.Product {
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	return models.Product{
		Name:     p.Name,
		Price:    p.Price,
		Comment:  p.Comment,
		Category: p.Category,
		Unit:     p.Unit,
		Active:   active,
	}
}

// listProducts resolves the optional name/category filters in priority
// order. Every branch except /admin filters on active=true.
func (s *Server) listProducts(c *gin.Context) {
	name := c.Query("name")
	category := c.Query("category")

	var (
		products []models.Product
		err      error
	)
	switch {
	case name != "" && category != "":
		products, err = s.products.FindByNameCategoryActive(c.Request.Context(), name, category)
	case name != "":
		products, err = s.products.FindByNameActive(c.Request.Context(), name)
	case category != "":
		products, err = s.products.FindByCategoryActive(c.Request.Context(), category)
	default:
		products, err = s.products.FindActive(c.Request.Context())
	}
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) getProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if cached := s.cachedProduct(c.Request.Context(), id); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := s.products.FindByID(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("Failed to get product", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if product == nil {
		// Absence is an empty result, not an error.
		c.JSON(http.StatusOK, nil)
		return
	}

	s.cacheProduct(c.Request.Context(), product)
	c.JSON(http.StatusOK, product)
}

func (s *Server) createProduct(c *gin.Context) {
	var payload productPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := payload.toModel()
	if err := s.products.Save(c.Request.Context(), &product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.cacheProduct(c.Request.Context(), &product)
	s.auditLog("create_product", product.ID, bson.M{"name": product.Name, "price": product.Price})

	c.JSON(http.StatusCreated, product)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload productPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The id always comes from the path, never from the body.
	product := payload.toModel()
	product.ID = id
	if err := s.products.Save(c.Request.Context(), &product); err != nil {
		s.logger.Error("Failed to update product", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.invalidateProduct(c.Request.Context(), id)
	s.auditLog("update_product", product.ID, bson.M{"name": product.Name, "price": product.Price})

	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.products.DeleteByID(c.Request.Context(), id); err != nil {
		s.logger.Error("Failed to delete product", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.invalidateProduct(c.Request.Context(), id)
	s.auditLog("delete_product", id, bson.M{})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) searchProducts(c *gin.Context) {
	products, err := s.products.FindByNameActive(c.Request.Context(), c.Query("name"))
	if err != nil {
		s.logger.Error("Failed to search products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) productsByCategory(c *gin.Context) {
	products, err := s.products.FindByCategoryActive(c.Request.Context(), c.Query("category"))
	if err != nil {
		s.logger.Error("Failed to filter products by category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) activeProducts(c *gin.Context) {
	products, err := s.products.FindActive(c.Request.Context())
	if err != nil {
		s.logger.Error("Failed to list active products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// adminProducts is the unfiltered listing, inactive rows included.
func (s *Server) adminProducts(c *gin.Context) {
	products, err := s.products.FindAll(c.Request.Context())
	if err != nil {
		s.logger.Error("Failed to list all products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}
