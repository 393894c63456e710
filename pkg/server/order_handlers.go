package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/casuarinas/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// timestampLayout is the zone-less ISO form accepted alongside RFC 3339 on
// the date-range endpoint.
const timestampLayout = "2006-01-02T15:04:05"

type orderPayload struct {
	ClientName string     `json:"client_name"`
	Phone      string     `json:"phone"`
	Address    string     `json:"address"`
	Locality   string     `json:"locality"`
	Items      string     `json:"items"`
	Total      float64    `json:"total"`
	Location   string     `json:"location"`
	Created    *time.Time `json:"created_at"`
}

func (p *orderPayload) toModel() models.Order {
	order := models.Order{
		ClientName: p.ClientName,
		Phone:      p.Phone,
		Address:    p.Address,
		Locality:   p.Locality,
		Items:      p.Items,
		Total:      p.Total,
		Location:   p.Location,
	}
	if p.Created != nil {
		order.Created = *p.Created
	}
	return order
}

// listOrders resolves the optional clientName/locality filters in priority
// order; the combined filter wins over either one alone.
func (s *Server) listOrders(c *gin.Context) {
	clientName := c.Query("clientName")
	locality := c.Query("locality")

	var (
		orders []models.Order
		err    error
	)
	switch {
	case clientName != "" && locality != "":
		orders, err = s.orders.FindByClientNameAndLocality(c.Request.Context(), clientName, locality)
	case clientName != "":
		orders, err = s.orders.FindByClientName(c.Request.Context(), clientName)
	case locality != "":
		orders, err = s.orders.FindByLocality(c.Request.Context(), locality)
	default:
		orders, err = s.orders.FindAll(c.Request.Context())
	}
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := s.orders.FindByID(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("Failed to get order", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if order == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) createOrder(c *gin.Context) {
	var payload orderPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := payload.toModel()
	if order.Created.IsZero() {
		order.Created = time.Now()
	}
	if err := s.orders.Save(c.Request.Context(), &order); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.auditLog("create_order", order.ID, bson.M{"client_name": order.ClientName, "total": order.Total})

	c.JSON(http.StatusCreated, order)
}

func (s *Server) updateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload orderPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := payload.toModel()
	order.ID = id
	if err := s.orders.Save(c.Request.Context(), &order); err != nil {
		s.logger.Error("Failed to update order", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.auditLog("update_order", order.ID, bson.M{"client_name": order.ClientName, "total": order.Total})

	c.JSON(http.StatusOK, order)
}

func (s *Server) deleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.orders.DeleteByID(c.Request.Context(), id); err != nil {
		s.logger.Error("Failed to delete order", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.auditLog("delete_order", id, bson.M{})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) ordersByDateRange(c *gin.Context) {
	start, err := parseTimestamp(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start: " + err.Error()})
		return
	}
	end, err := parseTimestamp(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end: " + err.Error()})
		return
	}

	orders, err := s.orders.FindByCreatedBetween(c.Request.Context(), start, end)
	if err != nil {
		s.logger.Error("Failed to filter orders by date", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) ordersByMinTotal(c *gin.Context) {
	minTotal, err := strconv.ParseFloat(c.Query("minTotal"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minTotal: " + err.Error()})
		return
	}

	orders, err := s.orders.FindByMinTotal(c.Request.Context(), minTotal)
	if err != nil {
		s.logger.Error("Failed to filter orders by total", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(timestampLayout, value)
}
