package server

import (
	"net/http"

	"github.com/casuarinas/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type clientPayload struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Locality string `json:"locality"`
}

func (p *clientPayload) toModel() models.Client {
	return models.Client{
		Name:     p.Name,
		Phone:    p.Phone,
		Address:  p.Address,
		Locality: p.Locality,
	}
}

func (s *Server) listClients(c *gin.Context) {
	locality := c.Query("locality")

	var (
		clients []models.Client
		err     error
	)
	if locality != "" {
		clients, err = s.clients.FindByLocality(c.Request.Context(), locality)
	} else {
		clients, err = s.clients.FindAll(c.Request.Context())
	}
	if err != nil {
		s.logger.Error("Failed to list clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (s *Server) getClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := s.clients.FindByID(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("Failed to get client", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if client == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (s *Server) createClient(c *gin.Context) {
	var payload clientPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := payload.toModel()
	if err := s.clients.Save(c.Request.Context(), &client); err != nil {
		s.logger.Error("Failed to create client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.auditLog("create_client", client.ID, bson.M{"name": client.Name, "locality": client.Locality})

	c.JSON(http.StatusCreated, client)
}

func (s *Server) updateClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload clientPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := payload.toModel()
	client.ID = id
	if err := s.clients.Save(c.Request.Context(), &client); err != nil {
		s.logger.Error("Failed to update client", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.auditLog("update_client", client.ID, bson.M{"name": client.Name, "locality": client.Locality})

	c.JSON(http.StatusOK, client)
}

func (s *Server) deleteClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.clients.DeleteByID(c.Request.Context(), id); err != nil {
		s.logger.Error("Failed to delete client", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.auditLog("delete_client", id, bson.M{})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
