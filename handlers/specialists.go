package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tade-autism-centre/backend/middleware"
	"tade-autism-centre/backend/models"
	"tade-autism-centre/backend/monitoring"
	"tade-autism-centre/backend/utils"
)

const specialistListCacheKey = "specialists:list"

type SpecialistHandler struct {
	repo  models.Repository
	cache utils.RedisClient
	kafka utils.KafkaProducer
}

func NewSpecialistHandler(repo models.Repository, cache utils.RedisClient, kafka utils.KafkaProducer) *SpecialistHandler {
	return &SpecialistHandler{
		repo:  repo,
		cache: cache,
		kafka: kafka,
	}
}

type SpecialistContactRequest struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"omitempty,e164"`
}

type SpecialistRequest struct {
	Name     string                   `json:"name" binding:"required,max=100"`
	Type     string                   `json:"type" binding:"required"`
	Location string                   `json:"location" binding:"required,max=200"`
	Contact  SpecialistContactRequest `json:"contact" binding:"required"`
	Notes    string                   `json:"notes"`
}

// Add persists a directory entry. Authentication and the allow-list
// check run in middleware before this handler; records are append-only
// and the generated id is not surfaced to the caller.
func (h *SpecialistHandler) Add(c *gin.Context) {
	var req SpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	specialist := &models.Specialist{
		Name:     req.Name,
		Type:     req.Type,
		Location: req.Location,
		Contact: models.SpecialistContact{
			Email: req.Contact.Email,
			Phone: req.Contact.Phone,
		},
		Notes: req.Notes,
	}

	if err := h.repo.CreateSpecialist(specialist); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add specialist."})
		return
	}

	monitoring.SubmissionsTotal.WithLabelValues("specialist").Inc()
	log.Printf("Specialist %q added by %s", specialist.Name, c.GetString(middleware.AdminEmailKey))

	// the cached listing is stale now
	if h.cache != nil {
		if err := h.cache.DeleteFromCache(c.Request.Context(), specialistListCacheKey); err != nil {
			log.Printf("Failed to invalidate specialist cache: %v", err)
		}
	}

	if h.kafka != nil {
		go publishEvent(h.kafka, map[string]interface{}{
			"event": "specialist_created",
			"id":    specialist.ID,
			"data":  specialist,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// List returns every specialist in storage order, no pagination and no
// server-side filtering. A fresh cached copy short-circuits Postgres.
func (h *SpecialistHandler) List(c *gin.Context) {
	if h.cache != nil {
		if cached, err := h.cache.GetFromCache(c.Request.Context(), specialistListCacheKey); err == nil && cached != "" {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	specialists, err := h.repo.ListSpecialists()
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load specialists."})
		return
	}

	if h.cache != nil {
		if encoded, err := json.Marshal(specialists); err == nil {
			if err := h.cache.SetToCache(c.Request.Context(), specialistListCacheKey, string(encoded), 5*time.Minute); err != nil {
				log.Printf("Failed to cache specialist list: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, specialists)
}
