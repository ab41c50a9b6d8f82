package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tade-autism-centre/backend/monitoring"
	"tade-autism-centre/backend/utils"
)

type CheckoutHandler struct {
	checkout utils.CheckoutClient
}

func NewCheckoutHandler(checkout utils.CheckoutClient) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type CheckoutRequest struct {
	Plan string `json:"plan" binding:"required,oneof=monthly yearly"`
}

// CreateSession asks the payment provider for a hosted subscription
// checkout and returns its URL. Unrecognised plans are rejected instead
// of silently falling back to yearly.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan"})
		return
	}

	url, err := h.checkout.CreateSubscriptionSession(c.Request.Context(), req.Plan)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	monitoring.SubmissionsTotal.WithLabelValues("checkout").Inc()

	c.JSON(http.StatusOK, gin.H{"url": url})
}
