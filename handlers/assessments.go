package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tade-autism-centre/backend/models"
	"tade-autism-centre/backend/monitoring"
	"tade-autism-centre/backend/utils"
)

type AssessmentHandler struct {
	repo   models.Repository
	mailer utils.Mailer
	kafka  utils.KafkaProducer
}

func NewAssessmentHandler(repo models.Repository, mailer utils.Mailer, kafka utils.KafkaProducer) *AssessmentHandler {
	return &AssessmentHandler{
		repo:   repo,
		mailer: mailer,
		kafka:  kafka,
	}
}

type AssessmentRequest struct {
	Name          string `json:"name" binding:"required"`
	Age           int    `json:"age" binding:"required"`
	Concerns      string `json:"concerns" binding:"required"`
	ParentEmail   string `json:"parentEmail" binding:"omitempty,email"`
	ParentPhone   string `json:"parentPhone"`
	PreferredDate string `json:"preferredDate"`
}

// Submit stores an assessment request and, when a parent email was
// given, sends one confirmation. The record is kept even if the
// confirmation cannot be sent: mail is best-effort and never rolls
// back the insert.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	var req AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	assessment := &models.Assessment{
		Name:          req.Name,
		Age:           req.Age,
		Concerns:      req.Concerns,
		ParentEmail:   req.ParentEmail,
		ParentPhone:   req.ParentPhone,
		PreferredDate: req.PreferredDate,
	}

	if err := h.repo.CreateAssessment(assessment); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save assessment."})
		return
	}

	monitoring.SubmissionsTotal.WithLabelValues("assessment").Inc()

	if req.ParentEmail != "" {
		msg := utils.EmailMessage{
			To:      req.ParentEmail,
			Subject: "Assessment Submitted - Tade Autism Centre",
			HTML:    assessmentConfirmationBody(assessment),
		}
		if err := h.mailer.Send(c.Request.Context(), msg); err != nil {
			// record is already saved; report and carry on
			c.Error(err)
		} else {
			monitoring.EmailsSent.WithLabelValues("assessment_confirmation").Inc()
		}
	}

	if h.kafka != nil {
		go publishEvent(h.kafka, map[string]interface{}{
			"event": "assessment_submitted",
			"id":    assessment.ID,
			"data":  assessment,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": assessment})
}

// List is the admin view of every submitted assessment. The allow-list
// gate runs in middleware.
func (h *AssessmentHandler) List(c *gin.Context) {
	assessments, err := h.repo.ListAssessments()
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assessments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": assessments})
}

func assessmentConfirmationBody(a *models.Assessment) string {
	preferred := a.PreferredDate
	if preferred == "" {
		preferred = "Not provided"
	}

	return fmt.Sprintf(`
		<h2>Thank you for your submission</h2>
		<p>Dear Parent/Carer,</p>
		<p>We have received your assessment request:</p>
		<ul>
			<li><strong>Child's Name:</strong> %s</li>
			<li><strong>Age:</strong> %d</li>
			<li><strong>Concerns:</strong> %s</li>
			<li><strong>Preferred Contact Date:</strong> %s</li>
		</ul>
		<p>Our team will contact you soon.</p>
		<p>Kind regards,</p>
		<p><strong>Tade Autism Centre</strong></p>
	`, a.Name, a.Age, a.Concerns, preferred)
}
