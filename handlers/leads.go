package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tade-autism-centre/backend/auth"
	"tade-autism-centre/backend/monitoring"
	"tade-autism-centre/backend/utils"
)

// LeadHandler serves the contact, adult-services and registration
// forms. Nothing is persisted: each submission becomes one notification
// to the admin inbox plus one acknowledgement to the submitter.
type LeadHandler struct {
	mailer utils.Mailer
}

func NewLeadHandler(mailer utils.Mailer) *LeadHandler {
	return &LeadHandler{mailer: mailer}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type RegisterRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Centre  string `json:"centre" binding:"required"`
	Details string `json:"details"`
}

func (h *LeadHandler) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	notification := utils.EmailMessage{
		To:      auth.AdminInbox,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New Contact Form Message from %s", req.Name),
		HTML: fmt.Sprintf(`
			<h3>New Contact Form Submission</h3>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p>%s</p>
		`, req.Name, req.Email, req.Message),
	}

	acknowledgement := utils.EmailMessage{
		To:      req.Email,
		Subject: "Thanks for contacting Tade Autism Centre",
		HTML: fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Thank you for reaching out to <strong>Tade Autism Centre</strong>. We have received your message and our team will get back to you shortly.</p>
			<hr />
			<p><strong>Your Message:</strong></p>
			<p>%s</p>
			<hr />
			<p>Warm regards,<br/>The Tade Autism Centre Team</p>
		`, req.Name, req.Message),
	}

	h.sendPair(c, "contact", notification, acknowledgement, "Failed to send message")
}

func (h *LeadHandler) AdultsContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	notification := utils.EmailMessage{
		To:      auth.AdminInbox,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New Adult Services Enquiry from %s", req.Name),
		HTML: fmt.Sprintf(`
			<h3>New Adult Services Contact</h3>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p>%s</p>
		`, req.Name, req.Email, req.Message),
	}

	acknowledgement := utils.EmailMessage{
		To:      req.Email,
		Subject: "Thanks for contacting Tade Autism Centre (Adult Services)",
		HTML: fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Thank you for reaching out to <strong>Tade Autism Centre</strong> regarding our adult services. We have received your enquiry and one of our team will respond shortly.</p>
			<hr />
			<p><strong>Your Message:</strong></p>
			<p>%s</p>
			<hr />
			<p>Warm regards,<br/>The Tade Autism Centre Team</p>
		`, req.Name, req.Message),
	}

	h.sendPair(c, "adults_contact", notification, acknowledgement, "Failed to send message")
}

func (h *LeadHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	phone := req.Phone
	if phone == "" {
		phone = "N/A"
	}
	details := req.Details
	if details == "" {
		details = "None"
	}

	notification := utils.EmailMessage{
		To:      auth.AdminInbox,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New Registration of Interest from %s", req.Name),
		HTML: fmt.Sprintf(`
			<h3>New Registration Submission</h3>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Centre of Interest:</strong> %s</p>
			<p><strong>Details:</strong> %s</p>
		`, req.Name, req.Email, phone, req.Centre, details),
	}

	acknowledgement := utils.EmailMessage{
		To:      req.Email,
		Subject: "Registration Received - Tade Autism Centre",
		HTML: fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Thank you for registering your interest with <strong>Tade Autism Centre</strong>. We have received your details and will be in touch shortly.</p>
			<hr />
			<p><strong>Your Submission:</strong></p>
			<ul>
				<li>Email: %s</li>
				<li>Phone: %s</li>
				<li>Centre: %s</li>
				<li>Details: %s</li>
			</ul>
			<hr />
			<p>Warm regards,<br/>The Tade Autism Centre Team</p>
		`, req.Name, req.Email, phone, req.Centre, details),
	}

	h.sendPair(c, "register", notification, acknowledgement, "Failed to send registration")
}

// sendPair sends the admin notification then the acknowledgement. A
// rejection of either send fails the whole request; callers are not
// told which of the two was lost.
func (h *LeadHandler) sendPair(c *gin.Context, form string, notification, acknowledgement utils.EmailMessage, errText string) {
	if err := h.mailer.Send(c.Request.Context(), notification); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errText})
		return
	}

	if err := h.mailer.Send(c.Request.Context(), acknowledgement); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errText})
		return
	}

	monitoring.SubmissionsTotal.WithLabelValues(form).Inc()
	monitoring.EmailsSent.WithLabelValues(form).Add(2)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
