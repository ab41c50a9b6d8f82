package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tade-autism-centre/backend/auth"
	"tade-autism-centre/backend/middleware"
	"tade-autism-centre/backend/models"
	"tade-autism-centre/backend/utils"
)

// Shared fakes and router wiring for the handler tests. The router
// mirrors the route table in main.go.

type fakeRepo struct {
	specialists []models.Specialist
	assessments []models.Assessment
	failCreate  bool
	failList    bool
	nextID      uint
}

func (r *fakeRepo) CreateSpecialist(s *models.Specialist) error {
	if r.failCreate {
		return errors.New("connection refused")
	}
	r.nextID++
	s.ID = r.nextID
	s.CreatedAt = time.Now().UTC()
	r.specialists = append(r.specialists, *s)
	return nil
}

func (r *fakeRepo) ListSpecialists() ([]models.Specialist, error) {
	if r.failList {
		return nil, errors.New("connection refused")
	}
	out := make([]models.Specialist, len(r.specialists))
	copy(out, r.specialists)
	return out, nil
}

func (r *fakeRepo) CreateAssessment(a *models.Assessment) error {
	if r.failCreate {
		return errors.New("connection refused")
	}
	r.nextID++
	a.ID = r.nextID
	if a.SubmittedAt.IsZero() {
		a.SubmittedAt = time.Now().UTC()
	}
	r.assessments = append(r.assessments, *a)
	return nil
}

func (r *fakeRepo) ListAssessments() ([]models.Assessment, error) {
	if r.failList {
		return nil, errors.New("connection refused")
	}
	out := make([]models.Assessment, len(r.assessments))
	copy(out, r.assessments)
	return out, nil
}

func (r *fakeRepo) Ping() error  { return nil }
func (r *fakeRepo) Close() error { return nil }

type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) GetFromCache(ctx context.Context, key string) (string, error) {
	val, ok := c.entries[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return val, nil
}

func (c *fakeCache) SetToCache(ctx context.Context, key string, value string, expiration time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *fakeCache) DeleteFromCache(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func (c *fakeCache) Close() error { return nil }

type fakeMailer struct {
	sent []utils.EmailMessage
	fail bool
}

func (m *fakeMailer) Send(ctx context.Context, msg utils.EmailMessage) error {
	if m.fail {
		return errors.New("relay rejected message")
	}
	m.sent = append(m.sent, msg)
	return nil
}

// fakeVerifier resolves tokens from a fixed table; anything else is an
// invalid credential.
type fakeVerifier struct {
	tokens map[string]string
}

func (v *fakeVerifier) Verify(ctx context.Context, token string) (string, error) {
	email, ok := v.tokens[token]
	if !ok {
		return "", errors.New("invalid token")
	}
	return email, nil
}

type fakeCheckout struct {
	lastPlan string
	fail     bool
}

func (f *fakeCheckout) CreateSubscriptionSession(ctx context.Context, plan string) (string, error) {
	if f.fail {
		return "", errors.New("No such price")
	}
	f.lastPlan = plan
	return fmt.Sprintf("https://checkout.test/pay/%s", plan), nil
}

type testEnv struct {
	repo     *fakeRepo
	cache    *fakeCache
	mailer   *fakeMailer
	checkout *fakeCheckout
	router   *gin.Engine
}

// adminToken verifies to an allow-listed email; internToken verifies to
// a valid identity that is not on the allow-list.
const (
	adminToken  = "token-admin"
	internToken = "token-intern"
)

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		repo:     &fakeRepo{},
		cache:    newFakeCache(),
		mailer:   &fakeMailer{},
		checkout: &fakeCheckout{},
	}

	verifier := &fakeVerifier{tokens: map[string]string{
		adminToken:  auth.AdminInbox,
		internToken: "random@example.com",
	}}

	specialistHandler := NewSpecialistHandler(env.repo, env.cache, nil)
	assessmentHandler := NewAssessmentHandler(env.repo, env.mailer, nil)
	leadHandler := NewLeadHandler(env.mailer)
	checkoutHandler := NewCheckoutHandler(env.checkout)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	requireAdmin := middleware.RequireAdmin(verifier, auth.NewAllowlist())

	api := router.Group("/api")
	api.POST("/specialists/add", requireAdmin, specialistHandler.Add)
	api.GET("/specialists/list", specialistHandler.List)
	api.POST("/assessments/submit", assessmentHandler.Submit)
	api.GET("/assessments/submit", requireAdmin, assessmentHandler.List)
	api.POST("/contact", leadHandler.Contact)
	api.POST("/adults/contact", leadHandler.AdultsContact)
	api.POST("/register", leadHandler.Register)
	api.POST("/stripe/checkout-session", checkoutHandler.CreateSession)

	env.router = router
	return env
}
