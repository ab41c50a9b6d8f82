package handlers

import (
	"net/http"
	"strings"
	"testing"

	"tade-autism-centre/backend/auth"
)

func TestContactValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"p@example.com","message":"hello"}`},
		{"missing email", `{"name":"Pat","message":"hello"}`},
		{"missing message", `{"name":"Pat","email":"p@example.com"}`},
		{"invalid email", `{"name":"Pat","email":"nope","message":"hello"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv()
			w := postJSON(env, "/api/contact", "", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if len(env.mailer.sent) != 0 {
				t.Errorf("no email should go out on invalid input, sent %d", len(env.mailer.sent))
			}
		})
	}
}

func TestContactSendsNotificationAndAcknowledgement(t *testing.T) {
	env := newTestEnv()

	w := postJSON(env, "/api/contact", "", `{"name":"Pat","email":"p@example.com","message":"hello there"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if len(env.mailer.sent) != 2 {
		t.Fatalf("expected exactly two emails, sent %d", len(env.mailer.sent))
	}

	notification := env.mailer.sent[0]
	if notification.To != auth.AdminInbox {
		t.Errorf("notification addressed to %q, want admin inbox", notification.To)
	}
	if notification.ReplyTo != "p@example.com" {
		t.Errorf("notification reply-to %q, want submitter", notification.ReplyTo)
	}
	if !strings.Contains(notification.HTML, "hello there") {
		t.Error("notification should carry the message")
	}

	acknowledgement := env.mailer.sent[1]
	if acknowledgement.To != "p@example.com" {
		t.Errorf("acknowledgement addressed to %q, want submitter", acknowledgement.To)
	}
}

func TestContactDeliveryFailure(t *testing.T) {
	env := newTestEnv()
	env.mailer.fail = true

	w := postJSON(env, "/api/contact", "", `{"name":"Pat","email":"p@example.com","message":"hello"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 when the relay rejects, got %d", w.Code)
	}
}

func TestAdultsContact(t *testing.T) {
	env := newTestEnv()

	w := postJSON(env, "/api/adults/contact", "", `{"name":"Pat","email":"p@example.com","message":"adult services query"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(env.mailer.sent) != 2 {
		t.Fatalf("expected two emails, sent %d", len(env.mailer.sent))
	}
	if !strings.Contains(env.mailer.sent[0].Subject, "Adult Services") {
		t.Errorf("unexpected notification subject %q", env.mailer.sent[0].Subject)
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv()

	// centre is the required primary field; phone and details are optional
	w := postJSON(env, "/api/register", "", `{"name":"Pat","email":"p@example.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without centre, got %d", w.Code)
	}
}

func TestRegisterSendsBothEmails(t *testing.T) {
	env := newTestEnv()

	w := postJSON(env, "/api/register", "", `{"name":"Pat","email":"p@example.com","centre":"Day Centre North"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(env.mailer.sent) != 2 {
		t.Fatalf("expected two emails, sent %d", len(env.mailer.sent))
	}

	notification := env.mailer.sent[0]
	if !strings.Contains(notification.HTML, "Day Centre North") {
		t.Error("notification should carry the centre of interest")
	}
	// absent optionals render as placeholders
	if !strings.Contains(notification.HTML, "N/A") || !strings.Contains(notification.HTML, "None") {
		t.Error("absent phone/details should render as N/A and None")
	}
}

func TestLeadFormsPersistNothing(t *testing.T) {
	env := newTestEnv()

	postJSON(env, "/api/contact", "", `{"name":"Pat","email":"p@example.com","message":"hello"}`)
	postJSON(env, "/api/register", "", `{"name":"Pat","email":"p@example.com","centre":"North"}`)

	if len(env.repo.specialists) != 0 || len(env.repo.assessments) != 0 {
		t.Error("lead forms must not write to the database")
	}
}
