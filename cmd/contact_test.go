package main

import (
	"net/http"
	"testing"
	"time"
)

func TestSubmitContactMessage(t *testing.T) {
	app, notifier := newTestApplication(t)
	ts := newTestServer(t, app)

	status, body := ts.do(t, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Nice site!",
	})
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", status, body)
	}
	if body["id"] == "" || body["id"] == nil {
		t.Errorf("expected a stored message id, got %v", body)
	}
	if body["name"] != "Visitor" {
		t.Errorf("name = %v", body["name"])
	}

	// The notification runs on a background goroutine.
	app.wg.Wait()
	if notifier.count() != 1 {
		t.Errorf("notifier called %d times, want 1", notifier.count())
	}

	// Reading stored messages requires the admin session.
	status, _ = ts.do(t, http.MethodGet, "/api/contact-messages", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("anonymous read: status = %d, want 401", status)
	}

	ts.login(t)
	status, messages := ts.doList(t, "/api/contact-messages")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(messages))
	}
	if messages[0]["email"] != "visitor@example.com" {
		t.Errorf("email = %v", messages[0]["email"])
	}
}

func TestSubmitContactMessageValidation(t *testing.T) {
	app, notifier := newTestApplication(t)
	ts := newTestServer(t, app)

	tests := []struct {
		name    string
		payload map[string]string
		field   string
	}{
		{"missing name", map[string]string{"email": "a@b.co", "message": "m"}, "name"},
		{"bad email", map[string]string{"name": "n", "email": "nope", "message": "m"}, "email"},
		{"missing message", map[string]string{"name": "n", "email": "a@b.co"}, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ts.do(t, http.MethodPost, "/api/contact", tt.payload)
			if status != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %v", status, body)
			}
			details, _ := body["details"].(map[string]any)
			if details[tt.field] == nil {
				t.Errorf("expected a validation message for %q, got %v", tt.field, body)
			}
		})
	}

	app.wg.Wait()
	if notifier.count() != 0 {
		t.Errorf("rejected submissions must not trigger email, got %d sends", notifier.count())
	}
}

func TestHealthcheck(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)

	status, body := ts.do(t, http.MethodGet, "/health", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}

	timestamp, _ := body["timestamp"].(string)
	if _, err := time.Parse(time.RFC3339, timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", timestamp, err)
	}
}
