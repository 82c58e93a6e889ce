package main

import (
	"net/http"
	"testing"
)

func TestRegisterAndCurrentUser(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)

	status, _ := ts.do(t, http.MethodGet, "/api/user", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("anonymous /api/user: status = %d, want 401", status)
	}

	ts.login(t)

	status, body := ts.do(t, http.MethodGet, "/api/user", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["username"] != "admin" {
		t.Errorf("username = %v, want admin", body["username"])
	}
	if _, leaked := body["password"]; leaked {
		t.Error("the password hash must never appear in a response")
	}
}

func TestRegisterRejectsWrongSecret(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)

	status, body := ts.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "admin",
		"password": "password123",
		"secret":   "wrong",
	})
	if status != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", status)
	}
	if body["error"] != "Invalid registration secret" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestRegisterDisabledWithoutSecret(t *testing.T) {
	app, _ := newTestApplication(t)
	app.config.RegistrationSecret = ""
	ts := newTestServer(t, app)

	status, body := ts.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "admin",
		"password": "password123",
		"secret":   "anything",
	})
	if status != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", status)
	}
	if body["error"] != "Registration is disabled" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)

	status, body := ts.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "admin",
		"password": "short",
		"secret":   "test-secret",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	details, ok := body["details"].(map[string]any)
	if !ok {
		t.Fatalf("expected validation details, got %v", body)
	}
	if details["password"] == nil {
		t.Error("expected a password validation message")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)
	ts.login(t)

	status, body := ts.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "admin",
		"password": "password123",
		"secret":   "test-secret",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	details, _ := body["details"].(map[string]any)
	if details["username"] != "Username is already in use" {
		t.Errorf("details = %v", body["details"])
	}
}

func TestLoginLogout(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)
	ts.login(t)

	// Drop the session from registration, then log back in.
	status, body := ts.do(t, http.MethodPost, "/api/logout", nil)
	if status != http.StatusOK {
		t.Fatalf("logout status = %d, want 200", status)
	}
	if body["success"] != true {
		t.Errorf("logout body = %v", body)
	}

	status, _ = ts.do(t, http.MethodGet, "/api/user", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("after logout /api/user: status = %d, want 401", status)
	}

	status, body = ts.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": "admin",
		"password": "password123",
	})
	if status != http.StatusOK {
		t.Fatalf("login status = %d, want 200: %v", status, body)
	}

	status, _ = ts.do(t, http.MethodGet, "/api/user", nil)
	if status != http.StatusOK {
		t.Fatalf("after login /api/user: status = %d, want 200", status)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)
	ts.login(t)
	ts.do(t, http.MethodPost, "/api/logout", nil)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "not-the-password"},
		{"unknown user", "nobody", "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ts.do(t, http.MethodPost, "/api/login", map[string]string{
				"username": tt.username,
				"password": tt.password,
			})
			if status != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", status)
			}
			if body["error"] != "Invalid credentials" {
				t.Errorf("error = %v", body["error"])
			}
		})
	}
}
