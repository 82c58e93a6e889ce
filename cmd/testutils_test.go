package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/kartiksharma/portfolio/internal/auth"
	"github.com/kartiksharma/portfolio/internal/config"
	"github.com/kartiksharma/portfolio/internal/store"
	"github.com/kartiksharma/portfolio/models"
)

// fakeNotifier stands in for the SMTP mailer and records what it was
// asked to send.
type fakeNotifier struct {
	mu   sync.Mutex
	sent []models.ContactMessageInput
}

func (f *fakeNotifier) Send(message models.ContactMessageInput) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, message)
	return true
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newTestApplication(t *testing.T) (*application, *fakeNotifier) {
	t.Helper()

	notifier := &fakeNotifier{}
	app := &application{
		config: config.Config{
			Env:                "development",
			RegistrationSecret: "test-secret",
		},
		store:    store.NewMemoryStore(),
		sessions: auth.NewSessions(),
		mailer:   notifier,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return app, notifier
}

// testServer wraps httptest.Server with a cookie-aware client so session
// cookies survive across requests within a test.
type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, app *application) *testServer {
	t.Helper()

	ts := httptest.NewServer(app.routes())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	ts.Client().Jar = jar

	return &testServer{ts}
}

// do issues a JSON request and decodes the response body into a generic
// map. A nil payload sends no body.
func (ts *testServer) do(t *testing.T, method, urlPath string, payload any) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.URL+urlPath, body)
	if err != nil {
		t.Fatal(err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("invalid JSON response %q: %v", raw, err)
		}
	}
	return resp.StatusCode, decoded
}

// doList is do for endpoints that respond with a JSON array.
func (ts *testServer) doList(t *testing.T, urlPath string) (int, []map[string]any) {
	t.Helper()

	resp, err := ts.Client().Get(ts.URL + urlPath)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var decoded []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("invalid JSON list response: %v", err)
	}
	return resp.StatusCode, decoded
}

// login registers the admin account through the API and leaves its
// session cookie in the client jar.
func (ts *testServer) login(t *testing.T) {
	t.Helper()

	status, body := ts.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "admin",
		"password": "password123",
		"secret":   "test-secret",
	})
	if status != http.StatusOK {
		t.Fatalf("registration failed with status %d: %v", status, body)
	}
}
