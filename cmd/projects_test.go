package main

import (
	"net/http"
	"testing"
)

func TestProjectsRequireAuthForWrites(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)

	payload := map[string]any{
		"title":        "Side Project",
		"description":  "A thing",
		"technologies": []string{"Go"},
	}

	status, body := ts.do(t, http.MethodPost, "/api/projects", payload)
	if status != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create: status = %d, want 401", status)
	}
	if body["error"] != "Authentication required" {
		t.Errorf("error = %v", body["error"])
	}

	status, _ = ts.do(t, http.MethodPatch, "/api/projects/some-id", payload)
	if status != http.StatusUnauthorized {
		t.Errorf("unauthenticated update: status = %d, want 401", status)
	}

	status, _ = ts.do(t, http.MethodDelete, "/api/projects/some-id", nil)
	if status != http.StatusUnauthorized {
		t.Errorf("unauthenticated delete: status = %d, want 401", status)
	}
}

func TestProjectCRUD(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)
	ts.login(t)

	status, list := ts.doList(t, "/api/projects")
	if status != http.StatusOK {
		t.Fatalf("list status = %d, want 200", status)
	}
	if len(list) != 0 {
		t.Fatalf("expected an empty list, got %d items", len(list))
	}

	status, created := ts.do(t, http.MethodPost, "/api/projects", map[string]any{
		"title":        "Side Project",
		"description":  "A thing",
		"technologies": []string{"Go", "Postgres"},
		"liveUrl":      "",
	})
	if status != http.StatusOK {
		t.Fatalf("create status = %d, want 200: %v", status, created)
	}
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("expected a generated id, got %v", created)
	}
	if created["featured"] != "false" {
		t.Errorf("featured = %v, want the string false", created["featured"])
	}
	if created["order"] != "0" {
		t.Errorf("order = %v, want the string 0", created["order"])
	}
	if created["liveUrl"] != nil {
		t.Errorf("liveUrl = %v, want null for an empty optional", created["liveUrl"])
	}

	status, got := ts.do(t, http.MethodGet, "/api/projects/"+id, nil)
	if status != http.StatusOK {
		t.Fatalf("get status = %d, want 200", status)
	}
	if got["title"] != "Side Project" {
		t.Errorf("title = %v", got["title"])
	}

	status, updated := ts.do(t, http.MethodPatch, "/api/projects/"+id, map[string]any{
		"title":        "Side Project v2",
		"description":  "A thing",
		"technologies": []string{"Go"},
		"featured":     "true",
		"order":        "5",
	})
	if status != http.StatusOK {
		t.Fatalf("update status = %d, want 200: %v", status, updated)
	}
	if updated["featured"] != "true" {
		t.Errorf("featured = %v, want true", updated["featured"])
	}

	status, deleted := ts.do(t, http.MethodDelete, "/api/projects/"+id, nil)
	if status != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", status)
	}
	if deleted["success"] != true {
		t.Errorf("delete body = %v", deleted)
	}

	status, body := ts.do(t, http.MethodGet, "/api/projects/"+id, nil)
	if status != http.StatusNotFound {
		t.Fatalf("get after delete: status = %d, want 404", status)
	}
	if body["error"] != "Project not found" {
		t.Errorf("error = %v, want %q", body["error"], "Project not found")
	}
}

func TestProjectValidation(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)
	ts.login(t)

	tests := []struct {
		name    string
		payload map[string]any
		field   string
	}{
		{
			"missing title",
			map[string]any{"description": "d", "technologies": []string{"Go"}},
			"title",
		},
		{
			"missing technologies",
			map[string]any{"title": "t", "description": "d"},
			"technologies",
		},
		{
			"featured is not a bool string",
			map[string]any{"title": "t", "description": "d", "technologies": []string{"Go"}, "featured": "yes"},
			"featured",
		},
		{
			"order is not numeric",
			map[string]any{"title": "t", "description": "d", "technologies": []string{"Go"}, "order": "first"},
			"order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ts.do(t, http.MethodPost, "/api/projects", tt.payload)
			if status != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %v", status, body)
			}
			details, _ := body["details"].(map[string]any)
			if details[tt.field] == nil {
				t.Errorf("expected a validation message for %q, got %v", tt.field, body)
			}
		})
	}
}

func TestUnknownFieldRejected(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)
	ts.login(t)

	status, _ := ts.do(t, http.MethodPost, "/api/projects", map[string]any{
		"title":        "t",
		"description":  "d",
		"technologies": []string{"Go"},
		"bogus":        true,
	})
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for an unknown field", status)
	}
}
