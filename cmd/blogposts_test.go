package main

import (
	"net/http"
	"testing"
	"time"
)

func TestBlogPostSlugConflict(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)
	ts.login(t)

	payload := map[string]any{
		"title":   "Hello World",
		"slug":    "hello-world",
		"excerpt": "e",
		"content": "c",
		"tags":    []string{},
	}

	status, _ := ts.do(t, http.MethodPost, "/api/blog-posts", payload)
	if status != http.StatusOK {
		t.Fatalf("create status = %d, want 200", status)
	}

	status, body := ts.do(t, http.MethodPost, "/api/blog-posts", payload)
	if status != http.StatusConflict {
		t.Fatalf("duplicate create: status = %d, want 409", status)
	}
	if body["error"] != "A blog post with this slug already exists" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestBlogPostSlugRoute(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)
	ts.login(t)

	status, created := ts.do(t, http.MethodPost, "/api/blog-posts", map[string]any{
		"title":   "Routing Post",
		"slug":    "routing-post",
		"excerpt": "e",
		"content": "c",
		"tags":    []string{},
	})
	if status != http.StatusOK {
		t.Fatalf("create status = %d", status)
	}

	status, bySlug := ts.do(t, http.MethodGet, "/api/blog-posts/slug/routing-post", nil)
	if status != http.StatusOK {
		t.Fatalf("slug lookup status = %d, want 200", status)
	}
	if bySlug["id"] != created["id"] {
		t.Errorf("slug lookup returned %v, want %v", bySlug["id"], created["id"])
	}

	// The slug route must not shadow the id route, and vice versa.
	status, byID := ts.do(t, http.MethodGet, "/api/blog-posts/"+created["id"].(string), nil)
	if status != http.StatusOK {
		t.Fatalf("id lookup status = %d, want 200", status)
	}
	if byID["slug"] != "routing-post" {
		t.Errorf("id lookup slug = %v", byID["slug"])
	}

	status, body := ts.do(t, http.MethodGet, "/api/blog-posts/slug/missing", nil)
	if status != http.StatusNotFound {
		t.Fatalf("missing slug: status = %d, want 404", status)
	}
	if body["error"] != "Blog post not found" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestBlogPostPublishedFilter(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)
	ts.login(t)

	publishedAt := time.Now().Format(time.RFC3339)
	for _, p := range []map[string]any{
		{"title": "Draft", "slug": "draft", "excerpt": "e", "content": "c", "tags": []string{}},
		{"title": "Live", "slug": "live", "excerpt": "e", "content": "c", "tags": []string{}, "published": "true", "publishedAt": publishedAt},
	} {
		status, body := ts.do(t, http.MethodPost, "/api/blog-posts", p)
		if status != http.StatusOK {
			t.Fatalf("create status = %d: %v", status, body)
		}
	}

	status, all := ts.doList(t, "/api/blog-posts")
	if status != http.StatusOK {
		t.Fatalf("list status = %d", status)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(all))
	}

	status, published := ts.doList(t, "/api/blog-posts?published=true")
	if status != http.StatusOK {
		t.Fatalf("filtered list status = %d", status)
	}
	if len(published) != 1 {
		t.Fatalf("expected 1 published post, got %d", len(published))
	}
	if published[0]["title"] != "Live" {
		t.Errorf("title = %v, want Live", published[0]["title"])
	}
}

func TestBlogPostSlugValidation(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app)
	ts.login(t)

	for _, slug := range []string{"Has Spaces", "UPPER", "trailing-", "-leading", "double--dash"} {
		status, body := ts.do(t, http.MethodPost, "/api/blog-posts", map[string]any{
			"title":   "t",
			"slug":    slug,
			"excerpt": "e",
			"content": "c",
			"tags":    []string{},
		})
		if status != http.StatusBadRequest {
			t.Errorf("slug %q: status = %d, want 400 (%v)", slug, status, body)
		}
	}
}
