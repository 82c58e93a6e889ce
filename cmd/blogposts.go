package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kartiksharma/portfolio/internal/store"
	"github.com/kartiksharma/portfolio/internal/validator"
	"github.com/kartiksharma/portfolio/models"
)

func validateBlogPostInput(v *validator.Validator, in *models.BlogPostInput) {
	v.CheckNotBlank(in.Title, "title", "must be provided")
	checkSlug(v, in.Slug)
	v.CheckNotBlank(in.Excerpt, "excerpt", "must be provided")
	v.CheckNotBlank(in.Content, "content", "must be provided")
	v.Check(in.Tags != nil, "tags", "must be provided")
	checkBoolString(v, in.Published, "published")
}

// listBlogPosts returns posts newest-change first. The public site passes
// ?published=true to restrict the listing to published posts ordered by
// publish date.
func (app *application) listBlogPosts(w http.ResponseWriter, r *http.Request) {
	publishedOnly := r.URL.Query().Get("published") == "true"

	posts, err := app.store.BlogPosts(publishedOnly)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, posts, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) getBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := app.store.BlogPost(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			app.resourceNotFoundResponse(w, r, "Blog post")
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, post, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) getBlogPostBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := app.store.BlogPostBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			app.resourceNotFoundResponse(w, r, "Blog post")
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, post, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) createBlogPost(w http.ResponseWriter, r *http.Request) {
	var in models.BlogPostInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	validateBlogPostInput(v, &in)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	post, err := app.store.CreateBlogPost(in)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateSlug) {
			app.errorResponse(w, r, http.StatusConflict, &AppError{
				ErrorMessage: "A blog post with this slug already exists",
			})
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, post, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) updateBlogPost(w http.ResponseWriter, r *http.Request) {
	var in models.BlogPostInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	validateBlogPostInput(v, &in)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	post, err := app.store.UpdateBlogPost(chi.URLParam(r, "id"), in)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoRecord):
			app.resourceNotFoundResponse(w, r, "Blog post")
			return
		case errors.Is(err, store.ErrDuplicateSlug):
			app.errorResponse(w, r, http.StatusConflict, &AppError{
				ErrorMessage: "A blog post with this slug already exists",
			})
			return
		default:
			app.internalErrorResponse(w, r, err)
			return
		}
	}

	if err := app.writeJSON(w, http.StatusOK, post, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) deleteBlogPost(w http.ResponseWriter, r *http.Request) {
	deleted, err := app.store.DeleteBlogPost(chi.URLParam(r, "id"))
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}
	if !deleted {
		app.resourceNotFoundResponse(w, r, "Blog post")
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"success": true}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
