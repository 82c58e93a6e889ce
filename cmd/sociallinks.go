package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kartiksharma/portfolio/internal/store"
	"github.com/kartiksharma/portfolio/internal/validator"
	"github.com/kartiksharma/portfolio/models"
)

func validateSocialLinkInput(v *validator.Validator, in *models.SocialLinkInput) {
	v.CheckNotBlank(in.Platform, "platform", "must be provided")
	v.CheckNotBlank(in.URL, "url", "must be provided")
	v.CheckNotBlank(in.Icon, "icon", "must be provided")
	checkOrderString(v, in.Order, "order")
}

func (app *application) listSocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := app.store.SocialLinks()
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, links, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) getSocialLink(w http.ResponseWriter, r *http.Request) {
	link, err := app.store.SocialLink(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			app.resourceNotFoundResponse(w, r, "Social link")
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, link, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) createSocialLink(w http.ResponseWriter, r *http.Request) {
	var in models.SocialLinkInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	validateSocialLinkInput(v, &in)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	link, err := app.store.CreateSocialLink(in)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, link, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) updateSocialLink(w http.ResponseWriter, r *http.Request) {
	var in models.SocialLinkInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	validateSocialLinkInput(v, &in)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	link, err := app.store.UpdateSocialLink(chi.URLParam(r, "id"), in)
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			app.resourceNotFoundResponse(w, r, "Social link")
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, link, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) deleteSocialLink(w http.ResponseWriter, r *http.Request) {
	deleted, err := app.store.DeleteSocialLink(chi.URLParam(r, "id"))
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}
	if !deleted {
		app.resourceNotFoundResponse(w, r, "Social link")
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"success": true}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
