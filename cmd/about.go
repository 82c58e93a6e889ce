package main

import (
	"errors"
	"net/http"

	"github.com/kartiksharma/portfolio/internal/store"
	"github.com/kartiksharma/portfolio/internal/validator"
	"github.com/kartiksharma/portfolio/models"
)

// getAboutContent returns the singleton about row, or a JSON null when it
// has never been written.
func (app *application) getAboutContent(w http.ResponseWriter, r *http.Request) {
	about, err := app.store.AboutContent()
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			if err := app.writeJSON(w, http.StatusOK, nil, nil); err != nil {
				app.internalErrorResponse(w, r, err)
			}
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, about, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

// upsertAboutContent writes the singleton: the existing row is replaced
// in place, keeping its identifier, or inserted on first write.
func (app *application) upsertAboutContent(w http.ResponseWriter, r *http.Request) {
	var in models.AboutContentInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	v.CheckNotBlank(in.Title, "title", "must be provided")
	v.CheckNotBlank(in.Subtitle, "subtitle", "must be provided")
	v.CheckNotBlank(in.Description, "description", "must be provided")
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	about, err := app.store.UpsertAboutContent(in)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, about, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
