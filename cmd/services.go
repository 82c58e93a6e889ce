package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kartiksharma/portfolio/internal/store"
	"github.com/kartiksharma/portfolio/internal/validator"
	"github.com/kartiksharma/portfolio/models"
)

func validateServiceInput(v *validator.Validator, in *models.ServiceInput) {
	v.CheckNotBlank(in.Title, "title", "must be provided")
	v.CheckNotBlank(in.Description, "description", "must be provided")
	v.CheckNotBlank(in.Icon, "icon", "must be provided")
}

func (app *application) listServices(w http.ResponseWriter, r *http.Request) {
	services, err := app.store.Services()
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, services, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) getService(w http.ResponseWriter, r *http.Request) {
	service, err := app.store.Service(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			app.resourceNotFoundResponse(w, r, "Service")
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, service, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) createService(w http.ResponseWriter, r *http.Request) {
	var in models.ServiceInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	validateServiceInput(v, &in)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	service, err := app.store.CreateService(in)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, service, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) updateService(w http.ResponseWriter, r *http.Request) {
	var in models.ServiceInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	validateServiceInput(v, &in)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	service, err := app.store.UpdateService(chi.URLParam(r, "id"), in)
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			app.resourceNotFoundResponse(w, r, "Service")
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, service, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) deleteService(w http.ResponseWriter, r *http.Request) {
	deleted, err := app.store.DeleteService(chi.URLParam(r, "id"))
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}
	if !deleted {
		app.resourceNotFoundResponse(w, r, "Service")
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"success": true}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
