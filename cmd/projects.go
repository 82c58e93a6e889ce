package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kartiksharma/portfolio/internal/store"
	"github.com/kartiksharma/portfolio/internal/validator"
	"github.com/kartiksharma/portfolio/models"
)

func validateProjectInput(v *validator.Validator, in *models.ProjectInput) {
	v.CheckNotBlank(in.Title, "title", "must be provided")
	v.CheckNotBlank(in.Description, "description", "must be provided")
	v.Check(in.Technologies != nil, "technologies", "must be provided")
	checkBoolString(v, in.Featured, "featured")
	checkOrderString(v, in.Order, "order")
}

func (app *application) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := app.store.Projects()
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, projects, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) getProject(w http.ResponseWriter, r *http.Request) {
	project, err := app.store.Project(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			app.resourceNotFoundResponse(w, r, "Project")
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, project, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) createProject(w http.ResponseWriter, r *http.Request) {
	var in models.ProjectInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	validateProjectInput(v, &in)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	project, err := app.store.CreateProject(in)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, project, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

// updateProject replaces every mutable field; callers must resend the
// full create payload.
func (app *application) updateProject(w http.ResponseWriter, r *http.Request) {
	var in models.ProjectInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	validateProjectInput(v, &in)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	project, err := app.store.UpdateProject(chi.URLParam(r, "id"), in)
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			app.resourceNotFoundResponse(w, r, "Project")
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, project, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) deleteProject(w http.ResponseWriter, r *http.Request) {
	deleted, err := app.store.DeleteProject(chi.URLParam(r, "id"))
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}
	if !deleted {
		app.resourceNotFoundResponse(w, r, "Project")
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"success": true}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
