package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kartiksharma/portfolio/internal/store"
	"github.com/kartiksharma/portfolio/internal/validator"
	"github.com/kartiksharma/portfolio/models"
)

func validateSkillInput(v *validator.Validator, in *models.SkillInput) {
	v.CheckNotBlank(in.Name, "name", "must be provided")
	v.CheckNotBlank(in.Category, "category", "must be provided")
	v.CheckNotBlank(in.Level, "level", "must be provided")
	if in.Category != "" {
		v.CheckOneOf(in.Category, "category", models.SkillCategories, "must be one of: technical, tools, soft")
	}
	if in.Level != "" {
		v.CheckOneOf(in.Level, "level", models.SkillLevels, "must be one of: beginner, intermediate, advanced, expert")
	}
}

func (app *application) listSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := app.store.Skills()
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, skills, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) getSkill(w http.ResponseWriter, r *http.Request) {
	skill, err := app.store.Skill(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			app.resourceNotFoundResponse(w, r, "Skill")
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, skill, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) createSkill(w http.ResponseWriter, r *http.Request) {
	var in models.SkillInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	validateSkillInput(v, &in)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	skill, err := app.store.CreateSkill(in)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, skill, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) updateSkill(w http.ResponseWriter, r *http.Request) {
	var in models.SkillInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	validateSkillInput(v, &in)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	skill, err := app.store.UpdateSkill(chi.URLParam(r, "id"), in)
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			app.resourceNotFoundResponse(w, r, "Skill")
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, skill, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) deleteSkill(w http.ResponseWriter, r *http.Request) {
	deleted, err := app.store.DeleteSkill(chi.URLParam(r, "id"))
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}
	if !deleted {
		app.resourceNotFoundResponse(w, r, "Skill")
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"success": true}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
