package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kartiksharma/portfolio/internal/store"
	"github.com/kartiksharma/portfolio/internal/validator"
	"github.com/kartiksharma/portfolio/models"
)

func validateCertificateInput(v *validator.Validator, in *models.CertificateInput) {
	v.CheckNotBlank(in.Title, "title", "must be provided")
	v.CheckNotBlank(in.Issuer, "issuer", "must be provided")
	v.CheckNotBlank(in.IssueDate, "issueDate", "must be provided")
	v.Check(in.Skills != nil, "skills", "must be provided")
}

func (app *application) listCertificates(w http.ResponseWriter, r *http.Request) {
	certificates, err := app.store.Certificates()
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, certificates, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) getCertificate(w http.ResponseWriter, r *http.Request) {
	certificate, err := app.store.Certificate(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			app.resourceNotFoundResponse(w, r, "Certificate")
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, certificate, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) createCertificate(w http.ResponseWriter, r *http.Request) {
	var in models.CertificateInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	validateCertificateInput(v, &in)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	certificate, err := app.store.CreateCertificate(in)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, certificate, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) updateCertificate(w http.ResponseWriter, r *http.Request) {
	var in models.CertificateInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	validateCertificateInput(v, &in)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	certificate, err := app.store.UpdateCertificate(chi.URLParam(r, "id"), in)
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			app.resourceNotFoundResponse(w, r, "Certificate")
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, certificate, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) deleteCertificate(w http.ResponseWriter, r *http.Request) {
	deleted, err := app.store.DeleteCertificate(chi.URLParam(r, "id"))
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}
	if !deleted {
		app.resourceNotFoundResponse(w, r, "Certificate")
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"success": true}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
