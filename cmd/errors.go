package main

import (
	"log/slog"
	"net/http"

	"github.com/mdobak/go-xerrors"
)

type AppError struct {
	ErrorStack   error
	ErrorMessage string
	ErrorDetails map[string]string
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, appError *AppError) {
	app.errorResponse(w, r, http.StatusBadRequest, appError)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, &AppError{
		ErrorMessage: "The requested resource could not be found.",
	})
}

// resourceNotFoundResponse writes the per-resource 404 body, e.g.
// {"error":"Project not found"}. Not-found is a normal outcome and is not
// logged as an error.
func (app *application) resourceNotFoundResponse(w http.ResponseWriter, r *http.Request, resource string) {
	body := envelope{"error": resource + " not found"}
	if err := app.writeJSON(w, http.StatusNotFound, body, nil); err != nil {
		app.logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) authenticationRequiredResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, &AppError{
		ErrorMessage: "Authentication required",
	})
}

func (app *application) internalErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusInternalServerError, &AppError{
		ErrorStack:   err,
		ErrorMessage: "An internal server error occurred.",
	})
}

func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, appError *AppError) {
	body := envelope{"error": appError.ErrorMessage}
	if len(appError.ErrorDetails) > 0 {
		if appError.ErrorMessage == "" {
			body["error"] = "The request could not be processed."
		}
		body["details"] = appError.ErrorDetails
	}

	var attrs []slog.Attr
	attrs = append(attrs, slog.String("request_url", r.URL.String()))
	attrs = append(attrs, slog.String("request_method", r.Method))
	if appError.ErrorStack != nil {
		attrs = append(attrs, slog.String("stack", xerrors.Sprint(appError.ErrorStack)))
	}

	for key, valueData := range appError.ErrorDetails {
		attrs = append(attrs, slog.Any(key, valueData))
	}

	app.logger.LogAttrs(r.Context(), slog.LevelError, "Error in handling request", attrs...)

	if err := app.writeJSON(w, status, body, nil); err != nil {
		app.logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
	}
}
