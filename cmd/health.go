package main

import (
	"net/http"
	"time"
)

func (app *application) healthcheck(w http.ResponseWriter, r *http.Request) {
	data := envelope{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := app.writeJSON(w, http.StatusOK, data, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
