package main

import (
	"net/http"

	"github.com/kartiksharma/portfolio/internal/validator"
	"github.com/kartiksharma/portfolio/models"
)

// submitContactMessage stores the message and fires the email notification
// in the background. A notification failure never fails the request.
func (app *application) submitContactMessage(w http.ResponseWriter, r *http.Request) {
	var in models.ContactMessageInput
	if err := app.readJSON(w, r, &in); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	v.CheckNotBlank(in.Name, "name", "must be provided")
	checkEmail(v, in.Email)
	v.CheckNotBlank(in.Message, "message", "must be provided")
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	message, err := app.store.CreateContactMessage(in)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	app.doInBackground(func() {
		if !app.mailer.Send(in) {
			app.logger.Warn("contact notification email was not sent",
				"messageID", message.ID)
		}
	})

	if err := app.writeJSON(w, http.StatusOK, message, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) listContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := app.store.ContactMessages()
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, messages, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
