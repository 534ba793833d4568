package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fyyur-app/fyyur/errs"
	"github.com/rs/zerolog"
)

var errPanic = errs.NewInternalErrorWithCause("handler panicked", nil)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.writeJSON(w, http.StatusOK, data)
}

func (r Responder) writeJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WritePage writes a page payload together with the pending flash
// messages, which are consumed by this render.
func (r Responder) WritePage(w http.ResponseWriter, req *http.Request, data any) {
	r.WriteJSON(w, Page{
		Flashes: takeFlashes(w, req),
		Data:    data,
	})
}

// WriteError renders err. Expected failures (4xx) show their message;
// anything else is logged in full and answered with a generic body.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	status := errs.StatusOf(err)

	if status >= http.StatusInternalServerError {
		event := r.logger.Error().Int("status", status)
		var apiErr *errs.ApiErr
		if errors.As(err, &apiErr) {
			event = event.Str("entity", apiErr.Entity).Str("error", apiErr.GetFullError())
		} else {
			event = event.Err(err)
		}
		event.Msg("request failed")

		r.writeJSON(w, status, ErrorResponse{
			Error:  http.StatusText(status),
			Status: "error",
		})
		return
	}

	response := ErrorResponse{
		Error:  err.Error(),
		Status: "error",
	}
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		response.Field = apiErr.Field
		response.Details = apiErr.Details
	}
	r.writeJSON(w, status, response)
}

// redirect answers a form submission. 303 makes the browser follow up
// with a GET whatever the original method was.
func redirect(w http.ResponseWriter, req *http.Request, location string) {
	http.Redirect(w, req, location, http.StatusSeeOther)
}
