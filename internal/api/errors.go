package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Bourichi-Taha/Everlasting-client/internal/business/events"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
)

func (a *Api) logError(_ *http.Request, err error) {
	a.logger.Errorw("server error", "error", err)
}

func (a *Api) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	data := map[string]interface{}{"error": message}

	if err := a.writeJSON(w, status, data, nil); err != nil {
		a.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (a *Api) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.logError(r, err)

	message := "the server encountered a problem and could not process your request"
	a.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (a *Api) clientErrorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	a.logger.Debugw("client error", "err", message)
	a.errorResponse(w, r, status, message)
}

func (a *Api) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	a.clientErrorResponse(w, r, http.StatusNotFound, message)
}

func (a *Api) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	a.clientErrorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (a *Api) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.clientErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (a *Api) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, errors)
}

func (a *Api) unauthorizedResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.clientErrorResponse(w, r, http.StatusUnauthorized, err.Error())
}

func (a *Api) forbiddenResponse(w http.ResponseWriter, r *http.Request, message string) {
	a.clientErrorResponse(w, r, http.StatusForbidden, message)
}

func (a *Api) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.clientErrorResponse(w, r, http.StatusConflict, err.Error())
}

func (a *Api) fileTooBigResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("file must not be larger than %d bytes", a.settings.MaxFileSize)
	a.clientErrorResponse(w, r, http.StatusRequestEntityTooLarge, message)
}

// eventErrorResponse maps errors coming out of the events service.
func (a *Api) eventErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrNoRecord):
		a.notFoundResponse(w, r)
	case errors.Is(err, model.ErrTooFewSeats):
		a.failedValidationResponse(w, r, map[string]string{"maxNumParticipants": events.MsgTooFewSeats})
	case errors.Is(err, model.ErrForbidden):
		a.forbiddenResponse(w, r, "only the owner can change this event")
	case errors.Is(err, model.ErrEventFull),
		errors.Is(err, model.ErrEventCanceled),
		errors.Is(err, model.ErrAlreadySubscribed),
		errors.Is(err, model.ErrNotSubscribed),
		errors.Is(err, model.ErrNotEditable):
		a.conflictResponse(w, r, err)
	default:
		a.serverErrorResponse(w, r, err)
	}
}
