package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fekuna/omnipos-scm-service/internal/model"
)

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Status: http.StatusOK, Data: data})
}

func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, envelope{Status: http.StatusCreated, Data: data})
}

func Message(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Status: status, Message: message})
}

func Unauthorized(w http.ResponseWriter) {
	Message(w, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(w http.ResponseWriter) {
	Message(w, http.StatusForbidden, "Forbidden")
}

func BadRequest(w http.ResponseWriter, message string) {
	Message(w, http.StatusBadRequest, message)
}

// Error writes err with the status its kind maps to. Storage failures are
// reported as 500 without their detail.
func Error(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	Message(w, status, msg)
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrOrderNotFound),
		errors.Is(err, model.ErrInventoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInsufficientStock),
		errors.Is(err, model.ErrRouteNotFound),
		errors.Is(err, model.ErrSKUExists),
		errors.Is(err, model.ErrUsernameTaken),
		errors.Is(err, model.ErrProductInUse),
		errors.Is(err, model.ErrDuplicateEvent):
		return http.StatusConflict
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrInvalidQuantity),
		errors.Is(err, model.ErrInvalidCost),
		errors.Is(err, model.ErrInvalidMove),
		errors.Is(err, model.ErrInvalidStatus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrBusy):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Decode reads a JSON request body into dst.
func Decode(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
