package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"menu-admin/menu-svc/internal/service"
	"menu-admin/menu-svc/internal/validation"

	"github.com/rs/zerolog/log"
)

type errorBody struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps service failures onto status codes. Store errors are
// already logged by the service; only the request id is added here.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, service.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	default:
		log.Error().Err(err).Str("request_id", RequestID(r.Context())).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

func writeFound(w http.ResponseWriter, r *http.Request, missing bool, body interface{}, err error, notFound string) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if missing {
		writeJSON(w, http.StatusNotFound, errorBody{Error: notFound})
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func writeDeleted(w http.ResponseWriter, r *http.Request, deleted bool, err error, notFound string) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorBody{Error: notFound})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
