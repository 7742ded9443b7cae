package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/simaogato/investments-backend/internal/domain"
	"github.com/simaogato/investments-backend/internal/logger"
)

func respond(w http.ResponseWriter, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// writeError maps domain errors onto HTTP status codes.
// Storage and unknown failures are logged and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidHolding):
		respond(w, errorResponse{Error: err.Error()}, http.StatusBadRequest)
	case errors.Is(err, domain.ErrHoldingNotFound):
		respond(w, errorResponse{Error: err.Error()}, http.StatusNotFound)
	default:
		logger.FromContext(r.Context()).WithError(err).Error("request failed")
		respond(w, errorResponse{Error: "internal server error"}, http.StatusInternalServerError)
	}
}

func badRequest(w http.ResponseWriter, message string) {
	respond(w, errorResponse{Error: message}, http.StatusBadRequest)
}
