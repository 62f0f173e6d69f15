package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"ergg/internal/api"
	"ergg/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// headers are already out; an encode failure is a dropped client
	_ = json.NewEncoder(w).Encode(v)
}

func writeBadRequest(w http.ResponseWriter, err error) {
	msg := err.Error()
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msg = verrs.Error()
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Message: msg})
}

// writeError maps a service error onto a status: upstream statuses pass
// through, not-found is 404, anything else 500.
func writeError(w http.ResponseWriter, r *http.Request, summary string, err error) {
	status := http.StatusInternalServerError
	message := "Internal Server Error"

	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.StatusCode
		if status < http.StatusBadRequest || status > 599 {
			status = http.StatusBadGateway
		}
		if apiErr.Message != "" {
			message = apiErr.Message
		} else {
			message = http.StatusText(status)
		}
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, api.ErrUnexpectedFormat):
		status = http.StatusBadGateway
		message = err.Error()
	}

	zerolog.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg(summary)
	writeJSON(w, status, ErrorResponse{Error: summary, Message: message})
}
