package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-proxy/internal/service"
)

const contentTypeJSON = "application/json; charset=utf-8"

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorEnvelope{
		Error: ErrorDetail{Message: message},
	})
}

// respondWithServiceError writes the envelope for err. Errors that did not come from
// the service are reported as a generic fetch failure.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var apiErr *service.Error
	if errors.As(err, &apiErr) {
		respondWithError(w, apiErr.Status, apiErr.Message)
		return
	}

	respondWithError(w, http.StatusInternalServerError, service.MessageFetchFailed)
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// respondWithRawJSON writes an already-encoded JSON document as is.
func respondWithRawJSON(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}
