package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/tournament-rewards/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// An empty body decodes to the zero value when allowEmpty is set.
// If this function returns an error, the response has already been written.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string, allowEmpty bool) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxRequestBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil && !(allowEmpty && errors.Is(err, io.EOF)) {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Code:   CodeInvalidRequest,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}

// tournamentIDParam parses the {id} path parameter.
// If ok is false, the response has already been written.
func tournamentIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, ParamID), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, CodeInvalidInput, ErrMsgInvalidTournamentID)
		return 0, false
	}
	return id, true
}

// participantIDParam returns the {id} path parameter of participant routes
func participantIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, ParamID))
	if id == "" || len(id) > MaxParticipantIDLength {
		respondError(w, http.StatusBadRequest, CodeInvalidInput, ErrMsgInvalidParticipantID)
		return "", false
	}
	return id, true
}

// actorID returns the caller identity from X-Actor-ID. The header is validated upstream.
func actorID(r *http.Request) string {
	if actor := strings.TrimSpace(r.Header.Get(HeaderActorID)); actor != "" {
		return actor
	}
	return DefaultActorID
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// optionalLimit parses ?limit=; zero means the service default.
// If ok is false, the response has already been written.
func optionalLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := GetOptionalQueryParam(r, ParamLimit, "0")
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		respondError(w, http.StatusBadRequest, CodeInvalidInput, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}
