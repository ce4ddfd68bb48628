package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/osse101/GardenBot_Go/internal/logger"
)

// ValidationErrorResponse lists the offending fields by their JSON names
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest reads exactly one JSON object into req and runs
// the struct validators. On error the response has already been written.
//
//	var req PlotRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Water"); err != nil {
//		return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := decodeStrict(r.Body, req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn(actionName+" request too large", "limit", tooLarge.Limit)
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return err
		}
		log.Warn(actionName+" request malformed", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		fields := FormatValidationError(err)
		log.Debug(actionName+" request invalid", "fields", fields)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: fields,
		})
		return err
	}

	return nil
}

// decodeStrict rejects unknown fields and anything after the first value
func decodeStrict(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

var errTrailingData = errors.New("unexpected data after JSON body")

// GetQueryParam returns a required query parameter, writing a 400 when it is absent
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Debug("Missing query parameter", "param", paramName)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}
