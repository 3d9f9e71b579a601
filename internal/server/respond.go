package server

import (
	"encoding/json"
	"io"
	"net/http"

	"jobboard/internal/apperr"
	"jobboard/internal/util"
)

// writeJSON serializes a success payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps any failure to the uniform {"message": ...} body. The
// message stays a list for validation failures and collapses to a string
// otherwise. Unclassified faults log and answer 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.From(err)
	if appErr.StatusCode() >= http.StatusInternalServerError {
		util.LoggerFromContext(r.Context()).Error("request failed", "error", err)
		// Internal detail stays out of the response body.
		appErr = apperr.New(http.StatusInternalServerError, "internal server error")
	}
	writeJSON(w, appErr.StatusCode(), map[string]any{"message": appErr.Payload()})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"message": "method not allowed"})
}

// notFound answers unmatched paths with the path echoed in the message.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{"message": r.URL.Path + " not found"})
}

// decodeBody parses a JSON request body into a DTO.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(dst); err != nil {
		return apperr.New(http.StatusBadRequest, "invalid JSON body")
	}
	return nil
}
