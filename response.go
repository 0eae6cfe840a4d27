package keystone

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aethongr/keystone-api-standard/schema"
	"github.com/aethongr/keystone-api-standard/storage"
	"github.com/aethongr/keystone-api-standard/wire"
)

// dataEnvelope is the success envelope: a message and the normalized data.
type dataEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// errorEnvelope is the failure envelope. Details carries the per-field
// validation failures when the error was a validation one.
type errorEnvelope struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message"`
	Details schema.ValidationErrors `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error","message":"response marshalling failed"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeData normalizes v and wraps it in the success envelope.
func writeData(w http.ResponseWriter, status int, message string, v any) {
	writeJSON(w, status, dataEnvelope{Message: message, Data: wire.Normalize(v)})
}

// writeError maps an error to its status code and envelope.
func writeError(w http.ResponseWriter, err error) {
	var verrs schema.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, errorEnvelope{
			Error:   "Bad request",
			Message: verrs.Error(),
			Details: verrs,
		})
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorEnvelope{Error: "Not found", Message: err.Error()})
	case errors.Is(err, storage.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorEnvelope{Error: "Conflict", Message: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: "Internal Server Error", Message: err.Error()})
	}
}

// writeBadRequest reports a malformed path or query parameter.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "Bad request", Message: message})
}

// listData converts a typed record slice for the envelope. List responses
// are never null: a store with no matches yields an empty array.
func listData[T wire.Record](items []T) any {
	if items == nil {
		return []any{}
	}
	return wire.Records(items)
}
