// File: internal/handlers/response.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/nupat-tech/nupatai/internal/repository/chat"
	"github.com/nupat-tech/nupatai/internal/services"
	"github.com/nupat-tech/nupatai/internal/services/ai"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// writeError emits the uniform {"detail": "..."} error body.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeValidationError renders ozzo field errors as a 422 with a
// field-to-message map; any other error degrades to a plain detail.
func writeValidationError(w http.ResponseWriter, err error) {
	var fields validation.Errors
	if errors.As(err, &fields) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"detail": fields})
		return
	}
	writeError(w, http.StatusUnprocessableEntity, err.Error())
}

// writeChatError maps the chat/message service sentinels to HTTP
// statuses. Provider failures stay 500 and hide the cause unless debug.
func writeChatError(w http.ResponseWriter, err error, logger services.Logger, debug bool) {
	switch {
	case errors.Is(err, chat.ErrChatNotFound):
		writeError(w, http.StatusNotFound, "chat not found")
	case errors.Is(err, services.ErrChatAccessDenied):
		writeError(w, http.StatusForbidden, "not authorized to access this chat")
	default:
		var aiErr *ai.AIError
		if errors.As(err, &aiErr) {
			logger.Error("assistant provider error", "error", err)
			if debug {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "assistant service unavailable")
			return
		}
		logger.Error("unhandled service error", "error", err)
		if debug {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
