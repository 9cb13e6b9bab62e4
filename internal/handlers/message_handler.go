// File: internal/handlers/message_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/nupat-tech/nupatai/internal/dtos"
	"github.com/nupat-tech/nupatai/internal/middleware"
	"github.com/nupat-tech/nupatai/internal/services"
)

// MessageHandler exposes message listing and the send workflow.
type MessageHandler struct {
	messageService *services.MessageService
	logger         services.Logger
	debug          bool
}

func NewMessageHandler(messageService *services.MessageService, logger services.Logger, debug bool) *MessageHandler {
	return &MessageHandler{messageService: messageService, logger: logger, debug: debug}
}

// List handles GET /chats/{chat_id}/messages with ?page and ?page_size.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, chatID, ok := h.requestIdentity(w, r)
	if !ok {
		return
	}

	page, pageSize, err := parsePagination(r, defaultMessagePageSize)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	messages, total, totalPages, err := h.messageService.ListMessages(r.Context(), chatID, userID, page, pageSize)
	if err != nil {
		writeChatError(w, err, h.logger, h.debug)
		return
	}

	writeJSON(w, http.StatusOK, dtos.NewMessageListResponse(messages, total, page, pageSize, totalPages))
}

// Send handles POST /chats/{chat_id}/messages: the full user-message,
// assistant-reply, auto-title exchange.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, chatID, ok := h.requestIdentity(w, r)
	if !ok {
		return
	}

	var req dtos.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	result, err := h.messageService.SendMessage(r.Context(), chatID, userID, req.Content)
	if err != nil {
		writeChatError(w, err, h.logger, h.debug)
		return
	}

	writeJSON(w, http.StatusCreated, dtos.NewSendMessageResponse(result))
}

func (h *MessageHandler) requestIdentity(w http.ResponseWriter, r *http.Request) (userID, chatID uuid.UUID, ok bool) {
	userID, found := middleware.UserIDFromRequest(r)
	if !found {
		writeError(w, http.StatusUnauthorized, "could not validate credentials")
		return uuid.Nil, uuid.Nil, false
	}

	chatID, err := uuid.Parse(mux.Vars(r)["chat_id"])
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "chat_id must be a valid UUID")
		return uuid.Nil, uuid.Nil, false
	}

	return userID, chatID, true
}
