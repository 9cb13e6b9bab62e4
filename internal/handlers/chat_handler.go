// File: internal/handlers/chat_handler.go
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

// ChatHandler exposes chat session CRUD. Every endpoint runs behind the
// auth middleware; ownership checks live in the service.
type ChatHandler struct {
	chatService *services.ChatService
	logger      services.Logger
	debug       bool
}

func NewChatHandler(chatService *services.ChatService, logger services.Logger, debug bool) *ChatHandler {
	return &ChatHandler{chatService: chatService, logger: logger, debug: debug}
}

// Create handles POST /chats.
func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	var req dtos.CreateChatRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	created, err := h.chatService.CreateChat(r.Context(), userID, req.Title)
	if err != nil {
		writeChatError(w, err, h.logger, h.debug)
		return
	}

	writeJSON(w, http.StatusCreated, dtos.NewChatResponse(created))
}

// List handles GET /chats with ?page and ?page_size.
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	page, pageSize, err := parsePagination(r, defaultChatPageSize)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	chats, total, totalPages, err := h.chatService.ListChats(r.Context(), userID, page, pageSize)
	if err != nil {
		writeChatError(w, err, h.logger, h.debug)
		return
	}

	writeJSON(w, http.StatusOK, dtos.NewChatListResponse(chats, total, page, pageSize, totalPages))
}

// Get handles GET /chats/{chat_id} and includes the full message history.
func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, chatID, ok := h.requestIdentity(w, r)
	if !ok {
		return
	}

	found, messages, err := h.chatService.GetChatWithMessages(r.Context(), chatID, userID)
	if err != nil {
		writeChatError(w, err, h.logger, h.debug)
		return
	}

	writeJSON(w, http.StatusOK, dtos.NewChatDetailResponse(found, messages))
}

// Update handles PATCH /chats/{chat_id} (rename).
func (h *ChatHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, chatID, ok := h.requestIdentity(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	updated, err := h.chatService.RenameChat(r.Context(), chatID, userID, req.Title)
	if err != nil {
		writeChatError(w, err, h.logger, h.debug)
		return
	}

	writeJSON(w, http.StatusOK, dtos.NewChatResponse(updated))
}

// Delete handles DELETE /chats/{chat_id}.
func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, chatID, ok := h.requestIdentity(w, r)
	if !ok {
		return
	}

	if err := h.chatService.DeleteChat(r.Context(), chatID, userID); err != nil {
		writeChatError(w, err, h.logger, h.debug)
		return
	}

	writeJSON(w, http.StatusOK, dtos.ChatDeleteResponse{
		Message: "chat deleted successfully",
		ChatID:  chatID,
	})
}

// requestIdentity extracts the authenticated user and the chat_id path
// parameter, writing the error response itself on failure.
func (h *ChatHandler) requestIdentity(w http.ResponseWriter, r *http.Request) (userID, chatID uuid.UUID, ok bool) {
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
