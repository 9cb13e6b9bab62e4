// File: internal/handlers/router.go
package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nupat-tech/nupatai/internal/middleware"
	"github.com/nupat-tech/nupatai/internal/services"
)

// RouterConfig bundles everything the HTTP surface needs.
type RouterConfig struct {
	AppName        string
	AppVersion     string
	AuthHandler    *AuthHandler
	ChatHandler    *ChatHandler
	MessageHandler *MessageHandler
	UserResolver   middleware.UserResolver
	Logger         services.Logger
}

// NewRouter assembles the full route table. Auth endpoints for signup
// and login are public; everything under the protected subrouter
// requires a bearer token.
func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RecoverPanic(cfg.Logger))
	r.Use(middleware.RequestLogger(cfg.Logger))

	r.HandleFunc("/", serviceInfo(cfg.AppName, cfg.AppVersion)).Methods(http.MethodGet)
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	r.HandleFunc("/auth/signup", cfg.AuthHandler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", cfg.AuthHandler.Login).Methods(http.MethodPost)

	protected := r.NewRoute().Subrouter()
	protected.Use(middleware.RequireAuth(cfg.UserResolver))

	protected.HandleFunc("/auth/logout", cfg.AuthHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", cfg.AuthHandler.Me).Methods(http.MethodGet)

	protected.HandleFunc("/chats", cfg.ChatHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/chats", cfg.ChatHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/chats/{chat_id}", cfg.ChatHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/chats/{chat_id}", cfg.ChatHandler.Update).Methods(http.MethodPatch)
	protected.HandleFunc("/chats/{chat_id}", cfg.ChatHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/chats/{chat_id}/messages", cfg.MessageHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/chats/{chat_id}/messages", cfg.MessageHandler.Send).Methods(http.MethodPost)

	return r
}

func serviceInfo(name, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"name":    name,
			"version": version,
			"status":  "running",
		})
	}
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
