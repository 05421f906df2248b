package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/riftrewind/rift-front/internal/config"
)

// NewRouter assembles the application routes
func NewRouter(cfg config.Config, provider RSOProvider, client AccountClient) http.Handler {
	h := NewAuthHandlers(cfg, provider, client)

	r := chi.NewRouter()
	r.Use(NewLoggerMiddleware("http"))
	r.Use(NewRecoverMiddleware("http"))

	r.Get("/health", HealthHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})
	r.Get("/login", h.LoginPageHandler)

	r.Get("/auth/riot", h.RiotLoginHandler)
	r.Get("/auth/callback", h.CallbackHandler)
	r.Get("/auth/mock-callback", h.MockCallbackHandler)
	r.Get("/auth/logout", h.LogoutHandler)

	r.Post("/api/account-lookup", h.AccountLookupHandler)

	// Protected pages
	r.Group(func(r chi.Router) {
		r.Use(NewSessionGuard())
		r.Get("/dashboard", h.DashboardHandler)
	})

	return r
}
