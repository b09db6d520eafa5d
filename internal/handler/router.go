package handler

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	custommiddleware "github.com/mmeshcher/restaurant-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса ресторана.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOriginsList(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Get("/menu", h.GetMenu)
	r.Post("/chat", h.Chat)
	r.Post("/order", h.CreateOrder)
	r.Get("/order/{number}", h.GetOrder)

	// Фронтенд отдаётся, только если каталог static присутствует рядом с бинарником.
	if info, err := os.Stat("static"); err == nil && info.IsDir() {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
