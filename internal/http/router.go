package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MrJamesThe3rd/texttx/internal/http/assistant"
	"github.com/MrJamesThe3rd/texttx/internal/http/auth"
	"github.com/MrJamesThe3rd/texttx/internal/http/category"
	"github.com/MrJamesThe3rd/texttx/internal/http/pattern"
	"github.com/MrJamesThe3rd/texttx/internal/http/transaction"
)

type Options struct {
	AllowedOrigins []string
	Timeout        time.Duration
}

func New(
	opts Options,
	verifier *auth.Verifier,
	assistantV1 *assistant.Handler,
	categoriesV1 *category.Handler,
	patternsV1 *pattern.Handler,
	transactionsV1 *transaction.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(verifier.Middleware)

		if opts.Timeout > 0 {
			r.Use(middleware.Timeout(opts.Timeout))
		}

		r.Route("/assistant", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json", "text/plain"))
			assistantV1.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/patterns", patternsV1.Routes)
		r.Route("/transactions", transactionsV1.Routes)
	})

	return router
}
