package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS разрешает запросы SPA с указанных источников
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Idempotency-Key", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           600,
	})
	return c.Handler
}
