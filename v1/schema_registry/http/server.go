// Package http exposes a Service over a small Confluent-compatible REST
// surface, so existing Confluent tooling and the schema_registry.Client
// in this module can point at the same in-process Service.
package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/urfave/negroni"

	"github.com/Aleph-Alpha/std/v1/logger"
	"github.com/Aleph-Alpha/std/v1/schema_registry"
)

// NewRouter builds the HTTP surface for service. log may be nil.
func NewRouter(service *schema_registry.Service, log logger.Logger) *mux.Router {
	h := &handler{service: service, log: log}

	router := mux.NewRouter()
	router.HandleFunc("/subjects/{subject}/versions", h.registerSchema).Methods(http.MethodPost)
	router.HandleFunc("/subjects/{subject}/versions/latest", h.getLatestSchema).Methods(http.MethodGet)
	router.HandleFunc("/compatibility/subjects/{subject}/versions/latest", h.checkCompatibility).Methods(http.MethodPost)
	router.HandleFunc("/schemas/ids/{id}", h.getSchemaByID).Methods(http.MethodGet)
	router.Use(h.logRequests)
	return router
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := negroni.NewResponseWriter(w)
		next.ServeHTTP(ww, r)
		if h.log == nil {
			return
		}
		h.log.Info("schema_registry request", nil, map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": ww.Status(),
		})
	})
}
