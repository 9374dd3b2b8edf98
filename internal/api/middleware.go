// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package api

import (
	"net/http"
	"time"

	"github.com/Firstyear/checklists/internal/catalog"
	"github.com/Firstyear/checklists/internal/logger"
	"github.com/Firstyear/checklists/internal/web"

	"github.com/gorilla/mux"
)

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// RequestLogger logs one record per request with method, path, status and
// duration.
func RequestLogger() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes", rec.bytes,
				"remote", r.RemoteAddr,
				"duration", time.Since(start),
			)
		})
	}
}

// NewRouter builds the viewer router with request logging and the catalog
// routes. The site root redirects to the index.
func NewRouter(cat *catalog.Catalog, pages *web.Pages) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogger())
	RegisterCatalogRoutes(router, cat, pages)
	router.Handle("/", http.RedirectHandler("/list/", http.StatusFound)).Methods(http.MethodGet)
	return router
}
