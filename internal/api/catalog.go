// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package api implements the HTTP endpoints of the read-only checklist
// viewer. It serves HTML pages under /list and JSON mirrors of the same data
// under /api. There are no mutation endpoints.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/Firstyear/checklists/internal/catalog"
	"github.com/Firstyear/checklists/internal/checklist"
	"github.com/Firstyear/checklists/internal/logger"
	"github.com/Firstyear/checklists/internal/web"

	"github.com/gorilla/mux"
)

// NotFoundBody is the fixed body returned for an unknown checklist name.
const NotFoundBody = "Checklist Not Found"

// ListSummary describes one catalog entry in the JSON index.
type ListSummary struct {
	Name  string `json:"name"`
	Steps int    `json:"steps"`
}

// catalogHandlers serves a catalog that was built once at startup. The
// catalog is immutable, so handlers share it without locking.
type catalogHandlers struct {
	cat   *catalog.Catalog
	pages *web.Pages
}

// RegisterCatalogRoutes wires the HTML and JSON catalog endpoints into router.
func RegisterCatalogRoutes(router *mux.Router, cat *catalog.Catalog, pages *web.Pages) {
	h := &catalogHandlers{cat: cat, pages: pages}

	list := router.PathPrefix("/list").Subrouter()
	list.HandleFunc("", h.indexView).Methods(http.MethodGet)
	list.HandleFunc("/", h.indexView).Methods(http.MethodGet)
	list.HandleFunc("/{listname}", h.listView).Methods(http.MethodGet)

	router.HandleFunc("/api/lists", h.listIndexHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/lists/{listname}", h.listHandler).Methods(http.MethodGet)
}

// writeJSONResponse writes a JSON response with CORS headers
func writeJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("Failed to encode JSON response", "error", err)
	}
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// indexView serves GET /list and GET /list/ with the names of all checklists.
func (h *catalogHandlers) indexView(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.Index(w, web.IndexData{Names: h.cat.Names()}); err != nil {
		logger.Error("Failed to render index", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// listView serves GET /list/{listname}.
//
// Response:
// - 200 OK: HTML page with the checklist steps in order
// - 404 Not Found: the fixed NotFoundBody for unknown names
func (h *catalogHandlers) listView(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["listname"]
	steps, ok := h.cat.Get(name)
	if !ok {
		writeHTML(w, http.StatusNotFound, NotFoundBody)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.List(w, web.ListData{Name: name, Steps: steps}); err != nil {
		logger.Error("Failed to render checklist", "name", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// listIndexHandler serves GET /api/lists with one summary per checklist.
func (h *catalogHandlers) listIndexHandler(w http.ResponseWriter, r *http.Request) {
	names := h.cat.Names()
	out := make([]ListSummary, 0, len(names))
	for _, n := range names {
		steps, _ := h.cat.Get(n)
		out = append(out, ListSummary{Name: n, Steps: len(steps)})
	}
	writeJSONResponse(w, http.StatusOK, out)
}

// listHandler serves GET /api/lists/{listname}. The body uses the checklist
// file format, so it can be saved and opened with the CLI walker.
func (h *catalogHandlers) listHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["listname"]
	cl, ok := h.cat.Checklist(name)
	if !ok {
		writeJSONResponse(w, http.StatusNotFound, map[string]string{"error": NotFoundBody})
		return
	}
	data, err := checklist.Marshal(cl)
	if err != nil {
		logger.Error("Failed to encode checklist", "name", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	_, _ = w.Write(data)
}
