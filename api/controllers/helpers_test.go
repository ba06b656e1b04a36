package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// newTestRouterWithParam mounts a handler behind a single chi URL param so
// chi.URLParam resolves inside the handler under test.
func newTestRouterWithParam(param string, handler http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.HandleFunc("/{"+param+"}", handler)
	return r
}
