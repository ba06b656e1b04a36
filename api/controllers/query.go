package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pedilo/pedilo-backend/pkg/pagination"
)

func paginationParams(r *http.Request) pagination.Params {
	params := pagination.Params{Cursor: r.URL.Query().Get("cursor")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			params.Limit = limit
		}
	}
	return params
}

func queryBool(r *http.Request, name string) bool {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(name)))
	return raw == "true" || raw == "1"
}
