package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// errInvalidPathID reports a missing or malformed UUID path parameter.
var errInvalidPathID = errors.New("invalid identifier in request path")

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100
)

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, errInvalidPathID
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, errInvalidPathID
	}
	return id, nil
}

// getPagination reads page and per_page from the query string. Absent
// parameters take the defaults; present values must parse and fall within
// range or the request is rejected.
func getPagination(r *http.Request) (page, perPage int, err error) {
	page, err = queryInt(r, "page", defaultPage)
	if err != nil {
		return 0, 0, errors.New("Invalid pagination parameters")
	}
	perPage, err = queryInt(r, "per_page", defaultPerPage)
	if err != nil {
		return 0, 0, errors.New("Invalid pagination parameters")
	}

	if page < 1 {
		return 0, 0, errors.New("Page must be >= 1")
	}
	if perPage < 1 || perPage > maxPerPage {
		return 0, 0, errors.New("Per page must be between 1 and 100")
	}
	return page, perPage, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
