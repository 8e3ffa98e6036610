package controllers

import (
	"net/http"

	"github.com/angelmondragon/inventory-service/api/responses"
	"github.com/angelmondragon/inventory-service/pkg/logger"
	"github.com/angelmondragon/inventory-service/pkg/types"
)

const (
	serviceName    = "Welcome to the Inventory REST API Service"
	serviceVersion = "1.0"
)

// Index returns service metadata with the absolute URL of the collection.
func Index(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg.Debug(r.Context(), "index.requested")
		responses.WriteSuccess(w, types.IndexInfo{
			Name:    serviceName,
			Version: serviceVersion,
			Paths:   absoluteURL(r, "/inventory"),
		})
	}
}

// absoluteURL builds an external URL for path using the request's host.
func absoluteURL(r *http.Request, path string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	host := r.Host
	if host == "" {
		host = "localhost"
	}
	return scheme + "://" + host + path
}
