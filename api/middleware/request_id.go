package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/inventory-service/pkg/logger"
)

// RequestIDHeader carries the correlation id in both directions.
const RequestIDHeader = "X-Request-Id"

// RequestID tags each request with an id for the logs. A caller supplied id
// is kept only when it is a UUID.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := inboundRequestID(r)
			w.Header().Set(RequestIDHeader, id)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, id)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func inboundRequestID(r *http.Request) string {
	if parsed, err := uuid.Parse(r.Header.Get(RequestIDHeader)); err == nil {
		return parsed.String()
	}
	return uuid.NewString()
}
