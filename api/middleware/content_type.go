package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/angelmondragon/inventory-service/api/responses"
	pkgerrors "github.com/angelmondragon/inventory-service/pkg/errors"
	"github.com/angelmondragon/inventory-service/pkg/logger"
)

// RequireContentType rejects requests whose Content-Type header is not
// exactly contentType. Parameters such as charset are not accepted.
func RequireContentType(contentType string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, present := r.Header["Content-Type"]
			if !present || len(got) == 0 || got[0] != contentType {
				ctx := r.Context()
				if logg != nil {
					ctx = contentTypeFields(ctx, logg, present, got)
				}
				responses.WriteError(ctx, logg, w, pkgerrors.New(
					pkgerrors.CodeUnsupportedMedia,
					fmt.Sprintf("Content-Type must be %s", contentType),
				))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func contentTypeFields(ctx context.Context, logg *logger.Logger, present bool, got []string) context.Context {
	if !present || len(got) == 0 {
		return logg.WithField(ctx, "content_type", "")
	}
	return logg.WithField(ctx, "content_type", got[0])
}
