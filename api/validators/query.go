package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/angelmondragon/inventory-service/pkg/errors"
)

// QueryString returns the trimmed query parameter, cut to maxLen bytes.
func QueryString(r *http.Request, key string, maxLen int) string {
	trimmed := strings.TrimSpace(r.URL.Query().Get(key))
	if maxLen > 0 && len(trimmed) > maxLen {
		return trimmed[:maxLen]
	}
	return trimmed
}

// URLParamID parses a numeric chi URL parameter. Values that do not fit an id
// are reported as not found, matching ids that were never issued.
func URLParamID(r *http.Request, key string) (uint, error) {
	raw := chi.URLParam(r, key)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Inventory with id '"+raw+"' was not found.")
	}
	return uint(value), nil
}
