package controllers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/angelmondragon/inventory-service/api/responses"
	pkgerrors "github.com/angelmondragon/inventory-service/pkg/errors"
	"github.com/angelmondragon/inventory-service/pkg/logger"
	"github.com/angelmondragon/inventory-service/web"
)

// Admin renders the admin page.
func Admin(tmpl *template.Template, logg *logger.Logger) http.HandlerFunc {
	page := web.NewAdminPage()
	return func(w http.ResponseWriter, r *http.Request) {
		if tmpl == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin template unavailable"))
			return
		}

		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "admin.html", page); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render admin page"))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}
